package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	"veredicto/contexts/governance/ruling-engine/ports"
)

const (
	statusAbleToVote   = "ABLE_TO_VOTE"
	statusUnableToVote = "UNABLE_TO_VOTE"
)

// Passthrough treats every voter as eligible. Selected at bootstrap when no
// eligibility endpoint is configured; an operational escape hatch, not a
// policy default.
type Passthrough struct{}

func (Passthrough) CheckVoter(_ context.Context, _ string) (ports.EligibilityStatus, error) {
	return ports.EligibilityStatusEligible, nil
}

// Client resolves voter eligibility against the remote user-info service via
// GET {base}/users/{voter_id}. Any transport failure, non-2xx response, or
// unrecognized status body yields ErrEligibilityUnavailable; the caller is
// never silently allowed or denied.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type voterInfoResponse struct {
	Status string `json:"status"`
}

func (c *Client) CheckVoter(ctx context.Context, voterID string) (ports.EligibilityStatus, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(strings.TrimSpace(voterID)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrEligibilityUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logWarn("eligibility_request_failed", err.Error())
		return "", fmt.Errorf("%w: %v", domainerrors.ErrEligibilityUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logWarn("eligibility_unexpected_http_status", resp.Status)
		return "", fmt.Errorf("%w: http status %d", domainerrors.ErrEligibilityUnavailable, resp.StatusCode)
	}

	var body voterInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logWarn("eligibility_response_decode_failed", err.Error())
		return "", fmt.Errorf("%w: %v", domainerrors.ErrEligibilityUnavailable, err)
	}

	switch body.Status {
	case statusAbleToVote:
		return ports.EligibilityStatusEligible, nil
	case statusUnableToVote:
		return ports.EligibilityStatusIneligible, nil
	default:
		c.logWarn("eligibility_unknown_status", body.Status)
		return "", fmt.Errorf("%w: unknown status %q", domainerrors.ErrEligibilityUnavailable, body.Status)
	}
}

func (c *Client) logWarn(event string, detail string) {
	c.logger.Warn("eligibility check degraded",
		"event", event,
		"module", "governance/ruling-engine",
		"layer", "adapters/eligibility",
		"detail", detail,
	)
}
