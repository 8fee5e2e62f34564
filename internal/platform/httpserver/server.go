package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	rulingengine "veredicto/contexts/governance/ruling-engine"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	rulinghttp "veredicto/contexts/governance/ruling-engine/transport/http"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "veredicto/internal/platform/httpserver/docs"
)

// voterIDPattern is the national-ID-like shape enforced at the boundary
// before the engine sees a voter identity.
var voterIDPattern = regexp.MustCompile(`^[0-9]{11}$`)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	rulings rulingengine.Module
}

func New(rulings rulingengine.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		rulings: rulings,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/rulings/v1/rulings", s.handleCreateRuling)
	s.mux.HandleFunc("GET /api/rulings/v1/rulings", s.handleListRulings)
	s.mux.HandleFunc("GET /api/rulings/v1/rulings/{ruling_id}/result", s.handleRulingResult)
	s.mux.HandleFunc("POST /api/rulings/v1/rulings/{ruling_id}/open", s.handleOpenRuling)
	s.mux.HandleFunc("POST /api/rulings/v1/rulings/{ruling_id}/close", s.handleCloseRuling)
	s.mux.HandleFunc("POST /api/rulings/v1/rulings/{ruling_id}/votes", s.handleSubmitVote)
}

// @Summary Create a new ruling
// @Accept json
// @Produce json
// @Param request body http.CreateRulingRequest true "Ruling data"
// @Success 200 {object} http.RulingCreatedResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /rulings [post]
func (s *Server) handleCreateRuling(w http.ResponseWriter, r *http.Request) {
	var req rulinghttp.CreateRulingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rulings.Handler.CreateRulingHandler(r.Context(), req)
	if err != nil {
		writeRulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary List rulings
// @Produce json
// @Param ruling_id query string false "Ruling UUID filter"
// @Param status query string false "OPEN or CLOSED"
// @Success 200 {object} http.RulingListResponse
// @Failure 400 {object} http.ErrorResponse
// @Router /rulings [get]
func (s *Server) handleListRulings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rulingID := strings.TrimSpace(query.Get("ruling_id"))
	if rulingID != "" {
		if _, err := uuid.Parse(rulingID); err != nil {
			writeRulingError(w, http.StatusBadRequest, "invalid_ruling_id", "ruling_id must be a UUID")
			return
		}
	}

	resp, err := s.rulings.Handler.ListRulingsHandler(r.Context(), rulingID, query.Get("status"))
	if err != nil {
		writeRulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Get the result of a ruling
// @Produce json
// @Param ruling_id path string true "Ruling UUID"
// @Success 200 {object} http.ResultResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /rulings/{ruling_id}/result [get]
func (s *Server) handleRulingResult(w http.ResponseWriter, r *http.Request) {
	rulingID, ok := s.rulingIDFromPath(w, r)
	if !ok {
		return
	}
	resp, err := s.rulings.Handler.ResultHandler(r.Context(), rulingID)
	if err != nil {
		writeRulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Open a ruling
// @Produce json
// @Param ruling_id path string true "Ruling UUID"
// @Success 204
// @Failure 404 {object} http.ErrorResponse
// @Failure 422 {object} http.ErrorResponse
// @Router /rulings/{ruling_id}/open [post]
func (s *Server) handleOpenRuling(w http.ResponseWriter, r *http.Request) {
	rulingID, ok := s.rulingIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.rulings.Handler.OpenRulingHandler(r.Context(), rulingID); err != nil {
		writeRulingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Close a ruling
// @Produce json
// @Param ruling_id path string true "Ruling UUID"
// @Success 204
// @Failure 404 {object} http.ErrorResponse
// @Router /rulings/{ruling_id}/close [post]
func (s *Server) handleCloseRuling(w http.ResponseWriter, r *http.Request) {
	rulingID, ok := s.rulingIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.rulings.Handler.CloseRulingHandler(r.Context(), rulingID); err != nil {
		writeRulingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Vote on a ruling
// @Accept json
// @Produce json
// @Param ruling_id path string true "Ruling UUID"
// @Param request body http.VoteRequest true "Vote data"
// @Success 200 {object} http.VoteResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Failure 409 {object} http.ErrorResponse
// @Router /rulings/{ruling_id}/votes [post]
func (s *Server) handleSubmitVote(w http.ResponseWriter, r *http.Request) {
	rulingID, ok := s.rulingIDFromPath(w, r)
	if !ok {
		return
	}

	var req rulinghttp.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if !voterIDPattern.MatchString(strings.TrimSpace(req.VoterID)) {
		writeRulingError(w, http.StatusBadRequest, "invalid_voter_id", "voter_id must be an 11-digit identity")
		return
	}

	resp, err := s.rulings.Handler.VoteHandler(r.Context(), rulingID, req)
	if err != nil {
		writeRulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) rulingIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	rulingID := r.PathValue("ruling_id")
	if _, err := uuid.Parse(rulingID); err != nil {
		writeRulingError(w, http.StatusBadRequest, "invalid_ruling_id", "ruling_id must be a UUID")
		return "", false
	}
	return rulingID, true
}

func writeRulingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrRulingNotFound):
		writeRulingError(w, http.StatusNotFound, "ruling_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrDuplicateVote):
		writeRulingError(w, http.StatusConflict, "duplicate_vote", err.Error())
	case errors.Is(err, domainerrors.ErrRulingClosed):
		writeRulingError(w, http.StatusUnprocessableEntity, "ruling_closed", err.Error())
	case errors.Is(err, domainerrors.ErrRulingExpired):
		writeRulingError(w, http.StatusUnprocessableEntity, "ruling_expired", err.Error())
	case errors.Is(err, domainerrors.ErrIneligibleVoter):
		writeRulingError(w, http.StatusForbidden, "ineligible_voter", err.Error())
	case errors.Is(err, domainerrors.ErrEligibilityUnavailable):
		writeRulingError(w, http.StatusBadGateway, "eligibility_unavailable", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidRulingInput),
		errors.Is(err, domainerrors.ErrInvalidVoteInput):
		writeRulingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRulingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRulingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rulinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
