package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates or updates the rulings/votes schema, including the
// composite unique index that closes the duplicate-vote race.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&rulingModel{}, &voteModel{})
}

func (r *Repository) SaveRuling(ctx context.Context, ruling entities.Ruling) error {
	row := rulingModelFromEntity(ruling)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"title":          row.Title,
			"description":    row.Description,
			"start_date":     row.StartDate,
			"end_date":       row.EndDate,
			"votes_in_favor": row.VotesInFavor,
			"votes_against":  row.VotesAgainst,
			"is_open":        row.Open,
			"updated_at":     row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("ruling_repo_save_ruling_failed", create.Error,
			"ruling_id", strings.TrimSpace(ruling.RulingID),
		)
	}
	return nil
}

func (r *Repository) GetRuling(ctx context.Context, rulingID string) (entities.Ruling, error) {
	var row rulingModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(rulingID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Ruling{}, domainerrors.ErrRulingNotFound
		}
		return entities.Ruling{}, r.logError("ruling_repo_get_ruling_failed", err,
			"ruling_id", strings.TrimSpace(rulingID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRulings(ctx context.Context, open *bool) ([]entities.Ruling, error) {
	tx := r.db.WithContext(ctx).Model(&rulingModel{})
	if open != nil {
		tx = tx.Where("is_open = ?", *open)
	}
	var rows []rulingModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("ruling_repo_list_rulings_failed", err)
	}
	rulings := make([]entities.Ruling, 0, len(rows))
	for _, row := range rows {
		rulings = append(rulings, row.toEntity())
	}
	return rulings, nil
}

func (r *Repository) HasVote(ctx context.Context, voterID string, rulingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&voteModel{}).
		Where("voter_id = ?", strings.TrimSpace(voterID)).
		Where("ruling_id = ?", strings.TrimSpace(rulingID)).
		Count(&count).
		Error
	if err != nil {
		return false, r.logError("ruling_repo_has_vote_failed", err,
			"ruling_id", strings.TrimSpace(rulingID),
		)
	}
	return count > 0, nil
}

// RecordVote runs the tally mutation in one transaction: the ruling row is
// locked, expiry and the open flag are re-checked under the lock, exactly one
// counter moves, and the vote row is inserted. A unique violation on
// (voter_id, ruling_id) surfaces as ErrDuplicateVote, so two concurrent
// submissions from the same voter can never both commit.
func (r *Repository) RecordVote(ctx context.Context, vote entities.Vote, now time.Time) (entities.Ruling, error) {
	var tallied entities.Ruling
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row rulingModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", strings.TrimSpace(vote.RulingID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrRulingNotFound
			}
			return err
		}

		ruling := row.toEntity()
		if ruling.ExpiredOn(now) {
			return domainerrors.ErrRulingExpired
		}
		if !ruling.Open {
			return domainerrors.ErrRulingClosed
		}

		if vote.InFavor {
			ruling.VotesInFavor++
		} else {
			ruling.VotesAgainst++
		}
		ruling.UpdatedAt = now

		voteRow := voteModelFromEntity(vote)
		if err := tx.Create(&voteRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateVote
			}
			return err
		}

		updates := tx.Model(&rulingModel{}).
			Where("id = ?", ruling.RulingID).
			Updates(map[string]any{
				"votes_in_favor": ruling.VotesInFavor,
				"votes_against":  ruling.VotesAgainst,
				"updated_at":     ruling.UpdatedAt,
			})
		if updates.Error != nil {
			return updates.Error
		}

		tallied = ruling
		return nil
	})
	if err != nil {
		if isDomainTallyError(err) {
			return entities.Ruling{}, err
		}
		return entities.Ruling{}, r.logError("ruling_repo_record_vote_failed", err,
			"vote_id", strings.TrimSpace(vote.VoteID),
			"ruling_id", strings.TrimSpace(vote.RulingID),
		)
	}
	return tallied, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "governance/ruling-engine",
		"layer", "adapters/postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("ruling repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isDomainTallyError(err error) bool {
	return errors.Is(err, domainerrors.ErrRulingNotFound) ||
		errors.Is(err, domainerrors.ErrRulingExpired) ||
		errors.Is(err, domainerrors.ErrRulingClosed) ||
		errors.Is(err, domainerrors.ErrDuplicateVote)
}

type rulingModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Title        string    `gorm:"column:title"`
	Description  string    `gorm:"column:description"`
	StartDate    time.Time `gorm:"column:start_date"`
	EndDate      time.Time `gorm:"column:end_date"`
	VotesInFavor int       `gorm:"column:votes_in_favor"`
	VotesAgainst int       `gorm:"column:votes_against"`
	Open         bool      `gorm:"column:is_open"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (rulingModel) TableName() string {
	return "rulings"
}

func rulingModelFromEntity(ruling entities.Ruling) rulingModel {
	return rulingModel{
		ID:           strings.TrimSpace(ruling.RulingID),
		Title:        ruling.Title,
		Description:  ruling.Description,
		StartDate:    ruling.StartDate,
		EndDate:      ruling.EndDate,
		VotesInFavor: ruling.VotesInFavor,
		VotesAgainst: ruling.VotesAgainst,
		Open:         ruling.Open,
		CreatedAt:    ruling.CreatedAt,
		UpdatedAt:    ruling.UpdatedAt,
	}
}

func (m rulingModel) toEntity() entities.Ruling {
	return entities.Ruling{
		RulingID:     m.ID,
		Title:        m.Title,
		Description:  m.Description,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		VotesInFavor: m.VotesInFavor,
		VotesAgainst: m.VotesAgainst,
		Open:         m.Open,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type voteModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	RulingID  string    `gorm:"column:ruling_id;uniqueIndex:idx_votes_voter_ruling"`
	VoterID   string    `gorm:"column:voter_id;uniqueIndex:idx_votes_voter_ruling"`
	InFavor   bool      `gorm:"column:in_favor"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func voteModelFromEntity(vote entities.Vote) voteModel {
	return voteModel{
		ID:        strings.TrimSpace(vote.VoteID),
		RulingID:  strings.TrimSpace(vote.RulingID),
		VoterID:   strings.TrimSpace(vote.VoterID),
		InFavor:   vote.InFavor,
		CreatedAt: vote.CreatedAt,
	}
}

// SystemClock satisfies ports.Clock with wall-clock UTC time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
