package matchrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const matchColumns = `id, team1, team2, slot_time, game_type, score1, score2, status, previous_status,
	created_by, confirmed_by, submitted_by, submitted_at, rejected_by, rejected_at,
	cancellation_requested_by, cancellation_requested_at, created_at, updated_at`

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.Team1, &m.Team2, &m.SlotTime, &m.GameType, &m.Score1, &m.Score2,
		&m.Status, &m.PreviousStatus, &m.CreatedBy, &m.ConfirmedBy, &m.SubmittedBy, &m.SubmittedAt,
		&m.RejectedBy, &m.RejectedAt, &m.CancellationRequestedBy, &m.CancellationRequestedAt,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Match, error) {
	query := `
        SELECT ` + matchColumns + `
        FROM matches
        WHERE id = $1
    `
	match, err := scanMatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find match", zap.Error(err))
		return nil, err
	}
	return match, nil
}

func (r *Repository) Create(ctx context.Context, match *domain.Match) error {
	query := `
        INSERT INTO matches (id, team1, team2, slot_time, game_type, score1, score2, status,
            created_by, confirmed_by, submitted_by, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, match.ID, match.Team1, match.Team2, match.SlotTime,
		match.GameType, match.Score1, match.Score2, match.Status, match.CreatedBy,
		match.ConfirmedBy, match.SubmittedBy, match.SubmittedAt).Scan(&match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save match", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, match *domain.Match) error {
	query := `
        UPDATE matches
        SET score1 = $1, score2 = $2, status = $3, previous_status = $4, confirmed_by = $5,
            submitted_by = $6, submitted_at = $7, rejected_by = $8, rejected_at = $9,
            cancellation_requested_by = $10, cancellation_requested_at = $11,
            game_type = $12, slot_time = $13, updated_at = now()
        WHERE id = $14
    `
	_, err := r.db.Exec(ctx, query, match.Score1, match.Score2, match.Status, match.PreviousStatus,
		match.ConfirmedBy, match.SubmittedBy, match.SubmittedAt, match.RejectedBy, match.RejectedAt,
		match.CancellationRequestedBy, match.CancellationRequestedAt, match.GameType, match.SlotTime, match.ID)
	if err != nil {
		zap.L().Error("can't update match", zap.Error(err))
		return err
	}
	return nil
}
