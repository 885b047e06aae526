package memberrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const memberColumns = `id, login, password_hash, name, role, rating, games_played, wins, losses, draws, balance, registration_fee_due, created_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.Login, &m.PasswordHash, &m.Name, &m.Role, &m.Rating,
		&m.GamesPlayed, &m.Wins, &m.Losses, &m.Draws, &m.Balance, &m.RegistrationFeeDue, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE id = $1
    `
	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE login = $1
    `
	member, err := scanMember(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find member by login", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't find members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, *member)
	}
	return members, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
        INSERT INTO members (id, login, password_hash, name, role, rating, balance, registration_fee_due)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query, member.ID, member.Login, member.PasswordHash, member.Name,
		member.Role, member.Rating, member.Balance, member.RegistrationFeeDue).Scan(&member.CreatedAt)
	if err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id string, balance, feeDue decimal.Decimal) error {
	query := `
        UPDATE members
        SET balance = $1, registration_fee_due = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, balance, feeDue, id)
	if err != nil {
		zap.L().Error("can't update member balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRating(ctx context.Context, id string, rating, gamesPlayed, wins, losses, draws int) error {
	query := `
        UPDATE members
        SET rating = $1, games_played = $2, wins = $3, losses = $4, draws = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, rating, gamesPlayed, wins, losses, draws, id)
	if err != nil {
		zap.L().Error("can't update member rating", zap.Error(err))
		return err
	}
	return nil
}
