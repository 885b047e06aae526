package tokenrepo

import (
	"context"

	"go.uber.org/zap"

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

func (r *Repository) Register(ctx context.Context, memberID, token string) error {
	query := `
        INSERT INTO fcm_tokens (member_id, token)
        VALUES ($1, $2)
        ON CONFLICT (member_id, token) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, memberID, token)
	if err != nil {
		zap.L().Error("can't register fcm token", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Unregister(ctx context.Context, memberID, token string) error {
	query := `
        DELETE FROM fcm_tokens
        WHERE member_id = $1 AND token = $2
    `
	_, err := r.db.Exec(ctx, query, memberID, token)
	if err != nil {
		zap.L().Error("can't unregister fcm token", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID string) ([]string, error) {
	query := `
        SELECT token
        FROM fcm_tokens
        WHERE member_id = $1
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list fcm tokens", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			zap.L().Error("can't scan fcm token row", zap.Error(err))
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
