package historyrepo

import (
	"context"

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

func (r *Repository) Append(ctx context.Context, entry *domain.MatchHistoryEntry) error {
	query := `
        INSERT INTO match_history (id, match_id, member_id, old_rating, new_rating, rating_change,
            outcome, teammates, opponents, score1, score2)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query, entry.ID, entry.MatchID, entry.MemberID, entry.OldRating,
		entry.NewRating, entry.RatingChange, entry.Outcome, entry.Teammates, entry.Opponents,
		entry.Score1, entry.Score2)
	if err != nil {
		zap.L().Error("can't save match history entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID string) ([]domain.MatchHistoryEntry, error) {
	query := `
        SELECT id, match_id, member_id, old_rating, new_rating, rating_change,
            outcome, teammates, opponents, score1, score2, created_at
        FROM match_history
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list match history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MatchHistoryEntry
	for rows.Next() {
		var e domain.MatchHistoryEntry
		err := rows.Scan(&e.ID, &e.MatchID, &e.MemberID, &e.OldRating, &e.NewRating, &e.RatingChange,
			&e.Outcome, &e.Teammates, &e.Opponents, &e.Score1, &e.Score2, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan match history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
