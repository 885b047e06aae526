package ledgerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/pg"
)

// Repository is append-only: entries are never updated or deleted.
// Corrections happen through new entries of the opposite sign.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO transactions (id, member_id, amount, type, description, related_id)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, entry.ID, entry.MemberID, entry.Amount, entry.Type,
		entry.Description, entry.RelatedID)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID string) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, member_id, amount, type, description, related_id, created_at
        FROM transactions
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.MemberID, &e.Amount, &e.Type, &e.Description, &e.RelatedID, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
