package slotrepo

import (
	"context"
	"time"

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

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `
        SELECT id, start_time, is_booked, booked_by, available, created_at
        FROM slots
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var slot domain.Slot
	err := row.Scan(&slot.ID, &slot.StartTime, &slot.IsBooked, &slot.BookedBy, &slot.Available, &slot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find slot", zap.Error(err))
		return nil, err
	}
	return &slot, nil
}

// FindBookedAt returns the slot the member already holds at the given start
// time, used by the double-booking check.
func (r *Repository) FindBookedAt(ctx context.Context, memberID string, startTime time.Time) (*domain.Slot, error) {
	query := `
        SELECT id, start_time, is_booked, booked_by, available, created_at
        FROM slots
        WHERE booked_by = $1 AND start_time = $2 AND is_booked = TRUE
    `
	row := r.db.QueryRow(ctx, query, memberID, startTime)

	var slot domain.Slot
	err := row.Scan(&slot.ID, &slot.StartTime, &slot.IsBooked, &slot.BookedBy, &slot.Available, &slot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find booked slot", zap.Error(err))
		return nil, err
	}
	return &slot, nil
}

func (r *Repository) Create(ctx context.Context, slot *domain.Slot) error {
	query := `
        INSERT INTO slots (id, start_time, is_booked, booked_by, available)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, slot.ID, slot.StartTime, slot.IsBooked, slot.BookedBy, slot.Available)
	if err != nil {
		zap.L().Error("can't save slot", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, slot *domain.Slot) error {
	query := `
        UPDATE slots
        SET is_booked = $1, booked_by = $2, available = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, slot.IsBooked, slot.BookedBy, slot.Available, slot.ID)
	if err != nil {
		zap.L().Error("can't update slot", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, from time.Time) ([]domain.Slot, error) {
	query := `
        SELECT s.id, s.start_time, s.is_booked, s.booked_by, s.available, s.created_at,
               (SELECT COUNT(*) FROM waitlist_entries w WHERE w.slot_id = s.id) AS waitlist_len
        FROM slots s
        WHERE s.start_time >= $1
        ORDER BY s.start_time ASC
    `
	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		zap.L().Error("can't list slots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		var slot domain.Slot
		err := rows.Scan(&slot.ID, &slot.StartTime, &slot.IsBooked, &slot.BookedBy, &slot.Available, &slot.CreatedAt, &slot.WaitlistLen)
		if err != nil {
			zap.L().Error("can't scan slot row", zap.Error(err))
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (r *Repository) GetWaitlist(ctx context.Context, slotID string) ([]domain.WaitlistEntry, error) {
	query := `
        SELECT slot_id, member_id, added_at
        FROM waitlist_entries
        WHERE slot_id = $1
        ORDER BY added_at ASC
    `
	rows, err := r.db.Query(ctx, query, slotID)
	if err != nil {
		zap.L().Error("can't get waitlist", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WaitlistEntry
	for rows.Next() {
		var entry domain.WaitlistEntry
		err := rows.Scan(&entry.SlotID, &entry.MemberID, &entry.AddedAt)
		if err != nil {
			zap.L().Error("can't scan waitlist row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Repository) AddToWaitlist(ctx context.Context, entry *domain.WaitlistEntry) error {
	query := `
        INSERT INTO waitlist_entries (slot_id, member_id, added_at)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.Exec(ctx, query, entry.SlotID, entry.MemberID, entry.AddedAt)
	if err != nil {
		zap.L().Error("can't add waitlist entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RemoveFromWaitlist(ctx context.Context, slotID, memberID string) error {
	query := `
        DELETE FROM waitlist_entries
        WHERE slot_id = $1 AND member_id = $2
    `
	_, err := r.db.Exec(ctx, query, slotID, memberID)
	if err != nil {
		zap.L().Error("can't remove waitlist entry", zap.Error(err))
		return err
	}
	return nil
}
