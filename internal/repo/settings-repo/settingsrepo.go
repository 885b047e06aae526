package settingsrepo

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

func (r *Repository) Get(ctx context.Context) (*domain.AppSettings, error) {
	query := `
        SELECT slot_booking_cost, min_balance_for_booking, cancellation_deadline_hours, registration_fee
        FROM app_settings
        WHERE id = 1
    `
	row := r.db.QueryRow(ctx, query)

	var settings domain.AppSettings
	err := row.Scan(&settings.SlotBookingCost, &settings.MinBalanceForBooking,
		&settings.CancellationDeadlineHours, &settings.RegistrationFee)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get app settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

func (r *Repository) Update(ctx context.Context, settings *domain.AppSettings) error {
	query := `
        UPDATE app_settings
        SET slot_booking_cost = $1, min_balance_for_booking = $2,
            cancellation_deadline_hours = $3, registration_fee = $4
        WHERE id = 1
    `
	_, err := r.db.Exec(ctx, query, settings.SlotBookingCost, settings.MinBalanceForBooking,
		settings.CancellationDeadlineHours, settings.RegistrationFee)
	if err != nil {
		zap.L().Error("can't update app settings", zap.Error(err))
		return err
	}
	return nil
}
