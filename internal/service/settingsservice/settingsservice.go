package settingsservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidSettings  = errors.New("invalid settings")
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
	Update(ctx context.Context, settings *domain.AppSettings) error
}

type Service struct {
	settingsRepo SettingsRepo
}

func New(settingsRepo SettingsRepo) *Service {
	return &Service{
		settingsRepo: settingsRepo,
	}
}

func (s *Service) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrSettingsNotFound
	}
	return settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings *domain.AppSettings) (*domain.AppSettings, error) {
	if settings.SlotBookingCost.IsNegative() ||
		settings.MinBalanceForBooking.IsNegative() ||
		settings.RegistrationFee.IsNegative() ||
		settings.CancellationDeadlineHours < 0 {
		return nil, ErrInvalidSettings
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	zap.L().Info("app settings updated",
		zap.String("slot_booking_cost", settings.SlotBookingCost.String()),
		zap.Int("cancellation_deadline_hours", settings.CancellationDeadlineHours))
	return settings, nil
}
