package slotservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Slot, error)
	Create(ctx context.Context, slot *domain.Slot) error
	Update(ctx context.Context, slot *domain.Slot) error
	List(ctx context.Context, from time.Time) ([]domain.Slot, error)
}

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrInvalidWeeks = errors.New("weeks must be between 1 and 52")
	ErrSlotBooked   = errors.New("booked slot can't be made unavailable directly")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateSlot(ctx context.Context, startTime time.Time) (*domain.Slot, error) {
	slot := &domain.Slot{
		ID:        uuid.NewString(),
		StartTime: startTime,
		Available: true,
	}
	if err := s.repo.Create(ctx, slot); err != nil {
		zap.L().Error("can't create slot", zap.Error(err))
		return nil, err
	}
	return slot, nil
}

// CreateRecurring creates one slot per week at the same weekday and time.
func (s *Service) CreateRecurring(ctx context.Context, startTime time.Time, weeks int) ([]domain.Slot, error) {
	if weeks < 1 || weeks > 52 {
		return nil, ErrInvalidWeeks
	}
	slots := make([]domain.Slot, 0, weeks)
	for i := 0; i < weeks; i++ {
		slot := &domain.Slot{
			ID:        uuid.NewString(),
			StartTime: startTime.AddDate(0, 0, 7*i),
			Available: true,
		}
		if err := s.repo.Create(ctx, slot); err != nil {
			zap.L().Error("can't create recurring slot", zap.Error(err))
			return nil, err
		}
		slots = append(slots, *slot)
	}
	return slots, nil
}

func (s *Service) ListSlots(ctx context.Context, from time.Time) ([]domain.Slot, error) {
	slots, err := s.repo.List(ctx, from)
	if err != nil {
		zap.L().Error("can't list slots", zap.Error(err))
		return nil, err
	}
	return slots, nil
}

// SetAvailability toggles the admin-held state. Booked slots must go through
// cancellation first so the money flow stays consistent.
func (s *Service) SetAvailability(ctx context.Context, slotID string, available bool) (*domain.Slot, error) {
	slot, err := s.repo.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if slot.IsBooked {
		return nil, ErrSlotBooked
	}
	slot.Available = available
	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}
