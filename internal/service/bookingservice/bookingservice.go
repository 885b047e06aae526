package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/notify"
	"github.com/shuttleclub/shuttleclub/internal/pg"
)

type SlotRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Slot, error)
	FindBookedAt(ctx context.Context, memberID string, startTime time.Time) (*domain.Slot, error)
	Update(ctx context.Context, slot *domain.Slot) error
	GetWaitlist(ctx context.Context, slotID string) ([]domain.WaitlistEntry, error)
	AddToWaitlist(ctx context.Context, entry *domain.WaitlistEntry) error
	RemoveFromWaitlist(ctx context.Context, slotID, memberID string) error
}

type MemberRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	UpdateBalance(ctx context.Context, id string, balance, feeDue decimal.Decimal) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrSettingsNotFound    = errors.New("app settings not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyBooked       = errors.New("slot already booked")
	ErrNotAvailable        = errors.New("slot not available")
	ErrDoubleBooking       = errors.New("member already holds a slot at this time")
	ErrAlreadyOnWaitlist   = errors.New("member already on waitlist")
	ErrNotOwner            = errors.New("slot booked by another member")
	ErrNotBooked           = errors.New("slot is not booked")
)

// BookingPolicy is the settings snapshot one operation runs against. It is
// read once inside the transaction and never consulted again.
type BookingPolicy struct {
	Cost                      decimal.Decimal
	MinBalance                decimal.Decimal
	CancellationDeadlineHours int
}

type BookingResult struct {
	Waitlisted       bool
	WaitlistPosition int
	WaitlistHead     string
	Balance          decimal.Decimal
}

type CancelResult struct {
	Refunded         bool
	RefundAmount     decimal.Decimal
	PromotedMemberID string
	Balance          decimal.Decimal
}

type Service struct {
	slotRepo     SlotRepo
	memberRepo   MemberRepo
	ledgerRepo   LedgerRepo
	settingsRepo SettingsRepo
	txManager    pg.TXManager
	sink         notify.Sink
}

func New(slotRepo SlotRepo, memberRepo MemberRepo, ledgerRepo LedgerRepo, settingsRepo SettingsRepo, txManager pg.TXManager, sink notify.Sink) *Service {
	return &Service{
		slotRepo:     slotRepo,
		memberRepo:   memberRepo,
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		sink:         sink,
	}
}

// BookSlot books the slot for the member, or appends them to the waitlist
// when the slot is in the admin-held state. The whole operation runs in one
// transaction: all reads happen before any write, so a retry after a
// serialization conflict re-decides from fresh state. The result is built
// from scratch on every attempt; a retried transaction must not see what an
// aborted one concluded.
func (s *Service) BookSlot(ctx context.Context, memberID, slotID string) (*BookingResult, error) {
	var result *BookingResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		res := &BookingResult{}
		slot, err := s.slotRepo.FindByID(ctx, slotID)
		if err != nil {
			return err
		}
		if slot == nil {
			return ErrSlotNotFound
		}
		member, err := s.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		if settings == nil {
			return ErrSettingsNotFound
		}
		policy := BookingPolicy{
			Cost:       settings.SlotBookingCost,
			MinBalance: settings.MinBalanceForBooking,
		}
		waitlist, err := s.slotRepo.GetWaitlist(ctx, slotID)
		if err != nil {
			return err
		}

		// Held slot: not bookable, queue instead. No charge.
		if !slot.Available && !slot.IsBooked {
			for _, entry := range waitlist {
				if entry.MemberID == memberID {
					return ErrAlreadyOnWaitlist
				}
			}
			entry := &domain.WaitlistEntry{
				SlotID:   slotID,
				MemberID: memberID,
				AddedAt:  time.Now(),
			}
			if err := s.slotRepo.AddToWaitlist(ctx, entry); err != nil {
				return err
			}
			res.Waitlisted = true
			res.WaitlistPosition = len(waitlist) + 1
			res.Balance = member.Balance
			result = res
			return nil
		}

		if member.Balance.LessThan(policy.MinBalance) {
			return ErrInsufficientBalance
		}
		if slot.IsBooked {
			return ErrAlreadyBooked
		}
		if !slot.Available {
			return ErrNotAvailable
		}
		held, err := s.slotRepo.FindBookedAt(ctx, memberID, slot.StartTime)
		if err != nil {
			return err
		}
		if held != nil && held.ID != slot.ID {
			return ErrDoubleBooking
		}

		member.Balance = member.Balance.Sub(policy.Cost)
		if err := s.memberRepo.UpdateBalance(ctx, memberID, member.Balance, member.RegistrationFeeDue); err != nil {
			return err
		}
		slot.IsBooked = true
		slot.BookedBy = memberID
		slot.Available = false
		if err := s.slotRepo.Update(ctx, slot); err != nil {
			return err
		}
		entry := &domain.LedgerEntry{
			ID:          uuid.NewString(),
			MemberID:    memberID,
			Amount:      policy.Cost.Neg(),
			Type:        domain.TxTypeBooking,
			Description: fmt.Sprintf("booking for slot at %s", slot.StartTime.Format(time.RFC3339)),
			RelatedID:   &slot.ID,
		}
		if err := s.ledgerRepo.Append(ctx, entry); err != nil {
			return err
		}

		// Booking does not pop the queue; the head just gets told the slot
		// went to someone else.
		if len(waitlist) > 0 {
			res.WaitlistHead = waitlist[0].MemberID
		}
		res.Balance = member.Balance
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishBooked(memberID, slotID, result)
	return result, nil
}

// CancelSlot frees the member's booking. A full refund applies only when the
// slot starts at least the configured deadline from now. The waitlist head is
// popped and reported for notification; they are not booked automatically.
func (s *Service) CancelSlot(ctx context.Context, memberID, slotID string) (*CancelResult, error) {
	var result *CancelResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		res := &CancelResult{RefundAmount: decimal.Zero}
		slot, err := s.slotRepo.FindByID(ctx, slotID)
		if err != nil {
			return err
		}
		if slot == nil {
			return ErrSlotNotFound
		}
		member, err := s.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		if settings == nil {
			return ErrSettingsNotFound
		}
		waitlist, err := s.slotRepo.GetWaitlist(ctx, slotID)
		if err != nil {
			return err
		}

		if !slot.IsBooked {
			return ErrNotBooked
		}
		if slot.BookedBy != memberID {
			return ErrNotOwner
		}

		hoursUntilStart := time.Until(slot.StartTime).Hours()
		txType := domain.TxTypeCancellationNoRefund
		amount := decimal.Zero
		if hoursUntilStart >= float64(settings.CancellationDeadlineHours) {
			txType = domain.TxTypeCancellationRefund
			amount = settings.SlotBookingCost
			member.Balance = member.Balance.Add(amount)
			if err := s.memberRepo.UpdateBalance(ctx, memberID, member.Balance, member.RegistrationFeeDue); err != nil {
				return err
			}
			res.Refunded = true
			res.RefundAmount = amount
		}
		entry := &domain.LedgerEntry{
			ID:          uuid.NewString(),
			MemberID:    memberID,
			Amount:      amount,
			Type:        txType,
			Description: fmt.Sprintf("cancellation of slot at %s", slot.StartTime.Format(time.RFC3339)),
			RelatedID:   &slot.ID,
		}
		if err := s.ledgerRepo.Append(ctx, entry); err != nil {
			return err
		}

		slot.IsBooked = false
		slot.BookedBy = ""
		slot.Available = true
		if err := s.slotRepo.Update(ctx, slot); err != nil {
			return err
		}

		if len(waitlist) > 0 {
			head := waitlist[0]
			if err := s.slotRepo.RemoveFromWaitlist(ctx, slotID, head.MemberID); err != nil {
				return err
			}
			res.PromotedMemberID = head.MemberID
		}
		res.Balance = member.Balance
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishCancelled(memberID, slotID, result)
	return result, nil
}

func (s *Service) publishBooked(memberID, slotID string, result *BookingResult) {
	if result.Waitlisted {
		s.sink.Publish(notify.Event{
			Kind:      notify.KindWaitlisted,
			MemberIDs: []string{memberID},
			Message:   fmt.Sprintf("added to waitlist at position %d", result.WaitlistPosition),
			RelatedID: slotID,
		})
		return
	}
	s.sink.Publish(notify.Event{
		Kind:      notify.KindSlotBooked,
		MemberIDs: []string{memberID},
		Message:   "slot booked",
		RelatedID: slotID,
	})
	if result.WaitlistHead != "" {
		s.sink.Publish(notify.Event{
			Kind:      notify.KindSlotBooked,
			MemberIDs: []string{result.WaitlistHead},
			Message:   "the slot you are waiting for was booked",
			RelatedID: slotID,
		})
	}
	zap.L().Info("slot booked", zap.String("slotID", slotID), zap.String("memberID", memberID))
}

func (s *Service) publishCancelled(memberID, slotID string, result *CancelResult) {
	if result.PromotedMemberID != "" {
		s.sink.Publish(notify.Event{
			Kind:      notify.KindSlotFreed,
			MemberIDs: []string{result.PromotedMemberID},
			Message:   "a slot you were waiting for is now open",
			RelatedID: slotID,
		})
	}
	zap.L().Info("slot cancelled", zap.String("slotID", slotID), zap.String("memberID", memberID), zap.Bool("refunded", result.Refunded))
}
