package balanceservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/notify"
	"github.com/shuttleclub/shuttleclub/internal/pg"
)

type MemberRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	UpdateBalance(ctx context.Context, id string, balance, feeDue decimal.Decimal) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	ListByMember(ctx context.Context, memberID string) ([]domain.LedgerEntry, error)
}

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidAmount  = errors.New("top-up amount must be positive")
)

type TopUpResult struct {
	Credited   decimal.Decimal
	FeeSettled decimal.Decimal
	Balance    decimal.Decimal
}

type Service struct {
	memberRepo MemberRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
	sink       notify.Sink
}

func New(memberRepo MemberRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, sink notify.Sink) *Service {
	return &Service{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		sink:       sink,
	}
}

func (s *Service) GetBalance(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// ProcessTopUp credits the balance and settles any outstanding registration
// fee from the fresh funds, all in one transaction. The credit and the fee
// deduction each get their own ledger entry.
func (s *Service) ProcessTopUp(ctx context.Context, memberID string, amount decimal.Decimal) (*TopUpResult, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *TopUpResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		res := &TopUpResult{Credited: amount, FeeSettled: decimal.Zero}
		member, err := s.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}

		member.Balance = member.Balance.Add(amount)
		entry := &domain.LedgerEntry{
			ID:          uuid.NewString(),
			MemberID:    memberID,
			Amount:      amount,
			Type:        domain.TxTypeTopUp,
			Description: "balance top-up",
		}
		if err := s.ledgerRepo.Append(ctx, entry); err != nil {
			return err
		}

		if member.RegistrationFeeDue.IsPositive() {
			settle := member.RegistrationFeeDue
			if member.Balance.LessThan(settle) {
				settle = member.Balance
			}
			if settle.IsPositive() {
				member.Balance = member.Balance.Sub(settle)
				member.RegistrationFeeDue = member.RegistrationFeeDue.Sub(settle)
				feeEntry := &domain.LedgerEntry{
					ID:          uuid.NewString(),
					MemberID:    memberID,
					Amount:      settle.Neg(),
					Type:        domain.TxTypeRegistrationFeeDeducted,
					Description: fmt.Sprintf("registration fee settled (%s remaining)", member.RegistrationFeeDue),
				}
				if err := s.ledgerRepo.Append(ctx, feeEntry); err != nil {
					return err
				}
				res.FeeSettled = settle
			}
		}

		if err := s.memberRepo.UpdateBalance(ctx, memberID, member.Balance, member.RegistrationFeeDue); err != nil {
			return err
		}
		res.Balance = member.Balance
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sink.Publish(notify.Event{
		Kind:      notify.KindTopUp,
		MemberIDs: []string{memberID},
		Message:   fmt.Sprintf("balance topped up by %s", amount),
	})
	return result, nil
}

func (s *Service) GetTransactions(ctx context.Context, memberID string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
