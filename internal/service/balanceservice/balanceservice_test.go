package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/notify"
	"github.com/shuttleclub/shuttleclub/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	sink := notify.NewMockSink(ctrl)
	sink.EXPECT().Publish(gomock.Any()).AnyTimes()

	service := New(memberRepo, ledgerRepo, txManager, sink)
	defer ctrl.Finish()
	return service, memberRepo, ledgerRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestGetBalance(t *testing.T) {
	service, memberRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		memberID      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Retrieve balance successfully",
			memberID: "m1",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&domain.Member{
					ID: "m1", Balance: decimal.NewFromInt(42),
				}, nil)
			},
		},
		{
			name:     "Member not found",
			memberID: "missing",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name:     "Error retrieving balance",
			memberID: "m1",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			member, err := service.GetBalance(context.Background(), tt.memberID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, member.Balance.Equal(decimal.NewFromInt(42)))
			}
		})
	}
}

func TestProcessTopUp(t *testing.T) {
	service, memberRepo, ledgerRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name           string
		amount         decimal.Decimal
		prepareMock    func()
		expectedResult *TopUpResult
		expectedError  error
	}{
		{
			name:   "Plain credit with no fee due",
			amount: decimal.NewFromInt(20),
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&domain.Member{
					ID: "m1", Balance: decimal.NewFromInt(5), RegistrationFeeDue: decimal.Zero,
				}, nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) error {
						assert.Equal(t, domain.TxTypeTopUp, entry.Type)
						assert.True(t, entry.Amount.Equal(decimal.NewFromInt(20)))
						return nil
					})
				memberRepo.EXPECT().UpdateBalance(gomock.Any(), "m1", decimal.NewFromInt(25), decimal.Zero).Return(nil)
			},
			expectedResult: &TopUpResult{
				Credited:   decimal.NewFromInt(20),
				FeeSettled: decimal.Zero,
				Balance:    decimal.NewFromInt(25),
			},
		},
		{
			name:   "Outstanding registration fee is settled from the credit",
			amount: decimal.NewFromInt(20),
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&domain.Member{
					ID: "m1", Balance: decimal.Zero, RegistrationFeeDue: decimal.NewFromInt(10),
				}, nil)
				topUp := ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) error {
						assert.Equal(t, domain.TxTypeTopUp, entry.Type)
						return nil
					})
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).After(topUp).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) error {
						assert.Equal(t, domain.TxTypeRegistrationFeeDeducted, entry.Type)
						assert.True(t, entry.Amount.Equal(decimal.NewFromInt(-10)))
						return nil
					})
				memberRepo.EXPECT().UpdateBalance(gomock.Any(), "m1", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, balance, feeDue decimal.Decimal) error {
						assert.True(t, balance.Equal(decimal.NewFromInt(10)))
						assert.True(t, feeDue.IsZero())
						return nil
					})
			},
			expectedResult: &TopUpResult{
				Credited:   decimal.NewFromInt(20),
				FeeSettled: decimal.NewFromInt(10),
				Balance:    decimal.NewFromInt(10),
			},
		},
		{
			name:   "Fee larger than the credit is settled partially",
			amount: decimal.NewFromInt(4),
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&domain.Member{
					ID: "m1", Balance: decimal.Zero, RegistrationFeeDue: decimal.NewFromInt(10),
				}, nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				memberRepo.EXPECT().UpdateBalance(gomock.Any(), "m1", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, balance, feeDue decimal.Decimal) error {
						assert.True(t, balance.IsZero())
						assert.True(t, feeDue.Equal(decimal.NewFromInt(6)))
						return nil
					})
			},
			expectedResult: &TopUpResult{
				Credited:   decimal.NewFromInt(4),
				FeeSettled: decimal.NewFromInt(4),
				Balance:    decimal.Zero,
			},
		},
		{
			name:          "Non-positive amount is rejected",
			amount:        decimal.Zero,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Member not found",
			amount: decimal.NewFromInt(20),
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ProcessTopUp(context.Background(), "m1", tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedResult.Credited.Equal(result.Credited))
				assert.True(t, tt.expectedResult.FeeSettled.Equal(result.FeeSettled))
				assert.True(t, tt.expectedResult.Balance.Equal(result.Balance))
			}
		})
	}
}

func TestProcessTopUpRetryRebuildsResult(t *testing.T) {
	service, memberRepo, ledgerRepo, txManager := NewMock(t)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			// first run mirrors an attempt whose commit aborts with a
			// serialization failure; only the second one lands
			_ = fn(ctx)
			return fn(ctx)
		},
	)

	// Attempt 1 still sees a fee due and settles it.
	memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&domain.Member{
		ID: "m1", Balance: decimal.Zero, RegistrationFeeDue: decimal.NewFromInt(10),
	}, nil)
	ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	memberRepo.EXPECT().UpdateBalance(gomock.Any(), "m1", decimal.NewFromInt(10), decimal.Zero).Return(nil)

	// Attempt 2 re-reads the member with the fee already settled elsewhere.
	memberRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&domain.Member{
		ID: "m1", Balance: decimal.NewFromInt(5), RegistrationFeeDue: decimal.Zero,
	}, nil)
	ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	memberRepo.EXPECT().UpdateBalance(gomock.Any(), "m1", decimal.NewFromInt(25), decimal.Zero).Return(nil)

	result, err := service.ProcessTopUp(context.Background(), "m1", decimal.NewFromInt(20))

	assert.NoError(t, err)
	assert.True(t, result.FeeSettled.IsZero())
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(25)))
}

func TestGetTransactions(t *testing.T) {
	service, _, ledgerRepo, _ := NewMock(t)

	ledgerRepo.EXPECT().ListByMember(gomock.Any(), "m1").Return([]domain.LedgerEntry{
		{ID: "t1", MemberID: "m1", Type: domain.TxTypeTopUp},
		{ID: "t2", MemberID: "m1", Type: domain.TxTypeBooking},
	}, nil)
	entries, err := service.GetTransactions(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	ledgerRepo.EXPECT().ListByMember(gomock.Any(), "m1").Return(nil, errors.New("db error"))
	_, err = service.GetTransactions(context.Background(), "m1")
	assert.Error(t, err)
}
