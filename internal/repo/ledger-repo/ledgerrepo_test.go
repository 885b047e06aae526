package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shuttleclub/shuttleclub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)

	slotID := "s1"
	entry := &domain.LedgerEntry{
		ID:          "t1",
		MemberID:    "m1",
		Amount:      decimal.NewFromInt(-4),
		Type:        domain.TxTypeBooking,
		Description: "slot booking",
		RelatedID:   &slotID,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Entry is inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs("t1", "m1", decimal.NewFromInt(-4), domain.TxTypeBooking, "slot booking", &slotID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs("t1", "m1", decimal.NewFromInt(-4), domain.TxTypeBooking, "slot booking", &slotID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Append(context.Background(), entry)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByMember(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name: "Entries newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "member_id", "amount", "type", "description", "related_id", "created_at"}).
					AddRow("t2", "m1", decimal.NewFromInt(20), domain.TxTypeTopUp, "balance top-up", nil, now).
					AddRow("t1", "m1", decimal.NewFromInt(-4), domain.TxTypeBooking, "slot booking", nil, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs("m1").
					WillReturnRows(rows)
			},
			expected: 2,
		},
		{
			name: "No entries",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "member_id", "amount", "type", "description", "related_id", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs("m1").
					WillReturnRows(rows)
			},
			expected: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs("m1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entries, err := repo.ListByMember(context.Background(), "m1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, entries, tt.expected)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
