package matchrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
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

func intPtr(v int) *int { return &v }

var matchRowColumns = []string{"id", "team1", "team2", "slot_time", "game_type", "score1", "score2",
	"status", "previous_status", "created_by", "confirmed_by", "submitted_by", "submitted_at",
	"rejected_by", "rejected_at", "cancellation_requested_by", "cancellation_requested_at",
	"created_at", "updated_at"}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing match is returned",
			id:   "match1",
			mockSetup: func() {
				rows := pgxmock.NewRows(matchRowColumns).
					AddRow("match1", []string{"m1"}, []string{"m2"}, now, "singles", intPtr(11), intPtr(9),
						"pending_confirmation", nil, "m1", []string{"m1"}, nil, nil,
						nil, nil, nil, nil, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM matches`)).
					WithArgs("match1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing match returns nil",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM matches`)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   "match1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM matches`)).
					WithArgs("match1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			match, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.Equal(t, "match1", match.ID)
				assert.Equal(t, []string{"m1"}, match.Team1)
				assert.Equal(t, 11, *match.Score1)
			} else {
				assert.Nil(t, match)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	match := &domain.Match{
		ID:          "match1",
		Team1:       []string{"m1"},
		Team2:       []string{"m2"},
		SlotTime:    now,
		GameType:    "singles",
		Status:      "pending_confirmation",
		CreatedBy:   "m1",
		ConfirmedBy: []string{"m1"},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO matches`)).
		WithArgs("match1", []string{"m1"}, []string{"m2"}, now, "singles", (*int)(nil), (*int)(nil),
			"pending_confirmation", "m1", []string{"m1"}, (*string)(nil), (*time.Time)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(context.Background(), match)
	assert.NoError(t, err)
	assert.Equal(t, now, match.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO matches`)).
		WithArgs("match1", []string{"m1"}, []string{"m2"}, now, "singles", (*int)(nil), (*int)(nil),
			"pending_confirmation", "m1", []string{"m1"}, (*string)(nil), (*time.Time)(nil)).
		WillReturnError(errors.New("database error"))

	err = repo.Create(context.Background(), match)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	match := &domain.Match{
		ID:          "match1",
		Team1:       []string{"m1"},
		Team2:       []string{"m2"},
		SlotTime:    now,
		GameType:    "singles",
		Score1:      intPtr(11),
		Score2:      intPtr(9),
		Status:      "confirmed",
		CreatedBy:   "m1",
		ConfirmedBy: []string{"m1", "m2"},
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE matches`)).
		WithArgs(intPtr(11), intPtr(9), "confirmed", (*string)(nil), []string{"m1", "m2"},
			(*string)(nil), (*time.Time)(nil), (*string)(nil), (*time.Time)(nil),
			(*string)(nil), (*time.Time)(nil), "singles", now, "match1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), match))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE matches`)).
		WithArgs(intPtr(11), intPtr(9), "confirmed", (*string)(nil), []string{"m1", "m2"},
			(*string)(nil), (*time.Time)(nil), (*string)(nil), (*time.Time)(nil),
			(*string)(nil), (*time.Time)(nil), "singles", now, "match1").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Update(context.Background(), match))
	assert.NoError(t, mock.ExpectationsWereMet())
}
