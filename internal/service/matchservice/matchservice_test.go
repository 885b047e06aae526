package matchservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/notify"
	"github.com/shuttleclub/shuttleclub/internal/pg"
	"github.com/shuttleclub/shuttleclub/internal/service/ratingservice"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRatingService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	rating := NewMockRatingService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	sink := notify.NewMockSink(ctrl)
	sink.EXPECT().Publish(gomock.Any()).AnyTimes()

	service := New(repo, rating, txManager, sink)
	defer ctrl.Finish()
	return service, repo, rating, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreateMatch(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		creatorID     string
		input         CreateMatchInput
		prepareMock   func()
		check         func(t *testing.T, match *domain.Match)
		expectedError error
	}{
		{
			name:      "Creator is pre-seeded as confirmed",
			creatorID: "m1",
			input: CreateMatchInput{
				Team1:    []string{"m1"},
				Team2:    []string{"m2"},
				GameType: "singles",
				SlotTime: time.Now(),
			},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, match *domain.Match) {
				assert.Equal(t, StatusPendingConfirmation, match.Status)
				assert.Equal(t, []string{"m1"}, match.ConfirmedBy)
				assert.Nil(t, match.SubmittedBy)
			},
		},
		{
			name:      "Scores at creation are stored but do not advance status",
			creatorID: "m1",
			input: CreateMatchInput{
				Team1:    []string{"m1", "m3"},
				Team2:    []string{"m2", "m4"},
				GameType: "doubles",
				SlotTime: time.Now(),
				Score1:   intPtr(21),
				Score2:   intPtr(15),
			},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, match *domain.Match) {
				assert.Equal(t, StatusPendingConfirmation, match.Status)
				assert.Equal(t, 21, *match.Score1)
				assert.Equal(t, "m1", *match.SubmittedBy)
			},
		},
		{
			name:      "Creator must play",
			creatorID: "m5",
			input: CreateMatchInput{
				Team1:    []string{"m1"},
				Team2:    []string{"m2"},
				GameType: "singles",
			},
			prepareMock:   func() {},
			expectedError: ErrNotParticipant,
		},
		{
			name:      "Duplicate player across teams",
			creatorID: "m1",
			input: CreateMatchInput{
				Team1:    []string{"m1", "m2"},
				Team2:    []string{"m2"},
				GameType: "doubles",
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidTeams,
		},
		{
			name:      "Team too large",
			creatorID: "m1",
			input: CreateMatchInput{
				Team1:    []string{"m1", "m2", "m3"},
				Team2:    []string{"m4"},
				GameType: "doubles",
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidTeams,
		},
		{
			name:      "Equal scores rejected",
			creatorID: "m1",
			input: CreateMatchInput{
				Team1:    []string{"m1"},
				Team2:    []string{"m2"},
				GameType: "singles",
				Score1:   intPtr(10),
				Score2:   intPtr(10),
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			match, err := service.CreateMatch(context.Background(), tt.creatorID, tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.check(t, match)
			}
		})
	}
}

func TestConfirmMatch(t *testing.T) {
	service, repo, rating, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name           string
		actorID        string
		score1, score2 *int
		prepareMock    func()
		expectedStatus string
		expectedDeltas int
		expectedError  error
	}{
		{
			name:    "Opponent confirmation with scores confirms and applies ratings",
			actorID: "m2",
			score1:  intPtr(11),
			score2:  intPtr(9),
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusPendingConfirmation, CreatedBy: "m1", ConfirmedBy: []string{"m1"},
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, match *domain.Match) error {
						assert.Equal(t, StatusConfirmed, match.Status)
						return nil
					})
				rating.EXPECT().Apply(gomock.Any(), gomock.Any()).Return([]ratingservice.RatingDelta{
					{MemberID: "m2", OldRating: 1000, NewRating: 1020, Change: 20, Outcome: "win"},
					{MemberID: "m1", OldRating: 1000, NewRating: 980, Change: -20, Outcome: "loss"},
				}, nil)
			},
			expectedStatus: StatusConfirmed,
			expectedDeltas: 2,
		},
		{
			name:    "Opponent confirmation without scores parks in awaiting_scores",
			actorID: "m2",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusPendingConfirmation, CreatedBy: "m1", ConfirmedBy: []string{"m1"},
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, match *domain.Match) error {
						assert.Equal(t, StatusAwaitingScores, match.Status)
						return nil
					})
			},
			expectedStatus: StatusAwaitingScores,
		},
		{
			name:    "Confirming twice fails",
			actorID: "m1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusPendingConfirmation, CreatedBy: "m1", ConfirmedBy: []string{"m1"},
				}, nil)
			},
			expectedError: ErrAlreadyConfirmed,
		},
		{
			name:    "Equal scores rejected",
			actorID: "m2",
			score1:  intPtr(10),
			score2:  intPtr(10),
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusPendingConfirmation, CreatedBy: "m1", ConfirmedBy: []string{"m1"},
				}, nil)
			},
			expectedError: ErrInvalidScore,
		},
		{
			name:    "Non-participant cannot confirm",
			actorID: "m9",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusPendingConfirmation, CreatedBy: "m1", ConfirmedBy: []string{"m1"},
				}, nil)
			},
			expectedError: ErrNotParticipant,
		},
		{
			name:    "Confirmed match cannot be confirmed again",
			actorID: "m2",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusConfirmed, CreatedBy: "m1", ConfirmedBy: []string{"m1", "m2"},
				}, nil)
			},
			expectedError: ErrInvalidStatus,
		},
		{
			name:    "Match not found",
			actorID: "m1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(nil, nil)
			},
			expectedError: ErrMatchNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			match, deltas, err := service.ConfirmMatch(context.Background(), tt.actorID, "match1", tt.score1, tt.score2)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, match.Status)
				assert.Len(t, deltas, tt.expectedDeltas)
			}
		})
	}
}

func TestDoublesConfirmation(t *testing.T) {
	service, repo, rating, txManager := NewMock(t)
	passthroughTx(txManager)

	// A single confirmation from the opposing pair is enough.
	repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
		ID: "match1", Team1: []string{"m1", "m3"}, Team2: []string{"m2", "m4"},
		Status: StatusPendingConfirmation, CreatedBy: "m1", ConfirmedBy: []string{"m1"},
		Score1: intPtr(21), Score2: intPtr(18),
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	rating.EXPECT().Apply(gomock.Any(), gomock.Any()).Return([]ratingservice.RatingDelta{
		{MemberID: "m1"}, {MemberID: "m3"}, {MemberID: "m2"}, {MemberID: "m4"},
	}, nil)

	match, deltas, err := service.ConfirmMatch(context.Background(), "m4", "match1", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, match.Status)
	assert.Len(t, deltas, 4)
}

func TestRejectMatch(t *testing.T) {
	service, repo, _, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pending match can be rejected",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
					Status: StatusPendingConfirmation, CreatedBy: "m1",
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, match *domain.Match) error {
						assert.Equal(t, StatusRejected, match.Status)
						assert.Equal(t, "admin1", *match.RejectedBy)
						return nil
					})
			},
		},
		{
			name: "Terminal match cannot be rejected",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
					ID: "match1", Status: StatusConfirmed,
				}, nil)
			},
			expectedError: ErrInvalidStatus,
		},
		{
			name: "Repo error propagates",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "match1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.RejectMatch(context.Background(), "admin1", "match1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancellationFlow(t *testing.T) {
	service, repo, _, txManager := NewMock(t)
	passthroughTx(txManager)

	t.Run("Request stores the previous status", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
			Status: StatusAwaitingScores, CreatedBy: "m1",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, match *domain.Match) error {
				assert.Equal(t, StatusRequestedCancellation, match.Status)
				assert.Equal(t, StatusAwaitingScores, *match.PreviousStatus)
				return nil
			})

		_, err := service.RequestCancellation(context.Background(), "m1", "match1")
		assert.NoError(t, err)
	})

	t.Run("Approve cancels the match", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
			Status: StatusRequestedCancellation, PreviousStatus: strPtr(StatusAwaitingScores),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, match *domain.Match) error {
				assert.Equal(t, StatusCancelled, match.Status)
				return nil
			})

		match, err := service.ProcessCancellation(context.Background(), "admin1", "match1", CancellationApprove)
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, match.Status)
	})

	t.Run("Reject reverts to the stored previous status", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
			Status: StatusRequestedCancellation, PreviousStatus: strPtr(StatusConfirmed),
			Score1: intPtr(21), Score2: intPtr(15),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		match, err := service.ProcessCancellation(context.Background(), "admin1", "match1", CancellationReject)
		assert.NoError(t, err)
		assert.Equal(t, StatusConfirmed, match.Status)
		assert.Nil(t, match.PreviousStatus)
	})

	t.Run("Reject falls back to score presence when no previous status stored", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
			Status: StatusRequestedCancellation,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		match, err := service.ProcessCancellation(context.Background(), "admin1", "match1", CancellationReject)
		assert.NoError(t, err)
		assert.Equal(t, StatusAwaitingScores, match.Status)
	})

	t.Run("Unknown action fails fast", func(t *testing.T) {
		_, err := service.ProcessCancellation(context.Background(), "admin1", "match1", "shrug")
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("Request on an already requested match fails", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Team1: []string{"m1"}, Team2: []string{"m2"},
			Status: StatusRequestedCancellation,
		}, nil)

		_, err := service.RequestCancellation(context.Background(), "m1", "match1")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Process without a pending request fails", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Status: StatusConfirmed,
		}, nil)

		_, err := service.ProcessCancellation(context.Background(), "admin1", "match1", CancellationApprove)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestAdminUpdateMatch(t *testing.T) {
	service, repo, _, txManager := NewMock(t)
	passthroughTx(txManager)

	t.Run("Whitelisted fields are patched", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{
			ID: "match1", Status: StatusConfirmed, GameType: "singles",
			Score1: intPtr(11), Score2: intPtr(9),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		match, err := service.AdminUpdateMatch(context.Background(), "admin1", "match1", AdminMatchUpdate{
			Score1: intPtr(21),
			Status: strPtr(StatusAwaitingScores),
		})
		assert.NoError(t, err)
		assert.Equal(t, 21, *match.Score1)
		assert.Equal(t, 9, *match.Score2)
		assert.Equal(t, StatusAwaitingScores, match.Status)
		assert.Equal(t, "singles", match.GameType)
	})

	t.Run("Match not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := service.AdminUpdateMatch(context.Background(), "admin1", "missing", AdminMatchUpdate{})
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestGetMatch(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), "match1").Return(&domain.Match{ID: "match1"}, nil)
	match, err := service.GetMatch(context.Background(), "match1")
	assert.NoError(t, err)
	assert.Equal(t, "match1", match.ID)

	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
	_, err = service.GetMatch(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
