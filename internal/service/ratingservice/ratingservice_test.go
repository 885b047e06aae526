package ratingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shuttleclub/shuttleclub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockHistoryRepo) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	historyRepo := NewMockHistoryRepo(ctrl)
	service := New(memberRepo, historyRepo)
	defer ctrl.Finish()
	return service, memberRepo, historyRepo
}

func intPtr(v int) *int { return &v }

func TestKFactor(t *testing.T) {
	tests := []struct {
		name        string
		rating      int
		gamesPlayed int
		expected    int
	}{
		{"Newcomer gets the highest K", 1000, 5, 40},
		{"Newcomer with high rating still gets 40", 1600, 5, 40},
		{"Experienced below 1500", 1400, 20, 32},
		{"Experienced at 1500 and above", 1600, 50, 24},
		{"Exactly 10 games, low rating", 1499, 10, 32},
		{"Exactly 1500 with experience", 1500, 10, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KFactor(tt.rating, tt.gamesPlayed))
		})
	}
}

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1000, 1000), 1e-9)
	assert.InDelta(t, 0.7597, ExpectedScore(1200, 1000), 1e-4)
	assert.InDelta(t, 0.2403, ExpectedScore(1000, 1200), 1e-4)
	// Symmetry: both sides always sum to 1.
	assert.InDelta(t, 1.0, ExpectedScore(1342, 987)+ExpectedScore(987, 1342), 1e-9)
}

func TestApplySingles(t *testing.T) {
	service, memberRepo, historyRepo := NewMock(t)

	match := &domain.Match{
		ID:     "match1",
		Team1:  []string{"m1"},
		Team2:  []string{"m2"},
		Score1: intPtr(11),
		Score2: intPtr(9),
	}
	memberRepo.EXPECT().FindByIDs(gomock.Any(), []string{"m1", "m2"}).Return([]domain.Member{
		{ID: "m1", Rating: 1000, GamesPlayed: 0},
		{ID: "m2", Rating: 1000, GamesPlayed: 0},
	}, nil)
	// Equal ratings, K=40: winner +20, loser -20.
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m1", 1020, 1, 1, 0, 0).Return(nil)
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m2", 980, 1, 0, 1, 0).Return(nil)
	historyRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.MatchHistoryEntry) error {
			assert.Equal(t, "match1", entry.MatchID)
			assert.Equal(t, entry.NewRating-entry.OldRating, entry.RatingChange)
			return nil
		}).Times(2)

	deltas, err := service.Apply(context.Background(), match)
	assert.NoError(t, err)
	assert.Len(t, deltas, 2)
	assert.Equal(t, OutcomeWin, deltas[0].Outcome)
	assert.Equal(t, 20, deltas[0].Change)
	assert.Equal(t, OutcomeLoss, deltas[1].Outcome)
	assert.Equal(t, -20, deltas[1].Change)
}

func TestApplyRatingFloor(t *testing.T) {
	service, memberRepo, historyRepo := NewMock(t)

	match := &domain.Match{
		ID:     "match1",
		Team1:  []string{"m1"},
		Team2:  []string{"m2"},
		Score1: intPtr(5),
		Score2: intPtr(11),
	}
	memberRepo.EXPECT().FindByIDs(gomock.Any(), []string{"m1", "m2"}).Return([]domain.Member{
		{ID: "m1", Rating: 101, GamesPlayed: 20},
		{ID: "m2", Rating: 100, GamesPlayed: 20},
	}, nil)
	// m1 loses roughly 16 points which would land below the floor.
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m1", RatingFloor, 21, 0, 1, 0).Return(nil)
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m2", gomock.Any(), 21, 1, 0, 0).Return(nil)
	historyRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	deltas, err := service.Apply(context.Background(), match)
	assert.NoError(t, err)
	assert.Equal(t, RatingFloor, deltas[0].NewRating)
}

func TestApplyDraw(t *testing.T) {
	service, memberRepo, historyRepo := NewMock(t)

	match := &domain.Match{
		ID:     "match1",
		Team1:  []string{"m1"},
		Team2:  []string{"m2"},
		Score1: intPtr(10),
		Score2: intPtr(10),
	}
	memberRepo.EXPECT().FindByIDs(gomock.Any(), []string{"m1", "m2"}).Return([]domain.Member{
		{ID: "m1", Rating: 1000, GamesPlayed: 3},
		{ID: "m2", Rating: 1000, GamesPlayed: 3},
	}, nil)
	// Equal ratings drawing: zero change, draw counter bumps.
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m1", 1000, 4, 0, 0, 1).Return(nil)
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m2", 1000, 4, 0, 0, 1).Return(nil)
	historyRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	deltas, err := service.Apply(context.Background(), match)
	assert.NoError(t, err)
	assert.Equal(t, OutcomeDraw, deltas[0].Outcome)
	assert.Equal(t, 0, deltas[0].Change)
}

func TestApplyMissingProfile(t *testing.T) {
	service, memberRepo, historyRepo := NewMock(t)

	match := &domain.Match{
		ID:     "match1",
		Team1:  []string{"m1"},
		Team2:  []string{"ghost"},
		Score1: intPtr(11),
		Score2: intPtr(9),
	}
	// The missing opponent counts as DefaultRating in the average but gets no
	// update of their own.
	memberRepo.EXPECT().FindByIDs(gomock.Any(), []string{"m1", "ghost"}).Return([]domain.Member{
		{ID: "m1", Rating: 1000, GamesPlayed: 0},
	}, nil)
	memberRepo.EXPECT().UpdateRating(gomock.Any(), "m1", 1020, 1, 1, 0, 0).Return(nil)
	historyRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	deltas, err := service.Apply(context.Background(), match)
	assert.NoError(t, err)
	assert.Len(t, deltas, 1)
	assert.Equal(t, "m1", deltas[0].MemberID)
}

func TestApplyNoScores(t *testing.T) {
	service, _, _ := NewMock(t)

	_, err := service.Apply(context.Background(), &domain.Match{ID: "match1"})
	assert.ErrorIs(t, err, ErrNoScores)
}

func TestGetHistory(t *testing.T) {
	service, _, historyRepo := NewMock(t)

	historyRepo.EXPECT().ListByMember(gomock.Any(), "m1").Return([]domain.MatchHistoryEntry{
		{MatchID: "match1", MemberID: "m1", Outcome: OutcomeWin},
	}, nil)
	entries, err := service.GetHistory(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	historyRepo.EXPECT().ListByMember(gomock.Any(), "m1").Return(nil, errors.New("db error"))
	_, err = service.GetHistory(context.Background(), "m1")
	assert.Error(t, err)
}
