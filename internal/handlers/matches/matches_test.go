package matches

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/dto"
	matchservice "github.com/shuttleclub/shuttleclub/internal/service/matchservice"
	"github.com/shuttleclub/shuttleclub/internal/service/ratingservice"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
)

func NewMock(t *testing.T) (*MatchesHandler, *MockService, *MockHistoryService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	historyService := NewMockHistoryService(ctrl)
	handler := New(service, historyService)
	defer ctrl.Finish()
	return handler, service, historyService
}

func newRequest(method, target, body, matchID string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	ctx := context.WithValue(r.Context(), auth.MemberIDKey, "m1")
	if matchID != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", matchID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return r.WithContext(ctx)
}

func intPtr(v int) *int { return &v }

func TestCreateMatchHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"team1":["m1"],"team2":["m2"],"game_type":"singles"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateMatch(gomock.Any(), "m1", gomock.Any()).
					DoAndReturn(func(_ context.Context, creatorID string, input matchservice.CreateMatchInput) (*domain.Match, error) {
						assert.Equal(t, []string{"m1"}, input.Team1)
						assert.Equal(t, []string{"m2"}, input.Team2)
						return &domain.Match{
							ID:          "match1",
							Team1:       input.Team1,
							Team2:       input.Team2,
							GameType:    input.GameType,
							Status:      matchservice.StatusPendingConfirmation,
							CreatedBy:   creatorID,
							ConfirmedBy: []string{creatorID},
						}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"team1":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Creator not on a team",
			body: `{"team1":["m2"],"team2":["m3"],"game_type":"singles"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateMatch(gomock.Any(), "m1", gomock.Any()).
					Return(nil, matchservice.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Overlapping teams",
			body: `{"team1":["m1"],"team2":["m1"],"game_type":"singles"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateMatch(gomock.Any(), "m1", gomock.Any()).
					Return(nil, matchservice.ErrInvalidTeams)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"team1":["m1"],"team2":["m2"],"game_type":"singles"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateMatch(gomock.Any(), "m1", gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.CreateMatch(w, newRequest(http.MethodPost, "/matches", tt.body, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestConfirmMatchHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedDeltas int
	}{
		{
			name: "Confirmation with scores applies ratings",
			body: `{"score1":11,"score2":9}`,
			prepareMock: func() {
				service.EXPECT().
					ConfirmMatch(gomock.Any(), "m1", "match1", intPtr(11), intPtr(9)).
					Return(&domain.Match{
						ID:     "match1",
						Status: matchservice.StatusConfirmed,
						Score1: intPtr(11),
						Score2: intPtr(9),
					}, []ratingservice.RatingDelta{
						{MemberID: "m1", OldRating: 1000, NewRating: 1020, Change: 20, Outcome: ratingservice.OutcomeWin},
						{MemberID: "m2", OldRating: 1000, NewRating: 980, Change: -20, Outcome: ratingservice.OutcomeLoss},
					}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedDeltas: 2,
		},
		{
			name: "Confirmation without scores",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().
					ConfirmMatch(gomock.Any(), "m1", "match1", nil, nil).
					Return(&domain.Match{ID: "match1", Status: matchservice.StatusAwaitingScores}, nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already confirmed",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().
					ConfirmMatch(gomock.Any(), "m1", "match1", nil, nil).
					Return(nil, nil, matchservice.ErrAlreadyConfirmed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Not a participant",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().
					ConfirmMatch(gomock.Any(), "m1", "match1", nil, nil).
					Return(nil, nil, matchservice.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Equal scores rejected",
			body: `{"score1":10,"score2":10}`,
			prepareMock: func() {
				service.EXPECT().
					ConfirmMatch(gomock.Any(), "m1", "match1", intPtr(10), intPtr(10)).
					Return(nil, nil, matchservice.ErrInvalidScore)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Match not found",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().
					ConfirmMatch(gomock.Any(), "m1", "match1", nil, nil).
					Return(nil, nil, matchservice.ErrMatchNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.ConfirmMatch(w, newRequest(http.MethodPost, "/matches/match1/confirm", tt.body, "match1"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ConfirmMatchResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.RatingUpdates, tt.expectedDeltas)
			}
		})
	}
}

func TestGetMatchHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().GetMatch(gomock.Any(), "match1").Return(&domain.Match{
		ID: "match1", Status: matchservice.StatusPendingConfirmation,
	}, nil)
	w := httptest.NewRecorder()
	handler.GetMatch(w, newRequest(http.MethodGet, "/matches/match1", "", "match1"))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().GetMatch(gomock.Any(), "missing").Return(nil, matchservice.ErrMatchNotFound)
	w = httptest.NewRecorder()
	handler.GetMatch(w, newRequest(http.MethodGet, "/matches/missing", "", "missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectMatchHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful rejection",
			prepareMock: func() {
				service.EXPECT().RejectMatch(gomock.Any(), "m1", "match1").Return(&domain.Match{
					ID: "match1", Status: matchservice.StatusRejected,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Terminal match",
			prepareMock: func() {
				service.EXPECT().RejectMatch(gomock.Any(), "m1", "match1").Return(nil, matchservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Match not found",
			prepareMock: func() {
				service.EXPECT().RejectMatch(gomock.Any(), "m1", "match1").Return(nil, matchservice.ErrMatchNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.RejectMatch(w, newRequest(http.MethodPost, "/matches/match1/reject", "", "match1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCancellationHandlers(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Request stored", func(t *testing.T) {
		service.EXPECT().RequestCancellation(gomock.Any(), "m1", "match1").Return(&domain.Match{
			ID: "match1", Status: matchservice.StatusRequestedCancellation,
		}, nil)
		w := httptest.NewRecorder()
		handler.RequestCancellation(w, newRequest(http.MethodPost, "/matches/match1/cancellation-request", "", "match1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Approve cancels the match", func(t *testing.T) {
		service.EXPECT().ProcessCancellation(gomock.Any(), "m1", "match1", "approve").Return(&domain.Match{
			ID: "match1", Status: matchservice.StatusCancelled,
		}, nil)
		w := httptest.NewRecorder()
		handler.ProcessCancellation(w, newRequest(http.MethodPost, "/matches/match1/cancellation", `{"action":"approve"}`, "match1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown action", func(t *testing.T) {
		service.EXPECT().ProcessCancellation(gomock.Any(), "m1", "match1", "destroy").Return(nil, matchservice.ErrInvalidAction)
		w := httptest.NewRecorder()
		handler.ProcessCancellation(w, newRequest(http.MethodPost, "/matches/match1/cancellation", `{"action":"destroy"}`, "match1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No pending request", func(t *testing.T) {
		service.EXPECT().ProcessCancellation(gomock.Any(), "m1", "match1", "approve").Return(nil, matchservice.ErrInvalidStatus)
		w := httptest.NewRecorder()
		handler.ProcessCancellation(w, newRequest(http.MethodPost, "/matches/match1/cancellation", `{"action":"approve"}`, "match1"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminUpdateMatchHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful patch",
			body: `{"score1":15,"status":"confirmed"}`,
			prepareMock: func() {
				service.EXPECT().
					AdminUpdateMatch(gomock.Any(), "m1", "match1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, updates matchservice.AdminMatchUpdate) (*domain.Match, error) {
						assert.Equal(t, 15, *updates.Score1)
						assert.Equal(t, matchservice.StatusConfirmed, *updates.Status)
						assert.Nil(t, updates.Score2)
						return &domain.Match{ID: "match1", Status: matchservice.StatusConfirmed}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"score1":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Match not found",
			body: `{"score1":15}`,
			prepareMock: func() {
				service.EXPECT().
					AdminUpdateMatch(gomock.Any(), "m1", "match1", gomock.Any()).
					Return(nil, matchservice.ErrMatchNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.AdminUpdateMatch(w, newRequest(http.MethodPatch, "/matches/match1", tt.body, "match1"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, _, historyService := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				historyService.EXPECT().GetHistory(gomock.Any(), "m1").Return([]domain.MatchHistoryEntry{
					{MatchID: "match1", OldRating: 1000, NewRating: 1020, RatingChange: 20, Outcome: ratingservice.OutcomeWin, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No history",
			prepareMock: func() {
				historyService.EXPECT().GetHistory(gomock.Any(), "m1").Return([]domain.MatchHistoryEntry{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				historyService.EXPECT().GetHistory(gomock.Any(), "m1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.GetHistory(w, newRequest(http.MethodGet, "/members/me/history", "", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MatchHistoryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
