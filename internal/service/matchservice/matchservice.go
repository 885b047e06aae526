package matchservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/notify"
	"github.com/shuttleclub/shuttleclub/internal/pg"
	"github.com/shuttleclub/shuttleclub/internal/service/ratingservice"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Match, error)
	Create(ctx context.Context, match *domain.Match) error
	Update(ctx context.Context, match *domain.Match) error
}

type RatingService interface {
	Apply(ctx context.Context, match *domain.Match) ([]ratingservice.RatingDelta, error)
}

const (
	// StatusPendingConfirmation: created, waiting for an opponent to agree it happened.
	StatusPendingConfirmation = "pending_confirmation"
	// StatusAwaitingScores: an opponent confirmed but no scores submitted yet.
	StatusAwaitingScores = "awaiting_scores"
	// StatusConfirmed: terminal; ratings applied.
	StatusConfirmed = "confirmed"
	// StatusRejected: terminal; struck down by an admin.
	StatusRejected = "rejected"
	// StatusRequestedCancellation: a participant asked an admin to void the match.
	StatusRequestedCancellation = "requested_cancellation"
	// StatusCancelled: terminal; cancellation approved.
	StatusCancelled = "cancelled"
)

const (
	CancellationApprove = "approve"
	CancellationReject  = "reject"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrNotParticipant   = errors.New("actor is not a match participant")
	ErrAlreadyConfirmed = errors.New("actor already confirmed this match")
	ErrInvalidScore     = errors.New("scores must be two distinct non-negative integers")
	ErrInvalidTeams     = errors.New("invalid team composition")
	ErrInvalidStatus    = errors.New("operation not allowed in current match status")
	ErrInvalidAction    = errors.New("unknown cancellation action")
)

type CreateMatchInput struct {
	Team1    []string
	Team2    []string
	GameType string
	SlotTime time.Time
	Score1   *int
	Score2   *int
}

type AdminMatchUpdate struct {
	Score1   *int
	Score2   *int
	Status   *string
	GameType *string
	SlotTime *time.Time
}

type Service struct {
	repo      Repo
	rating    RatingService
	txManager pg.TXManager
	sink      notify.Sink
}

func New(repo Repo, rating RatingService, txManager pg.TXManager, sink notify.Sink) *Service {
	return &Service{
		repo:      repo,
		rating:    rating,
		txManager: txManager,
		sink:      sink,
	}
}

// CreateMatch records a new match in pending_confirmation with the creator
// pre-seeded as confirmed. Scores supplied at creation are stored but do not
// advance the status on their own.
func (s *Service) CreateMatch(ctx context.Context, creatorID string, input CreateMatchInput) (*domain.Match, error) {
	if err := validateTeams(input.Team1, input.Team2, creatorID); err != nil {
		return nil, err
	}
	if input.Score1 != nil || input.Score2 != nil {
		if err := validateScores(input.Score1, input.Score2); err != nil {
			return nil, err
		}
	}

	match := &domain.Match{
		ID:          uuid.NewString(),
		Team1:       input.Team1,
		Team2:       input.Team2,
		SlotTime:    input.SlotTime,
		GameType:    input.GameType,
		Score1:      input.Score1,
		Score2:      input.Score2,
		Status:      StatusPendingConfirmation,
		CreatedBy:   creatorID,
		ConfirmedBy: []string{creatorID},
	}
	if input.Score1 != nil {
		now := time.Now()
		match.SubmittedBy = &creatorID
		match.SubmittedAt = &now
	}

	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.sink.Publish(notify.Event{
		Kind:      notify.KindMatchCreated,
		MemberIDs: match.Players(),
		Message:   "a match was recorded, please confirm",
		RelatedID: match.ID,
	})
	return match, nil
}

// ConfirmMatch drives the confirmation protocol. The actor is appended to
// confirmed_by first; the status then advances depending on whether scores
// exist and whether anyone from the non-creator side has confirmed. Reaching
// confirmed applies ratings inside the same transaction.
func (s *Service) ConfirmMatch(ctx context.Context, actorID, matchID string, score1, score2 *int) (*domain.Match, []ratingservice.RatingDelta, error) {
	var match *domain.Match
	var deltas []ratingservice.RatingDelta

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		match, err = s.repo.FindByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return ErrMatchNotFound
		}
		if !match.HasPlayer(actorID) {
			return ErrNotParticipant
		}
		if match.Status != StatusPendingConfirmation && match.Status != StatusAwaitingScores {
			return ErrInvalidStatus
		}
		if match.HasConfirmed(actorID) {
			return ErrAlreadyConfirmed
		}

		if score1 != nil || score2 != nil {
			if err := validateScores(score1, score2); err != nil {
				return err
			}
			now := time.Now()
			match.Score1 = score1
			match.Score2 = score2
			match.SubmittedBy = &actorID
			match.SubmittedAt = &now
		}

		match.ConfirmedBy = append(match.ConfirmedBy, actorID)

		hasScores := match.Score1 != nil && match.Score2 != nil
		if s.opponentConfirmCount(match) >= 1 {
			if hasScores {
				match.Status = StatusConfirmed
			} else {
				match.Status = StatusAwaitingScores
			}
		}

		if err := s.repo.Update(ctx, match); err != nil {
			return err
		}

		if match.Status == StatusConfirmed {
			deltas, err = s.rating.Apply(ctx, match)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if match.Status == StatusConfirmed {
		s.sink.Publish(notify.Event{
			Kind:      notify.KindMatchConfirmed,
			MemberIDs: match.Players(),
			Message:   "match confirmed, ratings updated",
			RelatedID: match.ID,
		})
		zap.L().Info("match confirmed", zap.String("matchID", match.ID), zap.Int("ratingUpdates", len(deltas)))
	}
	return match, deltas, nil
}

// opponentConfirmCount counts confirmations from the team(s) not containing
// the creator.
func (s *Service) opponentConfirmCount(match *domain.Match) int {
	opponents := match.Team2
	if contains(match.Team2, match.CreatedBy) {
		opponents = match.Team1
	}
	count := 0
	for _, id := range opponents {
		if match.HasConfirmed(id) {
			count++
		}
	}
	return count
}

func (s *Service) RejectMatch(ctx context.Context, adminID, matchID string) (*domain.Match, error) {
	var match *domain.Match
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		match, err = s.repo.FindByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return ErrMatchNotFound
		}
		if isTerminal(match.Status) {
			return ErrInvalidStatus
		}
		now := time.Now()
		match.Status = StatusRejected
		match.RejectedBy = &adminID
		match.RejectedAt = &now
		return s.repo.Update(ctx, match)
	})
	if err != nil {
		return nil, err
	}

	s.sink.Publish(notify.Event{
		Kind:      notify.KindMatchRejected,
		MemberIDs: match.Players(),
		Message:   "match was rejected by an admin",
		RelatedID: match.ID,
	})
	return match, nil
}

// RequestCancellation records the current status so a later admin rejection
// can revert to exactly it.
func (s *Service) RequestCancellation(ctx context.Context, actorID, matchID string) (*domain.Match, error) {
	var match *domain.Match
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		match, err = s.repo.FindByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return ErrMatchNotFound
		}
		if !match.HasPlayer(actorID) {
			return ErrNotParticipant
		}
		switch match.Status {
		case StatusCancelled, StatusRejected, StatusRequestedCancellation:
			return ErrInvalidStatus
		}
		now := time.Now()
		prev := match.Status
		match.PreviousStatus = &prev
		match.Status = StatusRequestedCancellation
		match.CancellationRequestedBy = &actorID
		match.CancellationRequestedAt = &now
		return s.repo.Update(ctx, match)
	})
	if err != nil {
		return nil, err
	}

	s.sink.Publish(notify.Event{
		Kind:      notify.KindCancellationRequested,
		MemberIDs: match.Players(),
		Message:   "cancellation of a match was requested",
		RelatedID: match.ID,
	})
	return match, nil
}

func (s *Service) ProcessCancellation(ctx context.Context, adminID, matchID, action string) (*domain.Match, error) {
	if action != CancellationApprove && action != CancellationReject {
		return nil, ErrInvalidAction
	}

	var match *domain.Match
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		match, err = s.repo.FindByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return ErrMatchNotFound
		}
		if match.Status != StatusRequestedCancellation {
			return ErrInvalidStatus
		}

		if action == CancellationApprove {
			match.Status = StatusCancelled
		} else {
			match.Status = s.revertStatus(match)
			match.PreviousStatus = nil
		}
		return s.repo.Update(ctx, match)
	})
	if err != nil {
		return nil, err
	}

	s.sink.Publish(notify.Event{
		Kind:      notify.KindCancellationProcessed,
		MemberIDs: match.Players(),
		Message:   "cancellation request was " + action + "d",
		RelatedID: match.ID,
	})
	zap.L().Info("cancellation processed", zap.String("matchID", match.ID), zap.String("action", action), zap.String("adminID", adminID))
	return match, nil
}

// revertStatus prefers the recorded previous status; matches created before
// it was tracked fall back to inferring from score presence.
func (s *Service) revertStatus(match *domain.Match) string {
	if match.PreviousStatus != nil {
		return *match.PreviousStatus
	}
	if match.Score1 != nil && match.Score2 != nil {
		return StatusConfirmed
	}
	return StatusAwaitingScores
}

// AdminUpdateMatch is the privileged escape hatch: a whitelisted field patch
// with no state-machine checks.
func (s *Service) AdminUpdateMatch(ctx context.Context, adminID, matchID string, updates AdminMatchUpdate) (*domain.Match, error) {
	var match *domain.Match
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		match, err = s.repo.FindByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return ErrMatchNotFound
		}
		if updates.Score1 != nil {
			match.Score1 = updates.Score1
		}
		if updates.Score2 != nil {
			match.Score2 = updates.Score2
		}
		if updates.Status != nil {
			match.Status = *updates.Status
		}
		if updates.GameType != nil {
			match.GameType = *updates.GameType
		}
		if updates.SlotTime != nil {
			match.SlotTime = *updates.SlotTime
		}
		return s.repo.Update(ctx, match)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("match patched by admin", zap.String("matchID", match.ID), zap.String("adminID", adminID))
	return match, nil
}

func (s *Service) GetMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := s.repo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

func isTerminal(status string) bool {
	switch status {
	case StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

func validateScores(score1, score2 *int) error {
	if score1 == nil || score2 == nil {
		return ErrInvalidScore
	}
	if *score1 < 0 || *score2 < 0 {
		return ErrInvalidScore
	}
	if *score1 == *score2 {
		return ErrInvalidScore
	}
	return nil
}

func validateTeams(team1, team2 []string, creatorID string) error {
	if len(team1) == 0 || len(team2) == 0 || len(team1) > 2 || len(team2) > 2 {
		return ErrInvalidTeams
	}
	seen := make(map[string]bool)
	for _, id := range append(append([]string{}, team1...), team2...) {
		if id == "" || seen[id] {
			return ErrInvalidTeams
		}
		seen[id] = true
	}
	if !contains(team1, creatorID) && !contains(team2, creatorID) {
		return ErrNotParticipant
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
