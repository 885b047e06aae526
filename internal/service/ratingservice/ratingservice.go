package ratingservice

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
)

type MemberRepo interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Member, error)
	UpdateRating(ctx context.Context, id string, rating, gamesPlayed, wins, losses, draws int) error
}

type HistoryRepo interface {
	Append(ctx context.Context, entry *domain.MatchHistoryEntry) error
	ListByMember(ctx context.Context, memberID string) ([]domain.MatchHistoryEntry, error)
}

const (
	DefaultRating = 1000
	RatingFloor   = 100
)

const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
)

var ErrNoScores = errors.New("match has no scores")

type RatingDelta struct {
	MemberID  string
	OldRating int
	NewRating int
	Change    int
	Outcome   string
}

type Service struct {
	memberRepo  MemberRepo
	historyRepo HistoryRepo
}

func New(memberRepo MemberRepo, historyRepo HistoryRepo) *Service {
	return &Service{
		memberRepo:  memberRepo,
		historyRepo: historyRepo,
	}
}

// KFactor tiers rating-update sensitivity by experience and strength.
func KFactor(rating, gamesPlayed int) int {
	switch {
	case gamesPlayed < 10:
		return 40
	case rating < 1500:
		return 32
	default:
		return 24
	}
}

// ExpectedScore is the standard Elo win expectancy against the opposing
// team's average rating.
func ExpectedScore(playerRating, opponentAvgRating float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentAvgRating-playerRating)/400))
}

// Apply computes and persists rating deltas, win/loss/draw counters and one
// match history entry per player. It runs on the caller's context so that a
// surrounding transaction covers all updates together with the status flip.
// Players without a stored profile count as DefaultRating in team averages
// and are otherwise skipped.
func (s *Service) Apply(ctx context.Context, match *domain.Match) ([]RatingDelta, error) {
	if match.Score1 == nil || match.Score2 == nil {
		return nil, ErrNoScores
	}

	members, err := s.memberRepo.FindByIDs(ctx, match.Players())
	if err != nil {
		zap.L().Error("can't load match participants", zap.Error(err))
		return nil, err
	}
	byID := make(map[string]*domain.Member, len(members))
	for i := range members {
		byID[members[i].ID] = &members[i]
	}

	team1Avg := teamAverage(byID, match.Team1)
	team2Avg := teamAverage(byID, match.Team2)

	// Outcome for team1; validation elsewhere forbids equal scores, but the
	// draw branch stays defined.
	var outcome1 float64
	switch {
	case *match.Score1 > *match.Score2:
		outcome1 = 1
	case *match.Score1 < *match.Score2:
		outcome1 = 0
	default:
		outcome1 = 0.5
	}

	var deltas []RatingDelta
	for _, id := range match.Team1 {
		delta, err := s.applyPlayer(ctx, match, byID[id], id, outcome1, team2Avg, match.Team1, match.Team2)
		if err != nil {
			return nil, err
		}
		if delta != nil {
			deltas = append(deltas, *delta)
		}
	}
	for _, id := range match.Team2 {
		delta, err := s.applyPlayer(ctx, match, byID[id], id, 1-outcome1, team1Avg, match.Team2, match.Team1)
		if err != nil {
			return nil, err
		}
		if delta != nil {
			deltas = append(deltas, *delta)
		}
	}
	return deltas, nil
}

func (s *Service) applyPlayer(ctx context.Context, match *domain.Match, member *domain.Member, memberID string, outcome, opponentAvg float64, teammates, opponents []string) (*RatingDelta, error) {
	if member == nil {
		zap.L().Warn("match participant has no profile, skipping rating update", zap.String("memberID", memberID))
		return nil, nil
	}

	expected := ExpectedScore(float64(member.Rating), opponentAvg)
	k := KFactor(member.Rating, member.GamesPlayed)
	change := float64(k) * (outcome - expected)
	newRating := int(math.Round(float64(member.Rating) + change))
	if newRating < RatingFloor {
		newRating = RatingFloor
	}

	wins, losses, draws := member.Wins, member.Losses, member.Draws
	var outcomeLabel string
	switch outcome {
	case 1:
		wins++
		outcomeLabel = OutcomeWin
	case 0:
		losses++
		outcomeLabel = OutcomeLoss
	default:
		draws++
		outcomeLabel = OutcomeDraw
	}

	if err := s.memberRepo.UpdateRating(ctx, member.ID, newRating, member.GamesPlayed+1, wins, losses, draws); err != nil {
		return nil, err
	}

	entry := &domain.MatchHistoryEntry{
		ID:           uuid.NewString(),
		MatchID:      match.ID,
		MemberID:     member.ID,
		OldRating:    member.Rating,
		NewRating:    newRating,
		RatingChange: newRating - member.Rating,
		Outcome:      outcomeLabel,
		Teammates:    teammates,
		Opponents:    opponents,
		Score1:       *match.Score1,
		Score2:       *match.Score2,
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return &RatingDelta{
		MemberID:  member.ID,
		OldRating: member.Rating,
		NewRating: newRating,
		Change:    newRating - member.Rating,
		Outcome:   outcomeLabel,
	}, nil
}

func (s *Service) GetHistory(ctx context.Context, memberID string) ([]domain.MatchHistoryEntry, error) {
	entries, err := s.historyRepo.ListByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch match history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func teamAverage(byID map[string]*domain.Member, team []string) float64 {
	if len(team) == 0 {
		return DefaultRating
	}
	sum := 0.0
	for _, id := range team {
		if member, ok := byID[id]; ok {
			sum += float64(member.Rating)
		} else {
			sum += DefaultRating
		}
	}
	return sum / float64(len(team))
}
