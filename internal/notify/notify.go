package notify

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	KindSlotBooked            = "slot_booked"
	KindWaitlisted            = "waitlisted"
	KindSlotFreed             = "slot_freed"
	KindMatchCreated          = "match_created"
	KindMatchConfirmed        = "match_confirmed"
	KindMatchRejected         = "match_rejected"
	KindCancellationRequested = "cancellation_requested"
	KindCancellationProcessed = "cancellation_processed"
	KindTopUp                 = "top_up"
)

// Event is a "this happened, tell these members" request. Events are emitted
// after the originating transaction commits; delivery is best-effort and a
// failure never propagates back to the caller.
type Event struct {
	Kind      string
	MemberIDs []string
	Message   string
	RelatedID string
}

type Sink interface {
	Publish(event Event)
}

type Sender interface {
	Send(ctx context.Context, memberID string, tokens []string, event Event) error
}

type TokenRepo interface {
	Register(ctx context.Context, memberID, token string) error
	Unregister(ctx context.Context, memberID, token string) error
	ListByMember(ctx context.Context, memberID string) ([]string, error)
}

type Service struct {
	tokenRepo  TokenRepo
	sender     Sender
	workerPool WorkerPoolI
}

func New(tokenRepo TokenRepo, sender Sender) *Service {
	return &Service{
		tokenRepo:  tokenRepo,
		sender:     sender,
		workerPool: NewWorkerPool(10),
	}
}

// Publish queues the event for delivery and returns immediately. Errors are
// logged and swallowed.
func (s *Service) Publish(event Event) {
	err := s.workerPool.AddTask(context.Background(), func() error {
		return s.dispatch(context.Background(), event)
	})
	if err != nil {
		zap.L().Error("can't queue notification", zap.String("kind", event.Kind), zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, event Event) error {
	var g errgroup.Group
	for _, memberID := range event.MemberIDs {
		memberID := memberID
		g.Go(func() error {
			tokens, err := s.tokenRepo.ListByMember(ctx, memberID)
			if err != nil {
				return err
			}
			return s.sender.Send(ctx, memberID, tokens, event)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("notification dispatch failed", zap.String("kind", event.Kind), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) RegisterToken(ctx context.Context, memberID, token string) error {
	return s.tokenRepo.Register(ctx, memberID, token)
}

func (s *Service) UnregisterToken(ctx context.Context, memberID, token string) error {
	return s.tokenRepo.Unregister(ctx, memberID, token)
}

// LogSender stands in for the real push transport: it only records the
// delivery attempt.
type LogSender struct{}

func (LogSender) Send(_ context.Context, memberID string, tokens []string, event Event) error {
	zap.L().Info("notification sent",
		zap.String("kind", event.Kind),
		zap.String("memberID", memberID),
		zap.Int("tokens", len(tokens)),
		zap.String("message", event.Message),
	)
	return nil
}
