package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/pg"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

type Service struct {
	memberRepo   Repo
	ledgerRepo   LedgerRepo
	settingsRepo SettingsRepo
	txManager    pg.TXManager
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(memberRepo Repo, ledgerRepo LedgerRepo, settingsRepo SettingsRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		memberRepo:   memberRepo,
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

// Register creates a member with the default rating and the registration fee
// owed per current settings. The fee is a liability settled by future
// top-ups, so the marker ledger entry carries a zero amount.
func (s *Service) Register(ctx context.Context, login, password, name string) (*domain.Member, error) {
	existing, err := s.memberRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("member already exists, login: ", zap.String("login", login))
		return nil, errors.New("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	member := &domain.Member{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: hashedPassword,
		Name:         name,
		Role:         domain.RoleMember,
		Rating:       1000,
		Balance:      decimal.Zero,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		if settings != nil {
			member.RegistrationFeeDue = settings.RegistrationFee
		}
		if _, err := s.memberRepo.Create(ctx, member); err != nil {
			return err
		}
		if member.RegistrationFeeDue.IsPositive() {
			entry := &domain.LedgerEntry{
				ID:          uuid.NewString(),
				MemberID:    member.ID,
				Amount:      decimal.Zero,
				Type:        domain.TxTypeRegistrationFee,
				Description: "registration fee of " + member.RegistrationFeeDue.String() + " due",
			}
			if err := s.ledgerRepo.Append(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create member: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("member successfully registered", zap.String("login", login))
	return member, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Member, error) {
	member, err := s.memberRepo.FindByLogin(ctx, login)
	if err != nil || member == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("member successfully authenticated", zap.String("login", login))
	return member, nil
}

func (s *Service) GenerateToken(memberID, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(memberID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
