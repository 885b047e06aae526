package service

import (
	"github.com/shuttleclub/shuttleclub/internal/handlers/auth"
	"github.com/shuttleclub/shuttleclub/internal/handlers/balance"
	"github.com/shuttleclub/shuttleclub/internal/handlers/matches"
	"github.com/shuttleclub/shuttleclub/internal/handlers/settings"
	"github.com/shuttleclub/shuttleclub/internal/handlers/slots"

	pkgauth "github.com/shuttleclub/shuttleclub/pkg/auth"

	"github.com/shuttleclub/shuttleclub/internal/notify"
	"github.com/shuttleclub/shuttleclub/internal/pg"
	"github.com/shuttleclub/shuttleclub/internal/repo"
	authservice "github.com/shuttleclub/shuttleclub/internal/service/authservice"
	balanceservice "github.com/shuttleclub/shuttleclub/internal/service/balanceservice"
	bookingservice "github.com/shuttleclub/shuttleclub/internal/service/bookingservice"
	matchservice "github.com/shuttleclub/shuttleclub/internal/service/matchservice"
	ratingservice "github.com/shuttleclub/shuttleclub/internal/service/ratingservice"
	settingsservice "github.com/shuttleclub/shuttleclub/internal/service/settingsservice"
	slotservice "github.com/shuttleclub/shuttleclub/internal/service/slotservice"
)

type Services struct {
	AuthService     auth.Service
	SlotService     slots.SlotService
	BookingService  slots.BookingService
	MatchService    matches.Service
	HistoryService  matches.HistoryService
	BalanceService  balance.Service
	SettingsService settings.Service
	NotifyService   *notify.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifyService *notify.Service) *Services {
	ratingService := ratingservice.New(repo.MemberRepo, repo.HistoryRepo)
	bookingService := bookingservice.New(repo.SlotRepo, repo.MemberRepo, repo.LedgerRepo, repo.SettingsRepo, txManager, notifyService)
	matchService := matchservice.New(repo.MatchRepo, ratingService, txManager, notifyService)
	balanceService := balanceservice.New(repo.MemberRepo, repo.LedgerRepo, txManager, notifyService)
	slotService := slotservice.New(repo.SlotRepo)
	settingsService := settingsservice.New(repo.SettingsRepo)
	authService := authservice.New(repo.MemberRepo, repo.LedgerRepo, repo.SettingsRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		SlotService:     slotService,
		BookingService:  bookingService,
		MatchService:    matchService,
		HistoryService:  ratingService,
		BalanceService:  balanceService,
		SettingsService: settingsService,
		NotifyService:   notifyService,
	}
}
