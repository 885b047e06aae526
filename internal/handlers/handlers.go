package handlers

import (
	"net/http"

	_ "github.com/shuttleclub/shuttleclub/docs"
	authhandlers "github.com/shuttleclub/shuttleclub/internal/handlers/auth"
	balancehandlers "github.com/shuttleclub/shuttleclub/internal/handlers/balance"
	matchhandlers "github.com/shuttleclub/shuttleclub/internal/handlers/matches"
	notificationhandlers "github.com/shuttleclub/shuttleclub/internal/handlers/notifications"
	settingshandlers "github.com/shuttleclub/shuttleclub/internal/handlers/settings"
	slothandlers "github.com/shuttleclub/shuttleclub/internal/handlers/slots"
	"github.com/shuttleclub/shuttleclub/internal/service"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SlotsHandler interface {
	ListSlots(w http.ResponseWriter, r *http.Request)
	CreateSlot(w http.ResponseWriter, r *http.Request)
	CreateRecurring(w http.ResponseWriter, r *http.Request)
	SetAvailability(w http.ResponseWriter, r *http.Request)
	BookSlot(w http.ResponseWriter, r *http.Request)
	CancelSlot(w http.ResponseWriter, r *http.Request)
}

type MatchesHandler interface {
	CreateMatch(w http.ResponseWriter, r *http.Request)
	ConfirmMatch(w http.ResponseWriter, r *http.Request)
	GetMatch(w http.ResponseWriter, r *http.Request)
	RejectMatch(w http.ResponseWriter, r *http.Request)
	RequestCancellation(w http.ResponseWriter, r *http.Request)
	ProcessCancellation(w http.ResponseWriter, r *http.Request)
	AdminUpdateMatch(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type NotificationsHandler interface {
	RegisterToken(w http.ResponseWriter, r *http.Request)
	UnregisterToken(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler          AuthHandler
	SlotsHandler         SlotsHandler
	MatchesHandler       MatchesHandler
	BalanceHandler       BalanceHandler
	NotificationsHandler NotificationsHandler
	SettingsHandler      SettingsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:          authhandlers.New(s.AuthService),
		SlotsHandler:         slothandlers.New(s.SlotService, s.BookingService),
		MatchesHandler:       matchhandlers.New(s.MatchService, s.HistoryService),
		BalanceHandler:       balancehandlers.New(s.BalanceService),
		NotificationsHandler: notificationhandlers.New(s.NotifyService),
		SettingsHandler:      settingshandlers.New(s.SettingsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/slots", func(r chi.Router) {
				r.Get("/", h.SlotsHandler.ListSlots)
				r.Post("/{id}/book", h.SlotsHandler.BookSlot)
				r.Post("/{id}/cancel", h.SlotsHandler.CancelSlot)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/", h.SlotsHandler.CreateSlot)
					r.Post("/recurring", h.SlotsHandler.CreateRecurring)
					r.Patch("/{id}/availability", h.SlotsHandler.SetAvailability)
				})
			})

			r.Route("/matches", func(r chi.Router) {
				r.Post("/", h.MatchesHandler.CreateMatch)
				r.Get("/{id}", h.MatchesHandler.GetMatch)
				r.Post("/{id}/confirm", h.MatchesHandler.ConfirmMatch)
				r.Post("/{id}/cancellation-request", h.MatchesHandler.RequestCancellation)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/{id}/reject", h.MatchesHandler.RejectMatch)
					r.Post("/{id}/cancellation", h.MatchesHandler.ProcessCancellation)
					r.Patch("/{id}", h.MatchesHandler.AdminUpdateMatch)
				})
			})

			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/topup", h.BalanceHandler.TopUp)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
			})

			r.Get("/members/me/history", h.MatchesHandler.GetHistory)

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/token", h.NotificationsHandler.RegisterToken)
				r.Delete("/token", h.NotificationsHandler.UnregisterToken)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/", h.SettingsHandler.GetSettings)
				r.Patch("/", h.SettingsHandler.UpdateSettings)
			})
		})
	})

	return r
}
