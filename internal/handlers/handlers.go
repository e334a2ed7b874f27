package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/yeswin/wingo/docs"
	adminhandlers "github.com/yeswin/wingo/internal/handlers/admin"
	authhandlers "github.com/yeswin/wingo/internal/handlers/auth"
	gamehandlers "github.com/yeswin/wingo/internal/handlers/game"
	wallethandlers "github.com/yeswin/wingo/internal/handlers/wallet"
	"github.com/yeswin/wingo/internal/service"
	"github.com/yeswin/wingo/internal/ws"
	"github.com/yeswin/wingo/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	StreamOutcomes(w http.ResponseWriter, r *http.Request)
	StreamWagers(w http.ResponseWriter, r *http.Request)
	PlaceWager(w http.ResponseWriter, r *http.Request)
	GetWagers(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	RedeemBonus(w http.ResponseWriter, r *http.Request)
	Spin(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	DecideTransaction(w http.ResponseWriter, r *http.Request)
	SetNextResult(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	GameHandler   GameHandler
	WalletHandler WalletHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		GameHandler:   gamehandlers.New(s.GameService, s.WagerService, hub),
		WalletHandler: wallethandlers.New(s.WalletService, s.WheelService),
		AdminHandler:  adminhandlers.New(s.WalletService, s.GameService),
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
	r.Route("/api/game/{track}", func(r chi.Router) {
		r.Get("/state", h.GameHandler.GetState)
		r.Get("/history", h.GameHandler.GetHistory)
		r.Get("/stream", h.GameHandler.StreamOutcomes)
	})
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/bets", func(r chi.Router) {
				r.Post("/", h.GameHandler.PlaceWager)
				r.Get("/", h.GameHandler.GetWagers)
				r.Get("/stream", h.GameHandler.StreamWagers)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Post("/deposits", h.WalletHandler.Deposit)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Post("/bonus", h.WalletHandler.RedeemBonus)
			r.Post("/wheel/spin", h.WalletHandler.Spin)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/transactions/{id}/decision", h.AdminHandler.DecideTransaction)
		r.Put("/settings/next-result", h.AdminHandler.SetNextResult)
	})

	return r
}
