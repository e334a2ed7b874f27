package service

import (
	"github.com/yeswin/wingo/internal/engine"
	"github.com/yeswin/wingo/internal/pg"
	"github.com/yeswin/wingo/internal/repo"
	"github.com/yeswin/wingo/internal/service/authservice"
	"github.com/yeswin/wingo/internal/service/gameservice"
	"github.com/yeswin/wingo/internal/service/settlementservice"
	"github.com/yeswin/wingo/internal/service/wagerservice"
	"github.com/yeswin/wingo/internal/service/walletservice"
	"github.com/yeswin/wingo/internal/service/wheelservice"
	"github.com/yeswin/wingo/internal/ws"
	pkgauth "github.com/yeswin/wingo/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	GameService       *gameservice.Service
	WagerService      *wagerservice.Service
	SettlementService *settlementservice.Service
	WalletService     *walletservice.Service
	WheelService      *wheelservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, hub *ws.Hub, notifier *engine.Notifier) *Services {
	walletService := walletservice.New(repo.AccountRepo, repo.TransactionRepo, repo.BonusRepo, txManager)
	gameService := gameservice.New(repo.ResultRepo, repo.SettingsRepo)
	wagerService := wagerservice.New(repo.WagerRepo, repo.AccountRepo, txManager, notifier, hub)
	settlementService := settlementservice.New(repo.WagerRepo, repo.AccountRepo, txManager, hub)
	wheelService := wheelservice.New(repo.AccountRepo, txManager)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		GameService:       gameService,
		WagerService:      wagerService,
		SettlementService: settlementService,
		WalletService:     walletService,
		WheelService:      wheelService,
	}
}
