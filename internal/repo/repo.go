package repo

import (
	"github.com/yeswin/wingo/internal/pg"
	accountrepo "github.com/yeswin/wingo/internal/repo/account-repo"
	bonusrepo "github.com/yeswin/wingo/internal/repo/bonus-repo"
	resultrepo "github.com/yeswin/wingo/internal/repo/result-repo"
	settingsrepo "github.com/yeswin/wingo/internal/repo/settings-repo"
	transactionrepo "github.com/yeswin/wingo/internal/repo/transaction-repo"
	userrepo "github.com/yeswin/wingo/internal/repo/user-repo"
	wagerrepo "github.com/yeswin/wingo/internal/repo/wager-repo"
	"github.com/yeswin/wingo/internal/service/authservice"
	"github.com/yeswin/wingo/internal/service/gameservice"
	"github.com/yeswin/wingo/internal/service/wagerservice"
	"github.com/yeswin/wingo/internal/service/walletservice"
)

type Repositories struct {
	UserRepo        authservice.UserRepo
	ResultRepo      gameservice.ResultRepo
	SettingsRepo    gameservice.SettingsRepo
	WagerRepo       wagerservice.WagerRepo
	AccountRepo     walletservice.AccountRepo
	TransactionRepo walletservice.TransactionRepo
	BonusRepo       walletservice.BonusRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	resultRepo := resultrepo.New(conn)
	settingsRepo := settingsrepo.New(conn)
	wagerRepo := wagerrepo.New(conn, txManager)
	accountRepo := accountrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	bonusRepo := bonusrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		ResultRepo:      resultRepo,
		SettingsRepo:    settingsRepo,
		WagerRepo:       wagerRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		BonusRepo:       bonusRepo,
	}
}
