package walletservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
)

type AccountRepo interface {
	Get(ctx context.Context, userID int) (*domain.Account, error)
	Create(ctx context.Context, userID int) (*domain.Account, error)
	DebitForWager(ctx context.Context, userID int, amount float64) (bool, error)
	Debit(ctx context.Context, userID int, amount float64) (bool, error)
	CreditPayout(ctx context.Context, userID int, amount float64) error
	CreditTurnoverLinked(ctx context.Context, userID int, amount float64) error
	SetLastSpinAt(ctx context.Context, userID int, at time.Time) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	CountWithdrawals(ctx context.Context, userID int) (int, error)
	Decide(ctx context.Context, id int64, status string) (bool, error)
}

type BonusRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.BonusCode, error)
	MarkRedeemed(ctx context.Context, userID int, codeID int64) (bool, error)
}

var (
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrTurnoverIncomplete   = errors.New("required turnover not completed")
	ErrBelowMinWithdrawal   = errors.New("amount below withdrawal minimum")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionDecided   = errors.New("transaction already decided")
	ErrBonusCodeNotFound    = errors.New("bonus code not found")
	ErrBonusCodeAlreadyUsed = errors.New("bonus code already used")
	ErrAccountNotFound      = errors.New("account not found")
)

const (
	// The first withdrawal has a lower minimum.
	firstWithdrawalMin = 500
	withdrawalMin      = 1000
)

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	bonusRepo       BonusRepo
	txManager       pg.TXManager

	now func() time.Time
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, bonusRepo BonusRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		bonusRepo:       bonusRepo,
		txManager:       txManager,
		now:             time.Now,
	}
}

func (s *Service) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accountRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// RequestDeposit files a deposit claim for manual reconciliation. The
// balance moves only when an operator accepts the claim.
func (s *Service) RequestDeposit(ctx context.Context, userID int, method string, amount float64, trxID string) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		UserID:    userID,
		Type:      domain.TransactionDeposit,
		Method:    method,
		Amount:    amount,
		Status:    domain.TransactionPending,
		TrxID:     trxID,
		CreatedAt: s.now(),
	}
	if _, err := s.transactionRepo.Create(ctx, tx); err != nil {
		zap.L().Error("failed to create deposit request", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// RequestWithdrawal files a withdrawal request. The amount is debited up
// front and returned if the operator cancels. Withdrawal is gated on
// completed turnover having reached the required turnover.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, method string, amount float64, bankNumber string) (*domain.Transaction, error) {
	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.CanWithdraw() {
		return nil, ErrTurnoverIncomplete
	}

	count, err := s.transactionRepo.CountWithdrawals(ctx, userID)
	if err != nil {
		return nil, err
	}
	min := float64(withdrawalMin)
	if count == 0 {
		min = firstWithdrawalMin
	}
	if amount < min {
		return nil, ErrBelowMinWithdrawal
	}

	tx := &domain.Transaction{
		UserID:     userID,
		Type:       domain.TransactionWithdrawal,
		Method:     method,
		Amount:     amount,
		Status:     domain.TransactionPending,
		BankNumber: bankNumber,
		CreatedAt:  s.now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.accountRepo.Debit(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}
		_, err = s.transactionRepo.Create(ctx, tx)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to create withdrawal request", zap.Error(err))
		}
		return nil, err
	}
	return tx, nil
}

// DecideTransaction applies an operator decision to a pending
// transaction. Accepting a deposit credits the balance and raises the
// required turnover by the same amount; cancelling a withdrawal refunds
// the held amount. The status flip is a compare-and-set, so deciding the
// same transaction twice is rejected instead of double-crediting.
func (s *Service) DecideTransaction(ctx context.Context, id int64, accept bool) error {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrTransactionNotFound
	}

	status := domain.TransactionCancelled
	if accept {
		status = domain.TransactionAccepted
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.transactionRepo.Decide(ctx, id, status)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTransactionDecided
		}

		switch {
		case accept && tx.Type == domain.TransactionDeposit:
			return s.accountRepo.CreditTurnoverLinked(ctx, tx.UserID, tx.Amount)
		case !accept && tx.Type == domain.TransactionWithdrawal:
			return s.accountRepo.CreditPayout(ctx, tx.UserID, tx.Amount)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTransactionDecided) {
			zap.L().Error("failed to decide transaction", zap.Int64("transactionID", id), zap.Error(err))
		}
		return err
	}

	zap.L().Info("transaction decided",
		zap.Int64("transactionID", id),
		zap.String("type", tx.Type),
		zap.String("status", status),
		zap.Float64("amount", tx.Amount),
	)
	return nil
}

// RedeemBonus credits a bonus code once per user, turnover-linked.
func (s *Service) RedeemBonus(ctx context.Context, userID int, code string) (*domain.BonusCode, error) {
	bc, err := s.bonusRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if bc == nil {
		return nil, ErrBonusCodeNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.bonusRepo.MarkRedeemed(ctx, userID, bc.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBonusCodeAlreadyUsed
		}
		return s.accountRepo.CreditTurnoverLinked(ctx, userID, bc.Amount)
	})
	if err != nil {
		if !errors.Is(err, ErrBonusCodeAlreadyUsed) {
			zap.L().Error("failed to redeem bonus code", zap.Error(err))
		}
		return nil, err
	}
	return bc, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
