package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/pkg/auth"
)

type UserRepo interface {
	FindByGmail(ctx context.Context, gmail string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AccountCreator opens the ledger account that registration must leave
// behind for every user.
type AccountCreator interface {
	CreateAccount(ctx context.Context, userID int) (*domain.Account, error)
}

var (
	ErrGmailTaken         = errors.New("gmail already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("user is blocked")
)

type Service struct {
	userRepo    UserRepo
	accounts    AccountCreator
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, accounts AccountCreator, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		accounts:    accounts,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, gmail, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByGmail(ctx, gmail)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("gmail already registered", zap.String("gmail", gmail))
		return nil, ErrGmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Gmail:        gmail,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if _, err := s.accounts.CreateAccount(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("gmail", gmail))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, gmail, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByGmail(ctx, gmail)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("gmail", gmail))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("gmail", gmail))
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}
	zap.L().Info("user successfully authenticated", zap.String("gmail", gmail))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
