package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/apperrors"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/auth"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/mailer"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/repositories"
)

// AccountService defines the interface for account operations.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, string, error)
}

// accountService implements AccountService.
type accountService struct {
	repo   repositories.AccountRepository
	tokens *auth.TokenService
	mail   mailer.Mailer
	logger *zap.Logger
}

// NewAccountService creates a new account service with dependencies.
func NewAccountService(repo repositories.AccountRepository, tokens *auth.TokenService, mail mailer.Mailer, logger *zap.Logger) AccountService {
	return &accountService{
		repo:   repo,
		tokens: tokens,
		mail:   mail,
		logger: logger.Named("accounts"),
	}
}

// Register creates an account with a hashed password and sends the welcome
// email. Mail delivery is best-effort and never fails registration. Returns
// ErrConflict when the email is already registered.
func (s *accountService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	if err := s.mail.SendWelcome(account.Email, account.Name); err != nil {
		s.logger.Warn("Welcome email failed", zap.Error(err))
	}

	s.logger.Info("Account registered", zap.String("account_id", account.ID.String()))
	return account, nil
}

// Login verifies the credentials and issues a session token. Returns
// ErrInvalidCredentials for both unknown emails and wrong passwords so the
// response does not reveal which one failed.
func (s *accountService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Sign(account.ID, account.Name, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	return account, token, nil
}
