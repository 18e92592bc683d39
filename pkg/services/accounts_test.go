package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/apperrors"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/auth"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
)

// mockAccountRepository is a configurable in-test repository.
type mockAccountRepository struct {
	CreateFunc     func(ctx context.Context, account *models.Account) error
	GetByEmailFunc func(ctx context.Context, email string) (*models.Account, error)

	CreateCalls     int
	GetByEmailCalls int
}

func (m *mockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	m.GetByEmailCalls++
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, apperrors.ErrNotFound
}

// mockMailer records welcome sends.
type mockMailer struct {
	SendWelcomeFunc  func(toEmail, name string) error
	SendWelcomeCalls int
	LastEmail        string
}

func (m *mockMailer) SendWelcome(toEmail, name string) error {
	m.SendWelcomeCalls++
	m.LastEmail = toEmail
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(toEmail, name)
	}
	return nil
}

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestRegisterHashesPasswordAndNormalizesEmail(t *testing.T) {
	var created *models.Account
	repo := &mockAccountRepository{
		CreateFunc: func(ctx context.Context, account *models.Account) error {
			created = account
			return nil
		},
	}
	mail := &mockMailer{}
	svc := NewAccountService(repo, newTestTokenService(t), mail, zap.NewNop())

	account, err := svc.Register(context.Background(), "Jane", "  Jane@Example.COM ", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "jane@example.com", account.Email)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestRegisterSendsWelcomeEmail(t *testing.T) {
	repo := &mockAccountRepository{}
	mail := &mockMailer{}
	svc := NewAccountService(repo, newTestTokenService(t), mail, zap.NewNop())

	_, err := svc.Register(context.Background(), "Jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, 1, mail.SendWelcomeCalls)
	assert.Equal(t, "jane@example.com", mail.LastEmail)
}

func TestRegisterMailFailureDoesNotFailRegistration(t *testing.T) {
	repo := &mockAccountRepository{}
	mail := &mockMailer{
		SendWelcomeFunc: func(toEmail, name string) error {
			return errors.New("smtp down")
		},
	}
	svc := NewAccountService(repo, newTestTokenService(t), mail, zap.NewNop())

	_, err := svc.Register(context.Background(), "Jane", "jane@example.com", "hunter22")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &mockAccountRepository{
		CreateFunc: func(ctx context.Context, account *models.Account) error {
			return apperrors.ErrConflict
		},
	}
	mail := &mockMailer{}
	svc := NewAccountService(repo, newTestTokenService(t), mail, zap.NewNop())

	_, err := svc.Register(context.Background(), "Jane", "jane@example.com", "hunter22")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 0, mail.SendWelcomeCalls)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.Account{
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	}
	repo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Account, error) {
			assert.Equal(t, "jane@example.com", email)
			return stored, nil
		},
	}
	tokens := newTestTokenService(t)
	svc := NewAccountService(repo, tokens, &mockMailer{}, zap.NewNop())

	account, token, err := svc.Login(context.Background(), " Jane@Example.com ", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", account.Email)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "Jane", claims.Name)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &mockAccountRepository{}
	svc := NewAccountService(repo, newTestTokenService(t), &mockMailer{}, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Account, error) {
			return &models.Account{Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAccountService(repo, newTestTokenService(t), &mockMailer{}, zap.NewNop())

	_, _, err = svc.Login(context.Background(), "jane@example.com", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRepositoryErrorPassesThrough(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Account, error) {
			return nil, repoErr
		},
	}
	svc := NewAccountService(repo, newTestTokenService(t), &mockMailer{}, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "jane@example.com", "hunter22")

	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
