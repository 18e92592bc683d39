package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/apperrors"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/database"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// accountRepository implements AccountRepository using PostgreSQL.
type accountRepository struct {
	db *database.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *database.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account. Returns ErrConflict when the email is
// already registered.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByEmail fetches an account by email. Returns ErrNotFound when no
// account exists for the address.
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1`

	var account models.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}
