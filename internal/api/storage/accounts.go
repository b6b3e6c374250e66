package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/lib/pq"
)

type accountRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Phone        string         `db:"phone"`
	Address      string         `db:"address"`
	Skills       pq.StringArray `db:"skills"`
	Experience   string         `db:"experience"`
	Resume       string         `db:"resume"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *accountRow) toDomain() *domain.Account {
	return &domain.Account{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		Profile: domain.Profile{
			Phone:      r.Phone,
			Address:    r.Address,
			Skills:     nonNil(r.Skills),
			Experience: r.Experience,
			Resume:     r.Resume,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const accountColumns = `id, name, email, password_hash, role, phone, address, skills, experience, resume, created_at, updated_at`

// CreateAccount inserts a new account; a taken email yields domain.ErrEmailTaken
func (s *Storage) CreateAccount(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
		string(account.Role),
		account.Profile.Phone,
		account.Profile.Address,
		pq.StringArray(nonNil(account.Profile.Skills)),
		account.Profile.Experience,
		account.Profile.Resume,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if postgresql.IsUniqueViolation(err, constraintAccountEmail) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByID returns domain.ErrAccountNotFound when no row matches
func (s *Storage) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.getAccount(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// GetAccountByEmail matches the email exactly as stored
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.getAccount(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
}

func (s *Storage) getAccount(ctx context.Context, query string, arg string) (*domain.Account, error) {
	var row accountRow
	err := s.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return row.toDomain(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
