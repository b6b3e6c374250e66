package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/auth"
	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/policy"
	"github.com/cuongbtq/jobboard/shared/metrics"
	"github.com/google/uuid"
)

// RegisterInput is the body of POST /auth/register
type RegisterInput struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	Role     domain.Role     `json:"role" validate:"omitempty,oneof=job_seeker employer"`
	Profile  *domain.Profile `json:"profile"`
}

var registerMessages = map[string]string{
	"required":     "Please provide all required fields",
	"email":        "Please provide a valid email",
	"password.min": "Password must be at least 6 characters",
	"password.max": "Password must be at most 72 characters",
	"role.oneof":   "Role must be job_seeker or employer",
}

// LoginInput is the body of POST /auth/login
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"required": "Please provide email and password",
}

// Session is the result of a successful register or login
type Session struct {
	Token   string
	Account *domain.Account
}

type AuthService struct {
	accounts AccountStore
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenIssuer
	events   EventPublisher
	logger   *slog.Logger
	now      func() time.Time
}

func NewAuthService(accounts AccountStore, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, events EventPublisher, logger *slog.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an account and signs it in. Admin accounts cannot be
// self-registered.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in, registerMessages); err != nil {
		return nil, err
	}

	if in.Role == "" {
		in.Role = domain.RoleJobSeeker
	}

	if _, err := s.accounts.GetAccountByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Profile != nil {
		account.Profile = *in.Profile
	}
	if account.Profile.Skills == nil {
		account.Profile.Skills = []string{}
	}

	// the unique email constraint still catches a concurrent registration
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}

	metrics.Registrations.WithLabelValues(string(account.Role)).Inc()
	s.events.Publish(ctx, newEvent(domain.EventAccountRegistered, account.ID, account.ID,
		map[string]any{"role": account.Role}, now))

	s.logger.Info("Account registered",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
	)

	return &Session{Token: token, Account: account}, nil
}

// Login exchanges credentials for a token. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in, loginMessages); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(account.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Account: account}, nil
}

// Authenticate resolves a bearer token to the account it was issued for
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	accountID, err := s.tokens.Verify(token)
	if err != nil || !isUUID(accountID) {
		return nil, domain.ErrInvalidToken
	}

	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}
	return account, nil
}

// Me returns the caller's own profile
func (s *AuthService) Me(_ context.Context, caller *domain.Account) (*domain.Account, error) {
	if err := policy.Authorize(caller, policy.ActionViewProfile, ""); err != nil {
		return nil, err
	}
	return caller, nil
}

// normalizeEmail only trims; emails are unique and matched case-sensitively as stored
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
