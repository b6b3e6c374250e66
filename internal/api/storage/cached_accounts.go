package storage

import (
	"context"
	"slices"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	gocache "github.com/patrickmn/go-cache"
)

type accountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// CachedAccounts keeps recently authenticated accounts in memory.
// Accounts are never updated or deleted, so entries only expire.
type CachedAccounts struct {
	repo  accountRepository
	cache *gocache.Cache
}

func NewCachedAccounts(repo accountRepository, ttl time.Duration) *CachedAccounts {
	return &CachedAccounts{repo: repo, cache: gocache.New(ttl, 2*ttl)}
}

func (c *CachedAccounts) CreateAccount(ctx context.Context, account *domain.Account) error {
	return c.repo.CreateAccount(ctx, account)
}

func (c *CachedAccounts) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	if value, found := c.cache.Get(id); found {
		return cloneAccount(value.(domain.Account)), nil
	}

	account, err := c.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// the cached entry shares no memory with any caller
	c.cache.SetDefault(id, *cloneAccount(*account))
	return account, nil
}

func cloneAccount(account domain.Account) *domain.Account {
	account.Profile.Skills = slices.Clone(account.Profile.Skills)
	return &account
}

// GetAccountByEmail is uncached: it serves login, which needs the current hash
func (c *CachedAccounts) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return c.repo.GetAccountByEmail(ctx, email)
}
