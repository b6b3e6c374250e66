package service

import (
	"context"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/policy"
)

// Activity page bounds
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

type AdminService struct {
	activity ActivityStore
}

func NewAdminService(activity ActivityStore) *AdminService {
	return &AdminService{activity: activity}
}

func (s *AdminService) Stats(ctx context.Context, caller *domain.Account) (*domain.Stats, error) {
	if err := policy.Authorize(caller, policy.ActionViewAdmin, ""); err != nil {
		return nil, err
	}
	return s.activity.Stats(ctx)
}

// Activity returns the latest recorded events; limit is clamped to
// [1, MaxActivityLimit] and defaults to DefaultActivityLimit.
func (s *AdminService) Activity(ctx context.Context, caller *domain.Account, limit int) ([]domain.ActivityEvent, error) {
	if err := policy.Authorize(caller, policy.ActionViewAdmin, ""); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	return s.activity.ListActivity(ctx, limit)
}
