// Package policy decides which account may perform which gateway action.
package policy

import (
	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/samber/lo"
)

// Action names a protected gateway operation
type Action string

const (
	ActionViewProfile      Action = "profile:view"
	ActionCreateJob        Action = "job:create"
	ActionListApplications Action = "application:list"
	ActionApply            Action = "application:create"
	ActionViewApplication  Action = "application:view"
	ActionViewAdmin        Action = "admin:view"
)

type rule struct {
	roles   []domain.Role
	message string
	// owned requires the caller to own the resource unless the caller is an admin
	owned bool
}

var rules = map[Action]rule{
	ActionViewProfile: {
		roles: []domain.Role{domain.RoleJobSeeker, domain.RoleEmployer, domain.RoleAdmin},
	},
	ActionCreateJob: {
		roles:   []domain.Role{domain.RoleEmployer},
		message: "Only employers can create jobs",
	},
	ActionListApplications: {
		roles: []domain.Role{domain.RoleJobSeeker, domain.RoleEmployer, domain.RoleAdmin},
	},
	ActionApply: {
		roles:   []domain.Role{domain.RoleJobSeeker},
		message: "Only job seekers can apply",
	},
	ActionViewApplication: {
		roles:   []domain.Role{domain.RoleJobSeeker, domain.RoleEmployer, domain.RoleAdmin},
		message: "You do not have access to this application",
		owned:   true,
	},
	ActionViewAdmin: {
		roles:   []domain.Role{domain.RoleAdmin},
		message: "Admin access required",
	},
}

// Authorize returns nil when caller may perform action on a resource owned by
// ownerID, or a domain.ErrForbidden error otherwise. ownerID is ignored for
// actions that are not ownership-scoped.
func Authorize(caller *domain.Account, action Action, ownerID string) error {
	r, ok := rules[action]
	if !ok || caller == nil {
		return domain.Forbidden("Forbidden")
	}

	message := r.message
	if message == "" {
		message = "Forbidden"
	}

	if !lo.Contains(r.roles, caller.Role) {
		return domain.Forbidden(message)
	}

	if r.owned && caller.Role != domain.RoleAdmin && caller.ID != ownerID {
		return domain.Forbidden(message)
	}

	return nil
}
