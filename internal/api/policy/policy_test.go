package policy

import (
	"testing"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	seeker := &domain.Account{ID: "seeker", Role: domain.RoleJobSeeker}
	employer := &domain.Account{ID: "employer", Role: domain.RoleEmployer}
	admin := &domain.Account{ID: "admin", Role: domain.RoleAdmin}

	tests := []struct {
		name    string
		caller  *domain.Account
		action  Action
		owner   string
		allowed bool
	}{
		{name: "seeker views profile", caller: seeker, action: ActionViewProfile, allowed: true},
		{name: "employer creates job", caller: employer, action: ActionCreateJob, allowed: true},
		{name: "seeker creates job", caller: seeker, action: ActionCreateJob},
		{name: "admin creates job", caller: admin, action: ActionCreateJob},
		{name: "seeker applies", caller: seeker, action: ActionApply, allowed: true},
		{name: "employer applies", caller: employer, action: ActionApply},
		{name: "admin applies", caller: admin, action: ActionApply},
		{name: "employer lists applications", caller: employer, action: ActionListApplications, allowed: true},
		{name: "seeker lists applications", caller: seeker, action: ActionListApplications, allowed: true},
		{name: "owner views application", caller: employer, action: ActionViewApplication, owner: "employer", allowed: true},
		{name: "stranger views application", caller: employer, action: ActionViewApplication, owner: "other"},
		{name: "admin views any application", caller: admin, action: ActionViewApplication, owner: "other", allowed: true},
		{name: "admin dashboard", caller: admin, action: ActionViewAdmin, allowed: true},
		{name: "employer admin dashboard", caller: employer, action: ActionViewAdmin},
		{name: "unknown role", caller: &domain.Account{ID: "x", Role: "recruiter"}, action: ActionViewProfile},
		{name: "unknown action", caller: admin, action: Action("job:delete")},
		{name: "nil caller", caller: nil, action: ActionViewProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.action, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestAuthorize_Messages(t *testing.T) {
	seeker := &domain.Account{ID: "seeker", Role: domain.RoleJobSeeker}
	employer := &domain.Account{ID: "employer", Role: domain.RoleEmployer}

	assert.EqualError(t, Authorize(seeker, ActionCreateJob, ""), "Only employers can create jobs")
	assert.EqualError(t, Authorize(employer, ActionApply, ""), "Only job seekers can apply")
}
