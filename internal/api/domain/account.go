package domain

import "time"

// Role gates which operations an account may perform
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// Password bounds enforced on registration; bcrypt ignores input past 72 bytes
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Profile is the optional job seeker profile
type Profile struct {
	Phone      string   `json:"phone,omitempty"`
	Address    string   `json:"address,omitempty"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience,omitempty"`
	Resume     string   `json:"resume,omitempty"`
}

// Account is a registered user. PasswordHash never leaves the process.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Contact is the public part of an account attached to jobs and applications
type Contact struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Profile *Profile `json:"profile,omitempty"`
}
