package domain

import (
	"fmt"
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// Member is a per-project membership entry keyed by email.
type Member struct {
	ProjectID string
	Email     string
	Role      MemberRole
	InvitedAt time.Time
}

// ValidateEmail checks the loose email shape used by the invite form.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}

// UserProfile is the identity supplied by the shell. The core treats
// it as opaque; no authentication happens here.
type UserProfile struct {
	ID    string
	Name  string
	Email string
	Role  MemberRole
}

// DefaultUser is the local single-user identity stamped onto created
// documents and memberships.
var DefaultUser = UserProfile{
	ID:    "u_demo",
	Name:  "Demo Admin",
	Email: "admin@example.com",
	Role:  RoleAdmin,
}
