package user

import (
	"regexp"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"
)

// Roles lists the assignable roles in display order.
var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	default:
		return false
	}
}

// Color returns the display color tag for the role. Unrecognized roles fall
// back to a neutral default.
func (r Role) Color() string {
	switch r {
	case RoleAdmin:
		return "red"
	case RoleManager:
		return "orange"
	case RoleUser:
		return "blue"
	default:
		return "default"
	}
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Permissive: digits, spaces, dashes, parentheses, optional leading +.
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{7,20}$`)
)

const minAddressLength = 10

// FormData carries the mutable user fields submitted by create/edit forms.
type FormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate checks form-level constraints and returns a map of field name to
// problem description. An empty map means the form is acceptable.
func (f *FormData) Validate() map[string]string {
	problems := make(map[string]string)
	if f.Name == "" {
		problems["name"] = "name is required"
	}
	if !emailPattern.MatchString(f.Email) {
		problems["email"] = "invalid email address"
	}
	if !f.Role.IsValid() {
		problems["role"] = "unknown role"
	}
	if !phonePattern.MatchString(f.Phone) {
		problems["phone"] = "invalid phone number"
	}
	if len(f.Address) < minAddressLength {
		problems["address"] = "address must be at least 10 characters"
	}
	return problems
}
