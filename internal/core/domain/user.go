package domain

import "time"

// Role is the closed set of authorization levels. There are exactly two;
// every authorization branch switches over this type.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
)

// ParseRole converts an external role string to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCompany:
		return RoleCompany, true
	}
	return "", false
}

// User models an account in the system. CompanyName is set iff the role
// is RoleCompany. Role is immutable after creation.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	CompanyName  string    `json:"company_name,omitempty" bson:"company_name,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Identity is the authenticated caller, resolved once per request at the
// session boundary and threaded explicitly into every service call.
type Identity struct {
	ID          string
	Username    string
	Role        Role
	CompanyName string
}
