// FILE: internal/entity/user_entity.go
package entity

type UserRole string

const (
	UserRoleAdmin  UserRole = "Admin"
	UserRoleMember UserRole = "Member"
)

// User is the identity of an active session. It is created on login and
// discarded on logout.
type User struct {
	Email  string
	Tenant string
	Role   UserRole
}

func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Account is one row of the demo allow-list.
type Account struct {
	Email    string
	Password string
	Tenant   string
	Role     UserRole
}

func (a Account) User() User {
	return User{
		Email:  a.Email,
		Tenant: a.Tenant,
		Role:   a.Role,
	}
}
