package domain

import (
	"context"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User records are owned by the authentication collaborator. This service
// only reads them to attach identity and contact details to bookings.
type User struct {
	ID        int
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserRepository interface {
	GetById(ctx context.Context, id int) (*User, error)
}
