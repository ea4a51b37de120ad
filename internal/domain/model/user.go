package model

import (
	"time"
)

type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"` // Not exposed
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// UserResponse is the public projection of a User. The password never
// leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type CreateUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ReadUserQuery struct {
	ID string `json:"id"`
}

// UpdateUserCommand carries the target id plus the optional new field
// values. A nil field means "leave unchanged".
type UpdateUserCommand struct {
	ID       string  `json:"id"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

type DeleteUserCommand struct {
	ID string `json:"id"`
}

type Healthcheck struct {
	Status string `json:"status"`
}
