package user

import (
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Profile struct {
	UserID    string    `json:"userId"`
	FullName  *string   `json:"fullName"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	AvatarURL *string   `json:"avatarUrl"`
	Email     string    `json:"email,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileParams leaves nil fields untouched.
type UpdateProfileParams struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	AvatarURL *string `json:"avatarUrl"`
}
