package domain

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	ImageURL       string    `json:"image_url"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	TelegramChatID *int64
}

type LoginInput struct {
	Email    string
	Password string
}

// ProfileUpdateInput changes the name always; an empty Password and a nil Image keep
// the current values.
type ProfileUpdateInput struct {
	Name           string
	Password       string
	Image          *ImageFile
	TelegramChatID *int64
}
