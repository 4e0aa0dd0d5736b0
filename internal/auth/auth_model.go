package auth

import (
	"time"

	"gorm.io/gorm"
)

// User is an account allowed to manage the club's results.
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"not null"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"arbiter"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterUserRecord(user *User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
