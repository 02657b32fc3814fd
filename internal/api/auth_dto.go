package api

import (
	"time"

	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          *string    `json:"name"`
	Image         *string    `json:"image"`
	ActiveHotelID *string    `json:"activeHotelId"`
	LastLoginAt   *time.Time `json:"lastLoginAt"`
	IsSuperAdmin  bool       `json:"isSuperAdmin"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Image:         u.Image,
		ActiveHotelID: u.ActiveHotelID,
		LastLoginAt:   u.LastLoginAt,
		IsSuperAdmin:  u.IsSuperAdmin,
		CreatedAt:     u.CreatedAt,
	}
}

type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
