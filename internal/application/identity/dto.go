package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/identity"
)

// RegisterRequest contains the input for account registration.
// At least one of email or phone is required.
type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required,max=200"`
	OwnerName    string `json:"owner_name" binding:"omitempty,max=200"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest contains the input for login. Identifier accepts email or phone.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required,max=200"`
	Password   string `json:"password" binding:"required"`
	IP         string `json:"-"`
}

// RefreshRequest contains the input for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest contains optional profile fields to change
type UpdateProfileRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,max=200"`
	OwnerName    *string `json:"owner_name" binding:"omitempty,max=200"`
	Email        *string `json:"email" binding:"omitempty,email,max=200"`
	Phone        *string `json:"phone" binding:"omitempty,max=20"`
	BusinessType *string `json:"business_type" binding:"omitempty,oneof=retail services mixed"`
}

// ChangePasswordRequest contains the input for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse contains account information for API responses
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	BusinessName string     `json:"business_name"`
	OwnerName    string     `json:"owner_name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	BusinessType string     `json:"business_type"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	User  UserResponse  `json:"user"`
	Token TokenResponse `json:"token"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		BusinessName: user.BusinessName,
		OwnerName:    user.OwnerName,
		Email:        user.Email,
		Phone:        user.Phone,
		BusinessType: string(user.BusinessType),
		Currency:     user.Currency,
		Status:       string(user.Status),
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
	}
}
