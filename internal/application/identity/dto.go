package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crosserp/backend/internal/domain/identity"
)

// RegisterCompanyRequest creates a tenant together with its first user
// and default warehouse.
type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required,max=300"`
	Slug        string `json:"slug" binding:"required,min=2,max=100,slug"`
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	DisplayName string `json:"display_name" binding:"max=200"`
	Phone       string `json:"phone" binding:"max=20"`
}

// LoginRequest authenticates a user within one tenant
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserInfo is the authenticated user projection
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	TenantSlug  string    `json:"tenant_slug"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
}

// AuthResponse carries tokens plus the user they belong to
type AuthResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// TokenResponse carries a refreshed token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

func toUserInfo(user *identity.User, tenant *identity.Tenant) UserInfo {
	info := UserInfo{
		ID:          user.ID,
		TenantID:    user.TenantID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}
	if tenant != nil {
		info.TenantName = tenant.Name
		info.TenantSlug = tenant.Slug
	}
	return info
}
