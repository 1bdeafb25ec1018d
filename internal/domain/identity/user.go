package identity

import (
	"strings"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"
	UserStatusDeactivated UserStatus = "deactivated"
)

const bcryptCost = 12

// User represents a user belonging to exactly one tenant
type User struct {
	shared.TenantAggregateRoot
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_tenant_username,priority:2"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	DisplayName  string     `gorm:"type:varchar(200)"`
	Phone        string     `gorm:"type:varchar(20)"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user with a bcrypt-hashed password
func NewUser(tenantID uuid.UUID, username, password, displayName string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < 3 || len(username) > 100 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username must be 3-100 characters")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Username:            username,
		PasswordHash:        string(hash),
		DisplayName:         displayName,
		Status:              UserStatusActive,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// IsActive returns true if the user may authenticate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
