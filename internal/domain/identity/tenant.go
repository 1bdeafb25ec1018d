package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
)

// SubscriptionPlan represents the subscription plan of a tenant
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanBasic      SubscriptionPlan = "basic"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// SubscriptionStatus represents the billing status of a tenant
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Tenant represents a company account in the multi-tenant system.
// It is the root of data isolation: every tenant-scoped row references it
// through tenant_id. Tenants are never hard-deleted, only deactivated.
type Tenant struct {
	shared.BaseAggregateRoot
	Name               string             `gorm:"type:varchar(300);not null"`
	Slug               string             `gorm:"type:varchar(100);not null;uniqueIndex"`
	LogoURL            string             `gorm:"type:varchar(500)"`
	Phone              string             `gorm:"type:varchar(20)"`
	Email              string             `gorm:"type:varchar(255)"`
	Address            string             `gorm:"type:text"`
	Plan               SubscriptionPlan   `gorm:"type:varchar(20);not null;default:'free'"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);not null;default:'trial'"`
	TrialEndsAt        *time.Time
	SubscriptionEndsAt *time.Time
	MaxUsers           int    `gorm:"not null;default:5"`
	MaxProducts        int    `gorm:"not null;default:100"`
	MaxWarehouses      int    `gorm:"not null;default:2"`
	IsActive           bool   `gorm:"not null;default:true;index"`
	Notes              string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new tenant with required fields
func NewTenant(name, slug string) (*Tenant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 300 {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 300 characters")
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !slugPattern.MatchString(slug) {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug must contain only lowercase letters, digits and hyphens")
	}

	tenant := &Tenant{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Name:               name,
		Slug:               slug,
		Plan:               PlanFree,
		SubscriptionStatus: SubscriptionTrial,
		MaxUsers:           5,
		MaxProducts:        100,
		MaxWarehouses:      2,
		IsActive:           true,
	}

	tenant.AddDomainEvent(NewTenantCreatedEvent(tenant))

	return tenant, nil
}

// SetContact updates the tenant's public contact information
func (t *Tenant) SetContact(phone, email, address string) error {
	if phone != "" && len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 20 characters")
	}
	if email != "" && len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}

	t.Phone = strings.TrimSpace(phone)
	t.Email = strings.ToLower(strings.TrimSpace(email))
	t.Address = address
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetLogoURL sets the tenant's logo URL
func (t *Tenant) SetLogoURL(url string) error {
	if url != "" && len(url) > 500 {
		return shared.NewDomainError("INVALID_URL", "Logo URL cannot exceed 500 characters")
	}

	t.LogoURL = url
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetPlan sets the subscription plan and adjusts resource limits
func (t *Tenant) SetPlan(plan SubscriptionPlan) error {
	switch plan {
	case PlanFree:
		t.MaxUsers, t.MaxProducts, t.MaxWarehouses = 5, 100, 2
	case PlanBasic:
		t.MaxUsers, t.MaxProducts, t.MaxWarehouses = 10, 1000, 5
	case PlanPro:
		t.MaxUsers, t.MaxProducts, t.MaxWarehouses = 50, 20000, 20
	case PlanEnterprise:
		t.MaxUsers, t.MaxProducts, t.MaxWarehouses = 9999, 999999, 9999
	default:
		return shared.NewDomainError("INVALID_PLAN", "Unknown subscription plan")
	}

	if t.SubscriptionStatus == SubscriptionTrial && plan != PlanFree {
		t.SubscriptionStatus = SubscriptionActive
		t.TrialEndsAt = nil
	}

	t.Plan = plan
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Deactivate soft-deactivates the tenant. Existing rows are kept; all
// logins and API access for the tenant are refused at the boundary.
func (t *Tenant) Deactivate() {
	if !t.IsActive {
		return
	}
	t.IsActive = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	t.AddDomainEvent(NewTenantDeactivatedEvent(t))
}

// Activate re-enables a deactivated tenant
func (t *Tenant) Activate() {
	if t.IsActive {
		return
	}
	t.IsActive = true
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// IsSubscriptionActive returns true if the tenant may use the system
func (t *Tenant) IsSubscriptionActive() bool {
	return t.IsActive &&
		(t.SubscriptionStatus == SubscriptionActive || t.SubscriptionStatus == SubscriptionTrial)
}

// PublicProfile is the cross-tenant-visible projection of a tenant.
// Only these fields may be shown to other tenants (partner search).
type PublicProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// PublicProfile returns the cross-tenant-visible projection
func (t *Tenant) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:      t.ID.String(),
		Name:    t.Name,
		Slug:    t.Slug,
		LogoURL: t.LogoURL,
		Phone:   t.Phone,
	}
}
