package identity

import (
	"github.com/crosserp/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeTenant = "Tenant"

// Event type constants
const (
	EventTypeTenantCreated     = "TenantCreated"
	EventTypeTenantDeactivated = "TenantDeactivated"
)

// TenantCreatedEvent is published when a new tenant is provisioned
type TenantCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewTenantCreatedEvent creates a new TenantCreatedEvent
func NewTenantCreatedEvent(tenant *Tenant) *TenantCreatedEvent {
	return &TenantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantCreated, AggregateTypeTenant, tenant.ID, tenant.ID),
		Name:            tenant.Name,
		Slug:            tenant.Slug,
	}
}

// TenantDeactivatedEvent is published when a tenant is soft-deactivated
type TenantDeactivatedEvent struct {
	shared.BaseDomainEvent
	Slug string `json:"slug"`
}

// NewTenantDeactivatedEvent creates a new TenantDeactivatedEvent
func NewTenantDeactivatedEvent(tenant *Tenant) *TenantDeactivatedEvent {
	return &TenantDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantDeactivated, AggregateTypeTenant, tenant.ID, tenant.ID),
		Slug:            tenant.Slug,
	}
}
