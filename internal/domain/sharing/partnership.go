package sharing

import (
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnershipStatus represents the status of a partnership
type PartnershipStatus string

const (
	PartnershipStatusPending   PartnershipStatus = "pending"
	PartnershipStatusAccepted  PartnershipStatus = "accepted"
	PartnershipStatusRejected  PartnershipStatus = "rejected"
	PartnershipStatusCancelled PartnershipStatus = "cancelled"
)

// Partnership is a two-party relationship between tenants. The pair is
// unordered for uniqueness purposes: at most one pending or accepted
// partnership may exist between any two tenants regardless of which
// side requested it. Once rejected or cancelled a partnership is
// immutable; retrying means creating a new one.
//
// Partnership rows belong to both tenants at once, so the aggregate is
// not tenant-scoped and the automatic tenant filter never applies to it.
type Partnership struct {
	shared.BaseAggregateRoot
	RequesterTenantID uuid.UUID         `gorm:"type:uuid;not null;index:idx_partnership_pair"`
	TargetTenantID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_partnership_pair"`
	Status            PartnershipStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes             string            `gorm:"type:text"`
	RespondedAt       *time.Time
}

// TableName returns the table name for GORM
func (Partnership) TableName() string {
	return "partnerships"
}

// NewPartnership creates a pending partnership request from the
// requester to the target tenant.
func NewPartnership(requesterTenantID, targetTenantID uuid.UUID, notes string) (*Partnership, error) {
	if requesterTenantID == targetTenantID {
		return nil, shared.NewDomainError("SELF_PARTNERSHIP", "Cannot request a partnership with yourself")
	}
	if requesterTenantID == uuid.Nil || targetTenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Both tenants are required")
	}

	partnership := &Partnership{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequesterTenantID: requesterTenantID,
		TargetTenantID:    targetTenantID,
		Status:            PartnershipStatusPending,
		Notes:             notes,
	}

	partnership.AddDomainEvent(NewPartnershipRequestedEvent(partnership))

	return partnership, nil
}

// Accept transitions a pending partnership to accepted. Only the
// target tenant may accept.
func (p *Partnership) Accept(actingTenantID uuid.UUID) error {
	if actingTenantID != p.TargetTenantID {
		return shared.NewDomainError("NOT_TARGET", "Only the requested tenant can accept a partnership")
	}
	if p.Status != PartnershipStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot accept a partnership in status %s", p.Status)
	}

	now := time.Now()
	p.Status = PartnershipStatusAccepted
	p.RespondedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	p.AddDomainEvent(NewPartnershipAcceptedEvent(p))

	return nil
}

// Reject transitions a pending partnership to rejected. Only the
// target tenant may reject.
func (p *Partnership) Reject(actingTenantID uuid.UUID) error {
	if actingTenantID != p.TargetTenantID {
		return shared.NewDomainError("NOT_TARGET", "Only the requested tenant can reject a partnership")
	}
	if p.Status != PartnershipStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot reject a partnership in status %s", p.Status)
	}

	now := time.Now()
	p.Status = PartnershipStatusRejected
	p.RespondedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}

// Cancel ends a partnership. Either party may cancel at any non-final
// point. Completed transfers between the tenants are unaffected.
func (p *Partnership) Cancel(actingTenantID uuid.UUID) error {
	if !p.Involves(actingTenantID) {
		return shared.NewDomainError("NOT_PARTY", "Only a party to the partnership can cancel it")
	}
	if p.Status == PartnershipStatusRejected || p.Status == PartnershipStatusCancelled {
		return shared.NewDomainErrorf("INVALID_STATE", "Partnership is already %s", p.Status)
	}

	p.Status = PartnershipStatusCancelled
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Involves reports whether the tenant is a party to this partnership
func (p *Partnership) Involves(tenantID uuid.UUID) bool {
	return p.RequesterTenantID == tenantID || p.TargetTenantID == tenantID
}

// CounterpartOf returns the other tenant of the pair
func (p *Partnership) CounterpartOf(tenantID uuid.UUID) uuid.UUID {
	if p.RequesterTenantID == tenantID {
		return p.TargetTenantID
	}
	return p.RequesterTenantID
}

// IsActive reports whether the partnership occupies the unordered
// pair's uniqueness slot (pending or accepted).
func (p *Partnership) IsActive() bool {
	return p.Status == PartnershipStatusPending || p.Status == PartnershipStatusAccepted
}

// IsAccepted reports whether transfers may flow between the pair
func (p *Partnership) IsAccepted() bool {
	return p.Status == PartnershipStatusAccepted
}
