package partner

import (
	"strings"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WarehouseStatus represents the status of a warehouse
type WarehouseStatus string

const (
	WarehouseStatusActive   WarehouseStatus = "active"
	WarehouseStatusInactive WarehouseStatus = "inactive"
)

// Warehouse represents a stock location belonging to a tenant.
// It is the aggregate root for warehouse-related operations.
type Warehouse struct {
	shared.TenantAggregateRoot
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_warehouse_tenant_code,priority:2"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Status    WarehouseStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Address   string          `gorm:"type:text"`
	Phone     string          `gorm:"type:varchar(50)"`
	IsDefault bool            `gorm:"not null;default:false"`
	Notes     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse with required fields
func NewWarehouse(tenantID uuid.UUID, code, name string) (*Warehouse, error) {
	if err := validateWarehouseCode(code); err != nil {
		return nil, err
	}
	if err := validateWarehouseName(name); err != nil {
		return nil, err
	}

	warehouse := &Warehouse{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Status:              WarehouseStatusActive,
	}

	warehouse.AddDomainEvent(NewWarehouseCreatedEvent(warehouse))

	return warehouse, nil
}

// Update updates the warehouse's basic information
func (w *Warehouse) Update(name, address, phone string) error {
	if err := validateWarehouseName(name); err != nil {
		return err
	}
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	w.Name = name
	w.Address = address
	w.Phone = phone
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// SetDefault marks this warehouse as the default warehouse
func (w *Warehouse) SetDefault(isDefault bool) {
	w.IsDefault = isDefault
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}

// Disable disables the warehouse (makes it inactive)
func (w *Warehouse) Disable() error {
	if w.Status == WarehouseStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Warehouse is already inactive")
	}
	if w.IsDefault {
		return shared.NewDomainError("CANNOT_DISABLE_DEFAULT", "Cannot disable the default warehouse")
	}

	w.Status = WarehouseStatusInactive
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// Enable enables the warehouse (makes it active)
func (w *Warehouse) Enable() error {
	if w.Status == WarehouseStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Warehouse is already active")
	}

	w.Status = WarehouseStatusActive
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// IsActive returns true if the warehouse is active
func (w *Warehouse) IsActive() bool {
	return w.Status == WarehouseStatusActive
}

func validateWarehouseCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Warehouse code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Warehouse code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Warehouse code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateWarehouseName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 200 characters")
	}
	return nil
}
