package partner

import (
	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Warehouse
const AggregateTypeWarehouse = "Warehouse"

// Event type constants for Warehouse
const (
	EventTypeWarehouseCreated = "WarehouseCreated"
)

// WarehouseCreatedEvent is published when a new warehouse is created
type WarehouseCreatedEvent struct {
	shared.BaseDomainEvent
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
}

// NewWarehouseCreatedEvent creates a new WarehouseCreatedEvent
func NewWarehouseCreatedEvent(warehouse *Warehouse) *WarehouseCreatedEvent {
	return &WarehouseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWarehouseCreated, AggregateTypeWarehouse, warehouse.ID, warehouse.TenantID),
		WarehouseID:     warehouse.ID,
		Code:            warehouse.Code,
		Name:            warehouse.Name,
	}
}
