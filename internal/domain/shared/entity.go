package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and audit columns every persisted
// row shares. The id is assigned at construction so an entity is
// addressable before its first save; GORM maintains the timestamps.
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity returns a BaseEntity with a fresh id.
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
