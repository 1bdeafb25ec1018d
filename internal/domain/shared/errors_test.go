package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("matches its sentinel by code", func(t *testing.T) {
		reworded := NewDomainErrorf("INSUFFICIENT_STOCK", "Not enough stock for '%s'", "Flour")
		assert.ErrorIs(t, reworded, ErrInsufficientStock)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("debit failed: %w", NewDomainError("NOT_FOUND", "no such row"))
		assert.ErrorIs(t, wrapped, ErrNotFound)
	})

	t.Run("different codes do not match", func(t *testing.T) {
		assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
		assert.False(t, errors.Is(ErrInsufficientStock, errors.New("Insufficient stock available")))
	})
}
