package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBeforeCreateAssignsIdentityOnce(t *testing.T) {
	p := &Product{
		Name:        "Teclado",
		Description: "Teclado mecánico",
		Price:       decimal.NewFromFloat(49.99),
		Quantity:    3,
	}

	assert.NoError(t, p.BeforeCreate(nil))

	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err, "assigned ID should be a valid UUID")
	assert.False(t, p.DateAdded.IsZero(), "DateAdded should be set at creation")

	// A second run must not reassign either value.
	id, added := p.ID, p.DateAdded
	assert.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, id, p.ID)
	assert.Equal(t, added, p.DateAdded)
}

func TestBeforeCreateKeepsExplicitValues(t *testing.T) {
	added := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &Product{ID: "fixed-id", DateAdded: added}

	assert.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", p.ID)
	assert.Equal(t, added, p.DateAdded)
}

func TestWritesRequireNameAndDescription(t *testing.T) {
	// Validation runs before any DB access, so a nil handle is fine here.
	repo := NewProductsRepository(nil)

	err := repo.CreateProduct(&Product{Description: "sin nombre"})
	assert.ErrorIs(t, err, ErrMissingFields)

	err = repo.CreateProduct(&Product{Name: "sin descripción"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = repo.UpdateProduct("any", ProductFields{Name: "solo nombre"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = repo.UpdateProduct("any", ProductFields{Description: "solo descripción"})
	assert.ErrorIs(t, err, ErrMissingFields)
}
