package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

func TestConvertUnit(t *testing.T) {
	got, ok := ConvertUnit(1500, models.UnitGram, models.UnitKilogram)
	assert.True(t, ok)
	assert.InDelta(t, 1.5, got, 1e-9)

	got, ok = ConvertUnit(2, models.UnitTablespoon, models.UnitTeaspoon)
	assert.True(t, ok)
	assert.Equal(t, 6.0, got)

	got, ok = ConvertUnit(3, models.UnitCup, models.UnitCup)
	assert.True(t, ok)
	assert.Equal(t, 3.0, got)

	_, ok = ConvertUnit(1, models.UnitCup, models.UnitGram)
	assert.False(t, ok)
}

func TestDisplayQuantity(t *testing.T) {
	assert.Equal(t, "1.5kg", DisplayQuantity(1500, models.UnitGram))
	assert.Equal(t, "999g", DisplayQuantity(999, models.UnitGram))
	assert.Equal(t, "2l", DisplayQuantity(2000, models.UnitMilliliter))
	assert.Equal(t, "1200pcs", DisplayQuantity(1200, models.UnitPiece))
	assert.Equal(t, "3kg", DisplayQuantity(3, models.UnitKilogram))
}
