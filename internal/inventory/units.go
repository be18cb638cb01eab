package inventory

import "github.com/goelshashank/Kitchen-Inventory2/internal/models"

var conversions = map[models.Unit]map[models.Unit]float64{
	models.UnitGram:       {models.UnitKilogram: 0.001},
	models.UnitKilogram:   {models.UnitGram: 1000},
	models.UnitMilliliter: {models.UnitLiter: 0.001},
	models.UnitLiter:      {models.UnitMilliliter: 1000},
	models.UnitTeaspoon:   {models.UnitTablespoon: 1.0 / 3},
	models.UnitTablespoon: {models.UnitTeaspoon: 3},
}

// ConvertUnit converts within the same unit family (g/kg, ml/l, tsp/tbsp).
// ok is false when no conversion is known. Display only: EvaluateRecipe does
// not use it.
func ConvertUnit(quantity float64, from, to models.Unit) (float64, bool) {
	if from == to {
		return quantity, true
	}
	factor, ok := conversions[from][to]
	if !ok {
		return 0, false
	}
	return quantity * factor, true
}

var largerUnit = map[models.Unit]models.Unit{
	models.UnitGram:       models.UnitKilogram,
	models.UnitMilliliter: models.UnitLiter,
}

// DisplayQuantity formats a quantity for people, moving 1000g and up to kg
// and 1000ml and up to l.
func DisplayQuantity(quantity float64, unit models.Unit) string {
	if to, ok := largerUnit[unit]; ok && quantity >= 1000 {
		if scaled, ok := ConvertUnit(quantity, unit, to); ok {
			return FormatQuantity(scaled, to)
		}
	}
	return FormatQuantity(quantity, unit)
}
