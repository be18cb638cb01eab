package models

// Unit is the measure an ingredient quantity is tracked in.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"
	UnitPiece      Unit = "pcs"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
)

var Units = []Unit{
	UnitGram,
	UnitKilogram,
	UnitMilliliter,
	UnitLiter,
	UnitTeaspoon,
	UnitTablespoon,
	UnitCup,
	UnitPiece,
	UnitOunce,
	UnitPound,
}

var unitLabels = map[Unit]string{
	UnitGram:       "grams (g)",
	UnitKilogram:   "kilograms (kg)",
	UnitMilliliter: "milliliters (ml)",
	UnitLiter:      "liters (l)",
	UnitTeaspoon:   "teaspoons (tsp)",
	UnitTablespoon: "tablespoons (tbsp)",
	UnitCup:        "cups",
	UnitPiece:      "pieces",
	UnitOunce:      "ounces (oz)",
	UnitPound:      "pounds (lb)",
}

func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

func (u Unit) Label() string {
	if l, ok := unitLabels[u]; ok {
		return l
	}
	return string(u)
}
