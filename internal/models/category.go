package models

// Category groups ingredients on the pantry screens.
type Category string

const (
	CategoryDairy    Category = "dairy"
	CategoryProduce  Category = "produce"
	CategoryMeat     Category = "meat"
	CategorySeafood  Category = "seafood"
	CategoryBakery   Category = "bakery"
	CategoryDryGoods Category = "dry_goods"
	CategoryCanned   Category = "canned"
	CategoryFrozen   Category = "frozen"
	CategorySpices   Category = "spices"
	CategoryOther    Category = "other"
)

// Categories lists every accepted category in display order.
var Categories = []Category{
	CategoryDairy,
	CategoryProduce,
	CategoryMeat,
	CategorySeafood,
	CategoryBakery,
	CategoryDryGoods,
	CategoryCanned,
	CategoryFrozen,
	CategorySpices,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryDairy:    "Dairy",
	CategoryProduce:  "Produce",
	CategoryMeat:     "Meat",
	CategorySeafood:  "Seafood",
	CategoryBakery:   "Bakery",
	CategoryDryGoods: "Dry Goods",
	CategoryCanned:   "Canned Goods",
	CategoryFrozen:   "Frozen Foods",
	CategorySpices:   "Spices",
	CategoryOther:    "Other",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label - human readable name, falls back to the raw value
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}
