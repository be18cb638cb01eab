package models

import "time"

// Ingredient - a pantry item with its current stock level
type Ingredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	Quantity     float64    `gorm:"not null" json:"quantity"` // in Unit
	Unit         Unit       `gorm:"type:varchar(8);not null" json:"unit"`
	Category     Category   `gorm:"type:varchar(16);not null" json:"category"`
	ExpiryDate   *time.Time `json:"expiryDate"`   // nil: does not expire / unknown
	MinimumStock *float64   `json:"minimumStock"` // nil: no low-stock alerting
	Notes        *string    `gorm:"type:text" json:"notes"`
}
