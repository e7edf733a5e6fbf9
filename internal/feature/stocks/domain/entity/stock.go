// Package entity defines the domain models for the stocks feature.
package entity

// Unset is the sentinel value stored when an optional field was not provided.
// The API contract predates nullable columns, so the literal string "NA" is
// persisted instead of NULL.
const Unset = "NA"

// Stock represents one stock holding in the inventory.
// Symbol is stored uppercased and is unique across the whole collection;
// ID and Symbol never change after creation.
type Stock struct {
	ID            string  `gorm:"primaryKey;size:36"`        // UUID assigned at creation
	Name          string  `gorm:"size:255;not null"`         // Company name, or Unset
	Symbol        string  `gorm:"size:20;not null;uniqueIndex"` // Ticker symbol (e.g., "NVDA")
	PurchasePrice float64 `gorm:"not null"`                  // Price per share, rounded to 2 decimals
	PurchaseDate  string  `gorm:"size:10;not null"`          // DD-MM-YYYY, or Unset
	Shares        int     `gorm:"not null"`                  // Number of shares held
}
