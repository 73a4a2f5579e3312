package models

// Service represents a bookable catalog entry.
type Service struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	PriceCents      int64  `bson:"price_cents" json:"price_cents"`           // currency-scaled, never floats
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"` // slot grid step, > 0
	Active          bool   `bson:"active" json:"active"`
}
