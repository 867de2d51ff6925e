package models

import "time"

// Service is a catalog entry: a health offering a patient can select.
type Service struct {
	ID          string    `json:"id" db:"id"`                   // Catalog ID
	Title       string    `json:"title" db:"title"`             // Display title
	Description string    `json:"description" db:"description"` // Markdown description
	ImageURL    *string   `json:"image_url" db:"image_url"`     // Card image
	Tag         *string   `json:"tag" db:"tag"`                 // Optional badge, e.g. "Consult"
	Subtext     *string   `json:"subtext" db:"subtext"`         // Optional secondary line
	ShowArrow   *bool     `json:"show_arrow" db:"show_arrow"`   // Whether the card shows an arrow
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}
