package models

import "time"

// Observed values of user_services.status. Selections are always written as
// StatusActive; the others come from back-office updates.
const (
	StatusActive    = "Active"
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// UserService records one selection of a service by a user.
type UserService struct {
	ID              string    `json:"id" db:"id"`                             // Row ID
	UserID          string    `json:"user_id" db:"user_id"`                   // Selecting user
	ServiceID       string    `json:"service_id" db:"service_id"`             // Selected service
	Status          *string   `json:"status" db:"status"`                     // Free-text status
	AppointmentDate *string   `json:"appointment_date" db:"appointment_date"` // Free text or RFC3339
	Notes           *string   `json:"notes" db:"notes"`                       // Patient notes
	SelectedAt      time.Time `json:"selected_at" db:"selected_at"`           // Insert timestamp
}

// ServiceSummary is the part of a service shown next to a selection.
type ServiceSummary struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	ImageURL    *string `json:"image_url" db:"image_url"`
	Tag         *string `json:"tag" db:"tag"`
}

// UserServiceDetails is a selection joined with its service.
type UserServiceDetails struct {
	ID              string         `json:"id" db:"id"`
	ServiceID       string         `json:"service_id" db:"service_id"`
	Status          *string        `json:"status" db:"status"`
	AppointmentDate *string        `json:"appointment_date" db:"appointment_date"`
	Notes           *string        `json:"notes" db:"notes"`
	Service         ServiceSummary `json:"service" db:"service"`
}
