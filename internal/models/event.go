package models

// ServiceSelectedEvent is published after a selection is stored.
type ServiceSelectedEvent struct {
	EventID         string  `json:"event_id"`         // Unique event identifier
	Timestamp       int64   `json:"timestamp"`        // Unix seconds
	UserServiceID   string  `json:"user_service_id"`  // Inserted user_services row
	UserID          string  `json:"user_id"`          // Selecting user
	ServiceID       string  `json:"service_id"`       // Selected service
	ServiceTitle    string  `json:"service_title"`    // Title at selection time
	Status          string  `json:"status"`           // Status written
	AppointmentDate *string `json:"appointment_date"` // Requested slot, if any
}
