package models

// SelectServiceInput is what a patient submits when selecting a service.
type SelectServiceInput struct {
	ServiceID       string
	UserID          string
	AppointmentDate *string
	Notes           *string
}
