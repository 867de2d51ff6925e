// Package booking holds the appointment selection flow: which date and time
// slot a patient picked and whether the selection can be submitted.
package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"
)

// State is a step of the booking flow.
type State int

const (
	StateNoDate State = iota
	StateDateSelected
	StateReady
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNoDate:
		return "no-date"
	case StateDateSelected:
		return "date-selected"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrUnknownDate    = errors.New("date is not offered")
	ErrUnknownSlot    = errors.New("time slot is not offered on this date")
	ErrDateRequired   = errors.New("select a date first")
	ErrNotReady       = errors.New("Please select both a date and time")
	ErrNotSignedIn    = errors.New("You must be logged in to select a service")
	ErrAlreadyStarted = errors.New("submission already in progress")
)

// Submitter stores a booking.
type Submitter interface {
	SubmitBooking(ctx context.Context, serviceID, userID, appointmentDate string, notes *string) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, serviceID, userID, appointmentDate string, notes *string) error

// SubmitBooking calls f.
func (f SubmitterFunc) SubmitBooking(ctx context.Context, serviceID, userID, appointmentDate string, notes *string) error {
	return f(ctx, serviceID, userID, appointmentDate, notes)
}

// Form is the booking flow of one patient for one service.
type Form struct {
	ServiceID string
	UserID    string
	Schedule  Schedule
	Notes     string

	date  string
	time  string
	state State
	err   error
}

// NewForm starts a booking flow with nothing selected.
func NewForm(serviceID, userID string, schedule Schedule) *Form {
	return &Form{
		ServiceID: serviceID,
		UserID:    userID,
		Schedule:  schedule,
	}
}

// SelectDate picks a date. Any previously picked time is cleared.
func (f *Form) SelectDate(date string) error {
	if f.state == StateSubmitting {
		return ErrAlreadyStarted
	}
	f.time = ""
	if _, ok := f.Schedule.Find(date); !ok {
		f.date = ""
		f.state = StateNoDate
		return ErrUnknownDate
	}
	f.date = date
	f.state = StateDateSelected
	f.err = nil
	return nil
}

// SelectTime picks a slot of the selected date.
func (f *Form) SelectTime(slot string) error {
	if f.state == StateSubmitting {
		return ErrAlreadyStarted
	}
	if f.date == "" {
		return ErrDateRequired
	}
	if !lo.Contains(f.TimeSlots(), slot) {
		return ErrUnknownSlot
	}
	f.time = slot
	f.state = StateReady
	f.err = nil
	return nil
}

// Date returns the selected date, or "".
func (f *Form) Date() string { return f.date }

// Time returns the selected time slot, or "".
func (f *Form) Time() string { return f.time }

// State returns the current step.
func (f *Form) State() State { return f.state }

// Err returns the error of the last failed submission.
func (f *Form) Err() error { return f.err }

// TimeSlots returns the slots of the selected date.
func (f *Form) TimeSlots() []string {
	if f.date == "" {
		return nil
	}
	d, _ := f.Schedule.Find(f.date)
	return d.Slots
}

// CanSubmit reports whether date, time and user are all known.
func (f *Form) CanSubmit() bool {
	return f.state != StateSubmitting && f.date != "" && f.time != "" && f.UserID != ""
}

// AppointmentDate is the value stored with the booking.
func (f *Form) AppointmentDate() string {
	return f.date + " " + f.time
}

// Submit hands the booking to s. The form ends in StateSucceeded or
// StateFailed; validation failures leave the selection untouched.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	if f.UserID == "" {
		f.err = ErrNotSignedIn
		return f.err
	}
	if !f.CanSubmit() {
		f.err = ErrNotReady
		return f.err
	}

	f.state = StateSubmitting
	f.err = nil

	var notes *string
	if trimmed := strings.TrimSpace(f.Notes); trimmed != "" {
		notes = &trimmed
	}

	if err := s.SubmitBooking(ctx, f.ServiceID, f.UserID, f.AppointmentDate(), notes); err != nil {
		f.state = StateFailed
		f.err = err
		return err
	}

	f.state = StateSucceeded
	return nil
}
