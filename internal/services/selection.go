package services

//go:generate mockgen -source=selection.go -destination=selection_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sbilibin2017/gw-health-portal/internal/facades"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrServiceIDRequired is returned when a selection names no service.
	ErrServiceIDRequired = errors.New("Service ID is required")
	// ErrUserIDRequired is returned when a selection names no user.
	ErrUserIDRequired = errors.New("User ID is required")
	// ErrServiceNotFound is returned when the selected service does not exist.
	ErrServiceNotFound = errors.New("Service not found")
)

// StoreError wraps a failure of the store while writing a selection.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// ServiceReader looks up a catalog entry.
type ServiceReader interface {
	GetByID(ctx context.Context, id string) (*models.Service, error) // Returns the service or sql.ErrNoRows
}

// UserServiceWriter stores selections.
type UserServiceWriter interface {
	Insert(ctx context.Context, userID, serviceID, status string, appointmentDate, notes *string) (*models.UserService, error) // Stores a selection row
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SelectionService records patients selecting services and publishes the
// selections to Kafka.
type SelectionService struct {
	serviceRepo ServiceReader
	writeRepo   UserServiceWriter
	kafkaWriter KafkaWriter
}

// NewSelectionService creates a new SelectionService. kafkaWriter may be nil.
func NewSelectionService(
	serviceRepo ServiceReader,
	writeRepo UserServiceWriter,
	kafkaWriter KafkaWriter,
) *SelectionService {
	return &SelectionService{
		serviceRepo: serviceRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Select validates the input, checks that the service exists and stores an
// Active selection. Empty optional fields are stored as NULL.
// Resubmitting the same input stores another row.
func (s *SelectionService) Select(ctx context.Context, in models.SelectServiceInput) (*models.UserService, error) {
	log := logger.FromContext(ctx)

	if in.ServiceID == "" {
		return nil, ErrServiceIDRequired
	}
	if in.UserID == "" {
		return nil, ErrUserIDRequired
	}

	service, err := s.serviceRepo.GetByID(ctx, in.ServiceID)
	if err != nil || service == nil {
		log.Warnw("service lookup failed", "serviceID", in.ServiceID, "error", err)
		return nil, ErrServiceNotFound
	}

	row, err := s.writeRepo.Insert(ctx,
		in.UserID,
		in.ServiceID,
		models.StatusActive,
		emptyToNil(in.AppointmentDate),
		emptyToNil(in.Notes),
	)
	if err != nil {
		log.Errorw("failed to save selection", "userID", in.UserID, "serviceID", in.ServiceID, "error", err)
		return nil, &StoreError{Err: err}
	}

	event := models.ServiceSelectedEvent{
		EventID:         uuid.NewString(),
		Timestamp:       time.Now().Unix(),
		UserServiceID:   row.ID,
		UserID:          row.UserID,
		ServiceID:       row.ServiceID,
		ServiceTitle:    service.Title,
		Status:          lo.FromPtr(row.Status),
		AppointmentDate: row.AppointmentDate,
	}
	// The row is only visible once the session transaction commits.
	facades.AfterCommit(ctx, func() { s.publishSelection(ctx, event) })

	return row, nil
}

// SubmitBooking lets the booking form submit through the service.
func (s *SelectionService) SubmitBooking(ctx context.Context, serviceID, userID, appointmentDate string, notes *string) error {
	_, err := s.Select(ctx, models.SelectServiceInput{
		ServiceID:       serviceID,
		UserID:          userID,
		AppointmentDate: &appointmentDate,
		Notes:           notes,
	})
	return err
}

// publishSelection publishes a selection event keyed by user id.
func (s *SelectionService) publishSelection(ctx context.Context, event models.ServiceSelectedEvent) {
	log := logger.FromContext(ctx)

	if s.kafkaWriter == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal selection for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish selection to Kafka", "event_id", event.EventID, "error", err)
	} else {
		log.Infow("Selection published to Kafka", "event_id", event.EventID, "serviceID", event.ServiceID)
	}
}

func emptyToNil(v *string) *string {
	if v == nil {
		return nil
	}
	return lo.EmptyableToPtr(*v)
}
