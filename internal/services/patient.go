package services

//go:generate mockgen -source=patient.go -destination=patient_mock_test.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// PreviewSize is the number of services shown on the dashboard.
const PreviewSize = 4

// ErrPatientInfoNotFound is returned when a user has no health summary yet.
var ErrPatientInfoNotFound = errors.New("Patient information not found")

// PatientInfoReader reads health summaries.
type PatientInfoReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.PatientInfo, error) // Returns the newest row or sql.ErrNoRows
}

// UserReader reads user profiles.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error) // Returns the user or sql.ErrNoRows
}

// ServiceLister lists catalog entries.
type ServiceLister interface {
	List(ctx context.Context, limit int) ([]models.Service, error) // Returns up to limit services, all when limit <= 0
}

// PatientService builds the dashboard and the patient summary.
type PatientService struct {
	patientRepo PatientInfoReader
	userRepo    UserReader
	serviceRepo ServiceLister
}

// NewPatientService creates a new PatientService.
func NewPatientService(patientRepo PatientInfoReader, userRepo UserReader, serviceRepo ServiceLister) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
	}
}

// Summary returns the user's newest health summary.
func (s *PatientService) Summary(ctx context.Context, userID string) (*models.PatientSummary, error) {
	info, err := s.patientRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatientInfoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient info: %w", err)
	}

	summary := models.NewPatientSummary(info)
	return &summary, nil
}

// Dashboard loads everything the home page shows. It never fails: a missing
// summary yields the placeholder variant, a failed lookup the unavailable
// variant. Greeting and preview failures are logged and leave those parts
// empty.
func (s *PatientService) Dashboard(ctx context.Context, userID string) *models.Dashboard {
	log := logger.FromContext(ctx)
	dashboard := &models.Dashboard{Services: []models.Service{}}

	info, err := s.patientRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		dashboard.Variant = models.DashboardLive
		dashboard.Summary = models.NewPatientSummary(info)
	case errors.Is(err, sql.ErrNoRows):
		dashboard.Variant = models.DashboardPlaceholder
		dashboard.Summary = models.PlaceholderSummary()
	default:
		log.Errorw("failed to load patient info", "userID", userID, "error", err)
		dashboard.Variant = models.DashboardUnavailable
		dashboard.Summary = models.PlaceholderSummary()
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Warnw("failed to load user profile", "userID", userID, "error", err)
	} else {
		dashboard.User = user
	}

	services, err := s.serviceRepo.List(ctx, PreviewSize)
	if err != nil {
		log.Warnw("failed to load services preview", "error", err)
	} else {
		dashboard.Services = services
	}

	return dashboard
}
