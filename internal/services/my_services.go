package services

//go:generate mockgen -source=my_services.go -destination=my_services_mock_test.go -package=services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// UserServiceReader reads a user's selections.
type UserServiceReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.UserServiceDetails, error) // Returns selections joined with services
}

// MyServicesService lists the services a user selected.
type MyServicesService struct {
	repo UserServiceReader
}

// NewMyServicesService creates a new MyServicesService.
func NewMyServicesService(repo UserServiceReader) *MyServicesService {
	return &MyServicesService{repo: repo}
}

// List returns the user's selections ordered by appointment date.
func (s *MyServicesService) List(ctx context.Context, userID string) ([]models.UserServiceDetails, error) {
	rows, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user services: %w", err)
	}
	return rows, nil
}
