package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// ServiceCatalogReader reads the whole catalog.
type ServiceCatalogReader interface {
	ServiceLister
	ServiceReader
}

// CatalogService serves the catalog pages.
type CatalogService struct {
	repo ServiceCatalogReader
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo ServiceCatalogReader) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns every service in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// Get returns one service or ErrServiceNotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", id, err)
	}
	return service, nil
}
