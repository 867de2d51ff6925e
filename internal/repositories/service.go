package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// ServiceReadRepository reads the service catalog.
type ServiceReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewServiceReadRepository(db *sqlx.DB, txGetter TxGetter) *ServiceReadRepository {
	return &ServiceReadRepository{db: db, txGetter: txGetter}
}

// List returns catalog entries in catalog order. A non-positive limit
// returns all of them.
func (r *ServiceReadRepository) List(ctx context.Context, limit int) ([]models.Service, error) {
	// Numeric-looking IDs sort naturally this way.
	const query = `
		SELECT id, title, description, image_url, tag, subtext, show_arrow, created_at
		FROM services
		ORDER BY length(id), id
		LIMIT $1
	`

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	services := []models.Service{}
	err := read(ctx, r.db, r.txGetter, func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &services, query, limitArg)
	})
	logQuery(ctx, query, []any{limitArg}, len(services), err)

	if err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns a catalog entry or sql.ErrNoRows.
func (r *ServiceReadRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	const query = `
		SELECT id, title, description, image_url, tag, subtext, show_arrow, created_at
		FROM services
		WHERE id = $1
	`

	var service models.Service
	err := read(ctx, r.db, r.txGetter, func(q sqlx.ExtContext) error {
		return sqlx.GetContext(ctx, q, &service, query, id)
	})
	logQuery(ctx, query, []any{id}, service.Title, err)

	if err != nil {
		return nil, err
	}
	return &service, nil
}
