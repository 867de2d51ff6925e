package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// UserServiceWriteRepository stores service selections.
type UserServiceWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserServiceWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserServiceWriteRepository {
	return &UserServiceWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores one selection and returns the stored row.
func (r *UserServiceWriteRepository) Insert(
	ctx context.Context,
	userID, serviceID, status string,
	appointmentDate, notes *string,
) (*models.UserService, error) {
	const query = `
		INSERT INTO user_services (id, user_id, service_id, status, appointment_date, notes, selected_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, user_id, service_id, status, appointment_date, notes, selected_at
	`
	args := []any{uuid.New().String(), userID, serviceID, status, appointmentDate, notes}

	var row models.UserService
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(ctx, query, args, row.ID, err)

	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UserServiceReadRepository reads a user's selections.
type UserServiceReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserServiceReadRepository(db *sqlx.DB, txGetter TxGetter) *UserServiceReadRepository {
	return &UserServiceReadRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns the user's selections joined with their services,
// earliest appointment first.
func (r *UserServiceReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.UserServiceDetails, error) {
	const query = `
		SELECT us.id, us.service_id, us.status, us.appointment_date, us.notes,
		       s.id AS "service.id", s.title AS "service.title",
		       s.description AS "service.description",
		       s.image_url AS "service.image_url", s.tag AS "service.tag"
		FROM user_services us
		JOIN services s ON s.id = us.service_id
		WHERE us.user_id = $1
		ORDER BY us.appointment_date ASC NULLS LAST, us.selected_at ASC
	`

	rows := []models.UserServiceDetails{}
	err := read(ctx, r.db, r.txGetter, func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &rows, query, userID)
	})
	logQuery(ctx, query, []any{userID}, len(rows), err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}
