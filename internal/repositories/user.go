package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// UserReadRepository looks up mirrored identity provider users.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the users row with the given ID or sql.ErrNoRows.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	const query = `
		SELECT id, email, full_name, avatar_url, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := read(ctx, r.db, r.txGetter, func(q sqlx.ExtContext) error {
		return sqlx.GetContext(ctx, q, &user, query, id)
	})
	logQuery(ctx, query, []any{id}, user, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}
