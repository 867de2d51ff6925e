package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// PatientInfoReadRepository reads health summaries.
type PatientInfoReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPatientInfoReadRepository(db *sqlx.DB, txGetter TxGetter) *PatientInfoReadRepository {
	return &PatientInfoReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the newest patient_info row of the user or sql.ErrNoRows.
func (r *PatientInfoReadRepository) GetByUserID(ctx context.Context, userID string) (*models.PatientInfo, error) {
	const query = `
		SELECT id, user_id, biomarkers_tested, biomarkers_in_range, biomarkers_out_range,
		       biological_age, chronological_age, years_difference,
		       doctor_name, doctor_title, doctor_avatar, created_at
		FROM patient_info
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var info models.PatientInfo
	err := read(ctx, r.db, r.txGetter, func(q sqlx.ExtContext) error {
		return sqlx.GetContext(ctx, q, &info, query, userID)
	})
	logQuery(ctx, query, []any{userID}, info.ID, err)

	if err != nil {
		return nil, err
	}
	return &info, nil
}
