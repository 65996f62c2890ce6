package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"corengine/internal/domain"
)

const auditorColumns = `id, organization_id, auditor_type, name, email, phone, certification_number,
	certified_date, training_hours, audits_completed, audits_this_certification, recertification_due,
	status, created_at, updated_at`

func scanAuditor(row pgx.Row) (domain.Auditor, error) {
	var a domain.Auditor
	err := row.Scan(&a.ID, &a.OrganizationID, &a.Type, &a.Name, &a.Email, &a.Phone, &a.CertificationNumber,
		&a.CertifiedDate, &a.TrainingHours, &a.AuditsCompleted, &a.AuditsThisCertification,
		&a.RecertificationDue, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, notFound(err)
}

func (db *DB) CreateAuditor(ctx context.Context, a *domain.Auditor) error {
	return db.Pool.QueryRow(ctx, `
        INSERT INTO auditors (organization_id, auditor_type, name, email, phone, certification_number,
            certified_date, training_hours, audits_completed, audits_this_certification, recertification_due,
            status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id
    `, a.OrganizationID, string(a.Type), a.Name, a.Email, a.Phone, a.CertificationNumber,
		a.CertifiedDate, a.TrainingHours, a.AuditsCompleted, a.AuditsThisCertification, a.RecertificationDue,
		string(a.Status), a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
}

func (db *DB) GetAuditor(ctx context.Context, orgID, id string) (domain.Auditor, error) {
	return scanAuditor(db.Pool.QueryRow(ctx,
		`SELECT `+auditorColumns+` FROM auditors WHERE organization_id = $1 AND id = $2`, orgID, id))
}

func (db *DB) ListAuditors(ctx context.Context, orgID string) ([]domain.Auditor, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+auditorColumns+` FROM auditors WHERE organization_id = $1 ORDER BY name`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Auditor{}
	for rows.Next() {
		a, err := scanAuditor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (db *DB) MutateAuditor(ctx context.Context, orgID, id string, fn func(*domain.Auditor) error) (out domain.Auditor, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		a, err := scanAuditor(tx.QueryRow(ctx,
			`SELECT `+auditorColumns+` FROM auditors WHERE organization_id = $1 AND id = $2 FOR UPDATE`, orgID, id))
		if err != nil {
			return err
		}
		if err := fn(&a); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
            UPDATE auditors SET auditor_type = $3, name = $4, email = $5, phone = $6, certification_number = $7,
                certified_date = $8, training_hours = $9, audits_completed = $10,
                audits_this_certification = $11, recertification_due = $12, status = $13, updated_at = $14
            WHERE organization_id = $1 AND id = $2
        `, orgID, id, string(a.Type), a.Name, a.Email, a.Phone, a.CertificationNumber,
			a.CertifiedDate, a.TrainingHours, a.AuditsCompleted, a.AuditsThisCertification,
			a.RecertificationDue, string(a.Status), a.UpdatedAt); err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}
