package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"corengine/internal/domain"
	"corengine/internal/ports"
)

const deficiencyColumns = `id, audit_id, organization_id, element_id, severity, description, corrective_action,
	assigned_to, status, created_at, due_date, closed_at, closed_by, closure_notes, verified_by`

func scanDeficiency(row pgx.Row) (domain.Deficiency, error) {
	var (
		d       domain.Deficiency
		element *int
	)
	err := row.Scan(&d.ID, &d.AuditID, &d.OrganizationID, &element, &d.Severity, &d.Description, &d.CorrectiveAction,
		&d.AssignedTo, &d.Status, &d.CreatedAt, &d.DueDate, &d.ClosedAt, &d.ClosedBy, &d.ClosureNotes, &d.VerifiedBy)
	if element != nil {
		id := domain.ElementID(*element)
		d.Element = &id
	}
	return d, notFound(err)
}

func elementParam(id *domain.ElementID) *int {
	if id == nil {
		return nil
	}
	v := int(*id)
	return &v
}

func (db *DB) CreateDeficiency(ctx context.Context, d *domain.Deficiency) error {
	return db.Pool.QueryRow(ctx, `
        INSERT INTO deficiencies (audit_id, organization_id, element_id, severity, description,
            corrective_action, assigned_to, status, created_at, due_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, d.AuditID, d.OrganizationID, elementParam(d.Element), string(d.Severity), d.Description,
		d.CorrectiveAction, d.AssignedTo, string(d.Status), d.CreatedAt, d.DueDate).Scan(&d.ID)
}

func (db *DB) GetDeficiency(ctx context.Context, orgID, id string) (domain.Deficiency, error) {
	return scanDeficiency(db.Pool.QueryRow(ctx,
		`SELECT `+deficiencyColumns+` FROM deficiencies WHERE organization_id = $1 AND id = $2`, orgID, id))
}

func (db *DB) ListDeficiencies(ctx context.Context, orgID string, f ports.DeficiencyFilter) ([]domain.Deficiency, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+deficiencyColumns+` FROM deficiencies
        WHERE organization_id = $1
          AND ($2 = '' OR status = $2)
          AND ($3 = '' OR audit_id = $3)
        ORDER BY due_date ASC, created_at ASC
    `, orgID, string(f.Status), f.AuditID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Deficiency{}
	for rows.Next() {
		d, err := scanDeficiency(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) MutateDeficiency(ctx context.Context, orgID, id string, fn func(*domain.Deficiency) error) (out domain.Deficiency, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		d, err := scanDeficiency(tx.QueryRow(ctx,
			`SELECT `+deficiencyColumns+` FROM deficiencies WHERE organization_id = $1 AND id = $2 FOR UPDATE`, orgID, id))
		if err != nil {
			return err
		}
		if err := fn(&d); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
            UPDATE deficiencies SET severity = $3, description = $4, corrective_action = $5, assigned_to = $6,
                status = $7, due_date = $8, closed_at = $9, closed_by = $10, closure_notes = $11, verified_by = $12
            WHERE organization_id = $1 AND id = $2
        `, orgID, id, string(d.Severity), d.Description, d.CorrectiveAction, d.AssignedTo,
			string(d.Status), d.DueDate, d.ClosedAt, d.ClosedBy, d.ClosureNotes, d.VerifiedBy); err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}
