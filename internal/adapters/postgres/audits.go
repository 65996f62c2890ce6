package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"corengine/internal/domain"
	"corengine/internal/ports"
)

const auditColumns = `id, organization_id, audit_number, audit_type, status, scheduled_date,
	completed_date, overall_score, element_scores, notes, certificate_id, lead_auditor_id,
	created_at, updated_at`

func scanAudit(row pgx.Row) (domain.Audit, error) {
	var a domain.Audit
	err := row.Scan(&a.ID, &a.OrganizationID, &a.AuditNumber, &a.Type, &a.Status, &a.ScheduledDate,
		&a.CompletedDate, &a.OverallScore, &a.ElementScores, &a.Notes, &a.CertificateID, &a.LeadAuditorID,
		&a.CreatedAt, &a.UpdatedAt)
	return a, notFound(err)
}

func (db *DB) CreateAudit(ctx context.Context, a *domain.Audit) error {
	return db.Pool.QueryRow(ctx, `
        INSERT INTO audits (organization_id, audit_number, audit_type, status, scheduled_date,
            element_scores, notes, lead_auditor_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, a.OrganizationID, a.AuditNumber, string(a.Type), string(a.Status), a.ScheduledDate,
		a.ElementScores, a.Notes, a.LeadAuditorID, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
}

func (db *DB) GetAudit(ctx context.Context, orgID, id string) (domain.Audit, error) {
	return scanAudit(db.Pool.QueryRow(ctx,
		`SELECT `+auditColumns+` FROM audits WHERE organization_id = $1 AND id = $2`, orgID, id))
}

func (db *DB) ListAudits(ctx context.Context, orgID string, f ports.AuditFilter) ([]domain.Audit, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+auditColumns+` FROM audits
        WHERE organization_id = $1
          AND ($2 = '' OR audit_type = $2)
          AND ($3 = '' OR status = $3)
        ORDER BY scheduled_date DESC, audit_number DESC
    `, orgID, string(f.Type), string(f.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Audit{}
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (db *DB) MutateAudit(ctx context.Context, orgID, id string, fn func(*domain.Audit) error) (out domain.Audit, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		a, err := lockAudit(ctx, tx, orgID, id)
		if err != nil {
			return err
		}
		if err := fn(&a); err != nil {
			return err
		}
		if err := saveAudit(ctx, tx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

func (db *DB) CloseOutAudit(ctx context.Context, orgID, id string, fn func(*domain.Audit) error) (out domain.Audit, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		a, err := lockAudit(ctx, tx, orgID, id)
		if err != nil {
			return err
		}
		if err := fn(&a); err != nil {
			return err
		}
		if err := saveAudit(ctx, tx, a); err != nil {
			return err
		}
		if a.LeadAuditorID != nil {
			tag, err := tx.Exec(ctx, `
                UPDATE auditors SET audits_completed = audits_completed + 1,
                    audits_this_certification = audits_this_certification + 1, updated_at = $3
                WHERE organization_id = $1 AND id = $2
            `, orgID, *a.LeadAuditorID, a.UpdatedAt)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("lead auditor %s: %w", *a.LeadAuditorID, domain.ErrNotFound)
			}
		}
		out = a
		return nil
	})
	return out, err
}

func lockAudit(ctx context.Context, tx pgx.Tx, orgID, id string) (domain.Audit, error) {
	return scanAudit(tx.QueryRow(ctx,
		`SELECT `+auditColumns+` FROM audits WHERE organization_id = $1 AND id = $2 FOR UPDATE`, orgID, id))
}

func saveAudit(ctx context.Context, tx pgx.Tx, a domain.Audit) error {
	_, err := tx.Exec(ctx, `
        UPDATE audits SET status = $3, scheduled_date = $4, completed_date = $5, overall_score = $6,
            element_scores = $7, notes = $8, certificate_id = $9, lead_auditor_id = $10, updated_at = $11
        WHERE organization_id = $1 AND id = $2
    `, a.OrganizationID, a.ID, string(a.Status), a.ScheduledDate, a.CompletedDate, a.OverallScore,
		a.ElementScores, a.Notes, a.CertificateID, a.LeadAuditorID, a.UpdatedAt)
	return err
}

// NextAuditSequence bumps the (org, year) counter in one statement. A new
// counter starts after the highest audit number already stored for the year.
func (db *DB) NextAuditSequence(ctx context.Context, orgID string, year int) (int, error) {
	var seq int
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO audit_sequences (organization_id, year, last_seq)
        VALUES ($1, $2, (
            SELECT COALESCE(MAX(split_part(audit_number, '-', 3)::int), 0) + 1
            FROM audits WHERE organization_id = $1 AND audit_number LIKE $3
        ))
        ON CONFLICT (organization_id, year) DO UPDATE SET last_seq = audit_sequences.last_seq + 1
        RETURNING last_seq
    `, orgID, year, fmt.Sprintf("COR-%d-%%", year)).Scan(&seq)
	return seq, err
}

// MaxAuditSequence returns the highest stored sequence for (org, year).
func (db *DB) MaxAuditSequence(ctx context.Context, orgID string, year int) (int, error) {
	var seq int
	err := db.Pool.QueryRow(ctx, `
        SELECT COALESCE(MAX(split_part(audit_number, '-', 3)::int), 0)
        FROM audits WHERE organization_id = $1 AND audit_number LIKE $2
    `, orgID, fmt.Sprintf("COR-%d-%%", year)).Scan(&seq)
	return seq, err
}
