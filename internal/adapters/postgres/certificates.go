package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"corengine/internal/domain"
)

const certificateColumns = `id, organization_id, cor_type, status, issue_date, expiry_date,
	certification_audit_id, revocation_reason, revoked_at, created_at`

func scanCertificate(row pgx.Row) (domain.Certificate, error) {
	var (
		c      domain.Certificate
		status *string
	)
	err := row.Scan(&c.ID, &c.OrganizationID, &c.CORType, &status, &c.IssueDate, &c.ExpiryDate,
		&c.CertificationAuditID, &c.RevocationReason, &c.RevokedAt, &c.CreatedAt)
	if status != nil {
		c.Status = domain.CertificateStatusValue(*status)
	}
	return c, notFound(err)
}

// storedStatus maps the in-memory status to its column value. Only a
// revocation is persisted; every other status is NULL and derived on read.
func storedStatus(c domain.Certificate) *string {
	if c.Status != domain.CertificateRevoked {
		return nil
	}
	s := string(c.Status)
	return &s
}

// IssueCertificate inserts c and, when it names an originating audit, locks
// and checks that audit and back-links it, all in one transaction.
func (db *DB) IssueCertificate(ctx context.Context, c *domain.Certificate) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		if c.CertificationAuditID != nil {
			a, err := lockAudit(ctx, tx, c.OrganizationID, *c.CertificationAuditID)
			if err != nil {
				return err
			}
			if err := domain.CheckIssuingAudit(a); err != nil {
				return err
			}
		}
		err := tx.QueryRow(ctx, `
            INSERT INTO certificates (organization_id, cor_type, status, issue_date, expiry_date,
                certification_audit_id, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id
        `, c.OrganizationID, string(c.CORType), storedStatus(*c), c.IssueDate, c.ExpiryDate,
			c.CertificationAuditID, c.CreatedAt).Scan(&c.ID)
		if err != nil {
			return err
		}
		if c.CertificationAuditID == nil {
			return nil
		}
		_, err = tx.Exec(ctx, `
            UPDATE audits SET certificate_id = $3, updated_at = $4
            WHERE organization_id = $1 AND id = $2
        `, c.OrganizationID, *c.CertificationAuditID, c.ID, c.CreatedAt)
		return err
	})
}

func (db *DB) GetCertificate(ctx context.Context, orgID, id string) (domain.Certificate, error) {
	return scanCertificate(db.Pool.QueryRow(ctx,
		`SELECT `+certificateColumns+` FROM certificates WHERE organization_id = $1 AND id = $2`, orgID, id))
}

func (db *DB) ListCertificates(ctx context.Context, orgID string) ([]domain.Certificate, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+certificateColumns+` FROM certificates
        WHERE organization_id = $1
        ORDER BY issue_date DESC
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Certificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (db *DB) LatestCertificate(ctx context.Context, orgID string, t domain.CORType) (domain.Certificate, bool, error) {
	c, err := scanCertificate(db.Pool.QueryRow(ctx, `
        SELECT `+certificateColumns+` FROM certificates
        WHERE organization_id = $1 AND cor_type = $2 AND status IS NULL
        ORDER BY issue_date DESC
        LIMIT 1
    `, orgID, string(t)))
	if errors.Is(err, domain.ErrNotFound) {
		return c, false, nil
	}
	if err != nil {
		return c, false, err
	}
	return c, true, nil
}

func (db *DB) MutateCertificate(ctx context.Context, orgID, id string, fn func(*domain.Certificate) error) (out domain.Certificate, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		c, err := scanCertificate(tx.QueryRow(ctx,
			`SELECT `+certificateColumns+` FROM certificates WHERE organization_id = $1 AND id = $2 FOR UPDATE`, orgID, id))
		if err != nil {
			return err
		}
		if err := fn(&c); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
            UPDATE certificates SET status = $3, revocation_reason = $4, revoked_at = $5
            WHERE organization_id = $1 AND id = $2
        `, orgID, id, storedStatus(c), c.RevocationReason, c.RevokedAt); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}
