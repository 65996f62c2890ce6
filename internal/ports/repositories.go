package ports

import (
	"context"

	"corengine/internal/domain"
)

// Every repository call is scoped by organization id. A record that exists
// under another organization is reported as domain.ErrNotFound.
//
// Mutate* methods load the record, apply fn and persist the result in one
// transaction. If fn returns an error nothing is written.

type AuditFilter struct {
	Type   domain.AuditType
	Status domain.AuditStatus
}

// AuditRepository stores audits with their embedded element scores.
type AuditRepository interface {
	CreateAudit(ctx context.Context, a *domain.Audit) error
	GetAudit(ctx context.Context, orgID, id string) (domain.Audit, error)
	// ListAudits orders by scheduled date, newest first.
	ListAudits(ctx context.Context, orgID string, f AuditFilter) ([]domain.Audit, error)
	MutateAudit(ctx context.Context, orgID, id string, fn func(*domain.Audit) error) (domain.Audit, error)
	// CloseOutAudit is MutateAudit that also credits the audit's lead auditor,
	// if any, with one completed audit in the same transaction.
	CloseOutAudit(ctx context.Context, orgID, id string, fn func(*domain.Audit) error) (domain.Audit, error)
}

// SequenceAllocator hands out audit-number sequences atomically per
// (organization, year). The first sequence of a year is 1.
type SequenceAllocator interface {
	NextAuditSequence(ctx context.Context, orgID string, year int) (int, error)
}

// CertificateRepository stores issued certificates.
type CertificateRepository interface {
	// IssueCertificate inserts c. When c.CertificationAuditID is set, the
	// audit is checked with domain.CheckIssuingAudit and back-linked in the
	// same transaction.
	IssueCertificate(ctx context.Context, c *domain.Certificate) error
	GetCertificate(ctx context.Context, orgID, id string) (domain.Certificate, error)
	// ListCertificates orders by issue date, newest first.
	ListCertificates(ctx context.Context, orgID string) ([]domain.Certificate, error)
	// LatestCertificate returns the most recently issued certificate of the
	// type whose stored status is not revoked.
	LatestCertificate(ctx context.Context, orgID string, t domain.CORType) (c domain.Certificate, found bool, err error)
	MutateCertificate(ctx context.Context, orgID, id string, fn func(*domain.Certificate) error) (domain.Certificate, error)
}

// AuditorRepository stores auditors.
type AuditorRepository interface {
	CreateAuditor(ctx context.Context, a *domain.Auditor) error
	GetAuditor(ctx context.Context, orgID, id string) (domain.Auditor, error)
	// ListAuditors orders by name.
	ListAuditors(ctx context.Context, orgID string) ([]domain.Auditor, error)
	MutateAuditor(ctx context.Context, orgID, id string, fn func(*domain.Auditor) error) (domain.Auditor, error)
}

type DeficiencyFilter struct {
	Status  domain.DeficiencyStatus
	AuditID string
}

// DeficiencyRepository stores audit findings.
type DeficiencyRepository interface {
	CreateDeficiency(ctx context.Context, d *domain.Deficiency) error
	GetDeficiency(ctx context.Context, orgID, id string) (domain.Deficiency, error)
	// ListDeficiencies orders by due date, earliest first.
	ListDeficiencies(ctx context.Context, orgID string, f DeficiencyFilter) ([]domain.Deficiency, error)
	MutateDeficiency(ctx context.Context, orgID, id string, fn func(*domain.Deficiency) error) (domain.Deficiency, error)
}

// Store is the full persistence surface one adapter provides.
type Store interface {
	AuditRepository
	SequenceAllocator
	CertificateRepository
	AuditorRepository
	DeficiencyRepository
}
