package ports

import (
	"context"

	"corengine/internal/domain"
)

// Audits schedules, scores and closes out audits.
type Audits interface {
	Schedule(ctx context.Context, orgID string, in ScheduleAudit) (domain.Audit, error)
	UpdateElementScores(ctx context.Context, orgID, id string, in UpdateElementScores) (domain.Audit, error)
	Complete(ctx context.Context, orgID, id string, in CompleteAudit) (domain.Audit, error)
	UpdateDetails(ctx context.Context, orgID, id string, in UpdateAuditDetails) (domain.Audit, error)
	Get(ctx context.Context, orgID, id string) (domain.Audit, error)
	List(ctx context.Context, orgID string, f AuditFilter) ([]domain.Audit, error)
}

// Certificates issues and revokes COR certificates.
type Certificates interface {
	Issue(ctx context.Context, orgID string, in IssueCertificate) (domain.CertificateView, error)
	Revoke(ctx context.Context, orgID, id, reason string) (domain.CertificateView, error)
	Get(ctx context.Context, orgID, id string) (domain.CertificateView, error)
	List(ctx context.Context, orgID string) ([]domain.CertificateView, error)
	GetActive(ctx context.Context, orgID string, t domain.CORType) (domain.CertificateView, error)
}

// Auditors maintains the auditor registry.
type Auditors interface {
	Register(ctx context.Context, orgID string, in RegisterAuditor) (domain.AuditorView, error)
	Update(ctx context.Context, orgID, id string, in UpdateAuditor) (domain.AuditorView, error)
	RecordAudit(ctx context.Context, orgID, id string) (domain.AuditorView, error)
	Get(ctx context.Context, orgID, id string) (domain.AuditorView, error)
	List(ctx context.Context, orgID string) ([]domain.AuditorView, error)
}

// Deficiencies tracks audit findings through remediation.
type Deficiencies interface {
	Open(ctx context.Context, orgID string, in OpenDeficiency) (domain.DeficiencyView, error)
	Update(ctx context.Context, orgID, id string, in UpdateDeficiency) (domain.DeficiencyView, error)
	Close(ctx context.Context, orgID, id string, in CloseDeficiency) (domain.DeficiencyView, error)
	Get(ctx context.Context, orgID, id string) (domain.DeficiencyView, error)
	List(ctx context.Context, orgID string, f DeficiencyFilter) ([]domain.DeficiencyView, error)
	ListOpen(ctx context.Context, orgID string) ([]domain.DeficiencyView, error)
}

// Cycle projects the COR audit cycle.
type Cycle interface {
	Project(ctx context.Context, orgID string, t domain.CORType) (domain.CycleStatus, error)
	Readiness(ctx context.Context, orgID string) (domain.Readiness, error)
}
