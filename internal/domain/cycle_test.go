package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func passedAudit(id string, typ AuditType, completed time.Time) Audit {
	return Audit{ID: id, Type: typ, Status: AuditPassed, CompletedDate: &completed}
}

func TestProjectCycleWithoutCertificate(t *testing.T) {
	now := date(2026, 10, 18)
	st := ProjectCycle(nil, nil, now)
	require.Equal(t, AuditCertification, st.NextAuditType)
	require.Nil(t, st.NextAuditDue)
	require.Nil(t, st.CycleYear)
	require.Nil(t, st.Certificate)
	require.Zero(t, st.TotalAudits)
}

func TestProjectCycleRecertificationYear(t *testing.T) {
	now := date(2026, 10, 18)
	issued := now.AddDate(0, -25, 0)
	cert := &Certificate{OrganizationID: "org-1", CORType: CORTypeOHS, Status: CertificateActive,
		IssueDate: issued, ExpiryDate: ExpiryFor(issued)}
	audits := []Audit{
		passedAudit("a-cert", AuditCertification, issued.AddDate(0, 0, -10)),
		passedAudit("a-maint", AuditMaintenance, now.AddDate(0, -5, 0)),
	}

	st := ProjectCycle(cert, audits, now)
	require.NotNil(t, st.CycleYear)
	require.Equal(t, 2, *st.CycleYear)
	require.Equal(t, AuditRecertification, st.NextAuditType)
	require.Equal(t, cert.ExpiryDate, *st.NextAuditDue)
	require.Equal(t, 1, st.MaintenanceAuditsPassed)
	require.Equal(t, "a-maint", *st.LastPassedAuditID)
	require.Equal(t, 2, st.TotalAudits)
	require.Equal(t, CertificateActive, st.Certificate.CalculatedStatus)
}

func TestProjectCycleMaintenanceDue(t *testing.T) {
	now := date(2026, 10, 18)
	issued := now.AddDate(0, -13, 0)
	cert := &Certificate{Status: CertificateActive, IssueDate: issued, ExpiryDate: ExpiryFor(issued)}
	last := now.AddDate(0, -2, 0)
	audits := []Audit{
		passedAudit("old", AuditCertification, issued),
		passedAudit("recent", AuditMaintenance, last),
		{ID: "failed", Type: AuditMaintenance, Status: AuditFailed, CompletedDate: &now},
		{ID: "open", Type: AuditMaintenance, Status: AuditScheduled},
	}

	st := ProjectCycle(cert, audits, now)
	require.Equal(t, 1, *st.CycleYear)
	require.Equal(t, AuditMaintenance, st.NextAuditType)
	require.Equal(t, last.AddDate(0, 6, 0), *st.NextAuditDue)
	require.Equal(t, "recent", *st.LastPassedAuditID)
	require.Equal(t, 4, st.TotalAudits)
}

func TestProjectCycleMaintenanceWithoutHistory(t *testing.T) {
	now := date(2026, 10, 18)
	issued := now.AddDate(0, -1, 0)
	cert := &Certificate{Status: CertificateActive, IssueDate: issued, ExpiryDate: ExpiryFor(issued)}
	st := ProjectCycle(cert, nil, now)
	require.Equal(t, 0, *st.CycleYear)
	require.Equal(t, AuditMaintenance, st.NextAuditType)
	require.Nil(t, st.NextAuditDue)
}

func TestCycleYear(t *testing.T) {
	issued := date(2024, 1, 1)
	require.Equal(t, 0, CycleYear(issued, issued.AddDate(0, 0, 364)))
	require.Equal(t, 1, CycleYear(issued, issued.AddDate(0, 0, 366)))
	require.Equal(t, 2, CycleYear(issued, issued.AddDate(0, 0, 365*2+1)))
	require.Equal(t, 0, CycleYear(issued, issued.AddDate(0, 0, 365*3+1)), "wraps after three years")
	require.Equal(t, 0, CycleYear(issued, issued.AddDate(0, 0, -30)), "future issue dates clamp to zero")
}
