package certificates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"corengine/internal/adapters/memory"
	"corengine/internal/domain"
	"corengine/internal/ports"
	"corengine/internal/services/audits"
)

const org = "org-1"

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func setup(t *testing.T) (*Service, *audits.Service, *memory.Store, *clockwork.FakeClock) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := memory.New()
	clock := clockwork.NewFakeClockAt(day(2026, 3, 1))
	return New(store, clock, log), audits.New(store, store, store, memory.NewLocker(), clock, log), store, clock
}

func TestIssueSetsThreeYearExpiry(t *testing.T) {
	svc, _, store, clock := setup(t)
	ctx := context.Background()

	c, err := svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS})
	require.NoError(t, err)
	require.Equal(t, clock.Now(), c.IssueDate)
	require.Equal(t, day(2029, 3, 1), c.ExpiryDate)
	require.Empty(t, c.Status, "only a revocation is stored")
	stored, err := store.GetCertificate(ctx, org, c.ID)
	require.NoError(t, err)
	require.Empty(t, stored.Status)
	require.Equal(t, domain.CertificateActive, c.CalculatedStatus)

	issued := day(2023, 12, 1)
	old, err := svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeRTW, IssueDate: &issued})
	require.NoError(t, err)
	require.Equal(t, day(2026, 12, 1), old.ExpiryDate)
	require.Equal(t, domain.CertificateActive, old.CalculatedStatus)

	clock.Advance(200 * 24 * time.Hour)
	got, err := svc.Get(ctx, org, old.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CertificateExpiring, got.CalculatedStatus, "status is derived on every read")

	clock.Advance(100 * 24 * time.Hour)
	got, err = svc.Get(ctx, org, old.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CertificateExpired, got.CalculatedStatus)
	require.Empty(t, got.Status, "expiry is never stored")
}

func TestIssueValidatesInput(t *testing.T) {
	svc, _, _, _ := setup(t)
	_, err := svc.Issue(context.Background(), org, ports.IssueCertificate{CORType: "SECOR"})
	require.True(t, domain.IsPrecondition(err))

	missing := "no-such-audit"
	_, err = svc.Issue(context.Background(), org, ports.IssueCertificate{CORType: domain.CORTypeOHS, CertificationAuditID: &missing})
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestIssueRequiresPassedCertificationAudit(t *testing.T) {
	svc, auditSvc, _, _ := setup(t)
	ctx := context.Background()

	maint, err := auditSvc.Schedule(ctx, org, ports.ScheduleAudit{Type: domain.AuditMaintenance, ScheduledDate: day(2026, 2, 1)})
	require.NoError(t, err)
	_, err = svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS, CertificationAuditID: &maint.ID})
	require.True(t, domain.IsPrecondition(err))

	cert, err := auditSvc.Schedule(ctx, org, ports.ScheduleAudit{Type: domain.AuditCertification, ScheduledDate: day(2026, 2, 1)})
	require.NoError(t, err)
	_, err = svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS, CertificationAuditID: &cert.ID})
	require.True(t, domain.IsPrecondition(err), "a scheduled audit cannot issue")

	list, err := svc.List(ctx, org)
	require.NoError(t, err)
	require.Empty(t, list, "rejected issues write nothing")
}

func TestRevoke(t *testing.T) {
	svc, _, _, _ := setup(t)
	ctx := context.Background()
	c, err := svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS})
	require.NoError(t, err)

	_, err = svc.Revoke(ctx, org, c.ID, "")
	require.True(t, domain.IsPrecondition(err))

	r, err := svc.Revoke(ctx, org, c.ID, "falsified inspection records")
	require.NoError(t, err)
	require.Equal(t, domain.CertificateRevoked, r.CalculatedStatus)
	require.Equal(t, "falsified inspection records", *r.RevocationReason)

	_, err = svc.Revoke(ctx, org, c.ID, "again")
	require.True(t, domain.IsPrecondition(err))

	_, err = svc.GetActive(ctx, org, domain.CORTypeOHS)
	require.True(t, errors.Is(err, domain.ErrNotFound), "revoked certificates are never active")

	_, err = svc.Revoke(ctx, "org-2", c.ID, "wrong tenant")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetActivePicksLatestOfType(t *testing.T) {
	svc, _, _, _ := setup(t)
	ctx := context.Background()
	first, second := day(2020, 1, 1), day(2023, 1, 1)
	_, err := svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS, IssueDate: &first})
	require.NoError(t, err)
	latest, err := svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS, IssueDate: &second})
	require.NoError(t, err)
	_, err = svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeRTW})
	require.NoError(t, err)

	got, err := svc.GetActive(ctx, org, domain.CORTypeOHS)
	require.NoError(t, err)
	require.Equal(t, latest.ID, got.ID)

	_, err = svc.GetActive(ctx, org, "XYZ")
	require.True(t, domain.IsPrecondition(err))

	list, err := svc.List(ctx, org)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, domain.CertificateExpired, list[2].CalculatedStatus)
}

func TestCertificationEndToEnd(t *testing.T) {
	svc, auditSvc, _, clock := setup(t)
	ctx := context.Background()

	a, err := auditSvc.Schedule(ctx, org, ports.ScheduleAudit{Type: domain.AuditCertification, ScheduledDate: day(2026, 3, 10)})
	require.NoError(t, err)

	var in ports.UpdateElementScores
	for i, e := range domain.Elements() {
		v := 80 + float64(i)
		in.Scores = append(in.Scores, ports.ElementScoreInput{Element: e.ID, Documentation: &v, Interview: &v, Observation: &v})
	}
	clock.Advance(10 * 24 * time.Hour)
	scored, err := auditSvc.UpdateElementScores(ctx, org, a.ID, in)
	require.NoError(t, err)
	require.Equal(t, domain.AuditPassed, scored.Status)

	passed := true
	done, err := auditSvc.Complete(ctx, org, a.ID, ports.CompleteAudit{Passed: &passed})
	require.NoError(t, err)
	require.Equal(t, domain.AuditPassed, done.Status)
	require.NotNil(t, done.CompletedDate)

	c, err := svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS, CertificationAuditID: &a.ID})
	require.NoError(t, err)
	require.Equal(t, domain.CertificateActive, c.CalculatedStatus)
	require.Equal(t, a.ID, *c.CertificationAuditID)

	linked, err := auditSvc.Get(ctx, org, a.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, *linked.CertificateID)

	_, err = svc.Issue(ctx, org, ports.IssueCertificate{CORType: domain.CORTypeOHS, CertificationAuditID: &a.ID})
	require.True(t, domain.IsPrecondition(err), "an audit issues at most one certificate")
}
