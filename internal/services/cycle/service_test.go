package cycle

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
)

const org = "org-1"

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type staticContributor struct {
	name   string
	weight float64
	score  float64
	err    error
}

func (c staticContributor) Name() string    { return c.name }
func (c staticContributor) Weight() float64 { return c.weight }
func (c staticContributor) Score(context.Context, string) (float64, string, error) {
	return c.score, "", c.err
}

func seedAudit(t *testing.T, store *memory.Store, typ domain.AuditType, completed time.Time) domain.Audit {
	t.Helper()
	a := domain.Audit{OrganizationID: org, Type: typ, Status: domain.AuditPassed,
		ScheduledDate: completed, CompletedDate: &completed, ElementScores: domain.NewElementScores()}
	require.NoError(t, store.CreateAudit(context.Background(), &a))
	return a
}

func TestProjectRecertificationYear(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := memory.New()
	clock := clockwork.NewFakeClockAt(now)
	ctx := context.Background()

	issued := now.AddDate(0, -25, 0)
	cert := domain.Certificate{OrganizationID: org, CORType: domain.CORTypeOHS, Status: domain.CertificateActive,
		IssueDate: issued, ExpiryDate: domain.ExpiryFor(issued)}
	require.NoError(t, store.IssueCertificate(ctx, &cert))
	seedAudit(t, store, domain.AuditCertification, issued.AddDate(0, 0, -14))
	maint := seedAudit(t, store, domain.AuditMaintenance, now.AddDate(0, -5, 0))

	svc := New(store, store, clock, log)
	st, err := svc.Project(ctx, org, domain.CORTypeOHS)
	require.NoError(t, err)
	require.Equal(t, 2, *st.CycleYear)
	require.Equal(t, domain.AuditRecertification, st.NextAuditType)
	require.Equal(t, cert.ExpiryDate, *st.NextAuditDue)
	require.Equal(t, maint.ID, *st.LastPassedAuditID)
	require.Equal(t, 1, st.MaintenanceAuditsPassed)
	require.Equal(t, cert.ID, st.Certificate.ID)

	rtw, err := svc.Project(ctx, org, domain.CORTypeRTW)
	require.NoError(t, err)
	require.Equal(t, domain.AuditCertification, rtw.NextAuditType, "no RTW certificate yet")
	require.Equal(t, org, rtw.OrganizationID)
	require.Equal(t, domain.CORTypeRTW, rtw.CORType)

	_, err = svc.Project(ctx, org, "SECOR")
	require.True(t, domain.IsPrecondition(err))
}

func TestProjectIgnoresRevokedCertificate(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := memory.New()
	ctx := context.Background()
	issued := now.AddDate(-1, 0, 0)
	cert := domain.Certificate{OrganizationID: org, CORType: domain.CORTypeOHS, Status: domain.CertificateRevoked,
		IssueDate: issued, ExpiryDate: domain.ExpiryFor(issued)}
	require.NoError(t, store.IssueCertificate(ctx, &cert))

	st, err := New(store, store, clockwork.NewFakeClockAt(now), log).Project(ctx, org, domain.CORTypeOHS)
	require.NoError(t, err)
	require.Nil(t, st.Certificate)
	require.Equal(t, domain.AuditCertification, st.NextAuditType)
}

func TestReadinessWithoutContributors(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := memory.New()
	rd, err := New(store, store, clockwork.NewFakeClockAt(now), log).Readiness(context.Background(), org)
	require.NoError(t, err)
	require.Equal(t, org, rd.OrganizationID)
	require.Zero(t, rd.Score)
	require.NotNil(t, rd.Components)
	require.Empty(t, rd.Components)
}

func TestReadinessWeightsContributors(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := memory.New()
	svc := New(store, store, clockwork.NewFakeClockAt(now), log,
		staticContributor{name: "training", weight: 3, score: 100},
		staticContributor{name: "jhsc", weight: 1, score: 60},
	)
	rd, err := svc.Readiness(context.Background(), org)
	require.NoError(t, err)
	require.Equal(t, 90.0, rd.Score)
	require.Len(t, rd.Components, 2)
	require.Equal(t, "training", rd.Components[0].Name)

	failing := New(store, store, clockwork.NewFakeClockAt(now), log,
		staticContributor{name: "incidents", weight: 1, err: errors.New("upstream down")})
	_, err = failing.Readiness(context.Background(), org)
	require.ErrorContains(t, err, "incidents")
}

func TestRemediationContributor(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := memory.New()
	clock := clockwork.NewFakeClockAt(now)
	ctx := context.Background()
	contrib := RemediationContributor{Deficiencies: store, Clock: clock}

	score, notes, err := contrib.Score(ctx, org)
	require.NoError(t, err)
	require.Equal(t, 100.0, score)
	require.Equal(t, "no open deficiencies", notes)

	for i, due := range []time.Time{now.AddDate(0, 0, -3), now.AddDate(0, 0, 4), now.AddDate(0, 0, 10), now.AddDate(0, 0, 20)} {
		d := domain.Deficiency{OrganizationID: org, AuditID: "a", Severity: domain.SeverityMinor,
			Description: "finding", Status: domain.DeficiencyOpen, CreatedAt: now.AddDate(0, 0, -i), DueDate: due}
		require.NoError(t, store.CreateDeficiency(ctx, &d))
	}
	closed := domain.Deficiency{OrganizationID: org, Status: domain.DeficiencyClosed, DueDate: now.AddDate(0, 0, -40)}
	require.NoError(t, store.CreateDeficiency(ctx, &closed))

	score, notes, err = contrib.Score(ctx, org)
	require.NoError(t, err)
	require.Equal(t, 75.0, score)
	require.Equal(t, "1 of 4 open deficiencies overdue", notes)

	rd, err := New(store, store, clock, log, contrib).Readiness(ctx, org)
	require.NoError(t, err)
	require.Equal(t, 75.0, rd.Score)
	require.Equal(t, "deficiency_remediation", rd.Components[0].Name)
}
