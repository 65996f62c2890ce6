package postgres

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"corengine/internal/domain"
)

// Run with DATABASE_URL pointing at a disposable database. Every test uses
// a fresh organization id, so runs do not interfere.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if url == "" {
		t.Skip("set DATABASE_URL to run postgres integration tests")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, "up", nil))
	return db
}

func newOrg() string { return "org-" + uuid.NewString() }

func TestAuditSequenceIsAtomic(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	org := newOrg()

	imported := domain.Audit{OrganizationID: org, AuditNumber: "COR-2026-007", Type: domain.AuditCertification,
		Status: domain.AuditScheduled, ScheduledDate: time.Now().UTC(), ElementScores: domain.NewElementScores(),
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, db.CreateAudit(ctx, &imported))

	highest, err := db.MaxAuditSequence(ctx, org, 2026)
	require.NoError(t, err)
	require.Equal(t, 7, highest)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]bool{}
		errs []error
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := db.NextAuditSequence(ctx, org, 2026)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[n] = true
		}()
	}
	wg.Wait()
	require.Empty(t, errs)
	require.Len(t, seen, 20)
	for n := 8; n < 28; n++ {
		require.True(t, seen[n], "sequence %d missing", n)
	}

	n, err := db.NextAuditSequence(ctx, org, 2027)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCloseOutCreditsLeadAuditor(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	org := newOrg()
	now := time.Now().UTC().Truncate(time.Microsecond)

	auditor := domain.Auditor{OrganizationID: org, Type: domain.AuditorInternal, Name: "Lee Park",
		CertificationNumber: "INT-9", CertifiedDate: now, TrainingHours: 20, Status: domain.AuditorActive,
		CreatedAt: now, UpdatedAt: now}
	due := domain.RecertificationDueFor(auditor.CertifiedDate)
	auditor.RecertificationDue = &due
	require.NoError(t, db.CreateAuditor(ctx, &auditor))

	a := domain.Audit{OrganizationID: org, AuditNumber: "COR-2026-001", Type: domain.AuditCertification,
		Status: domain.AuditInProgress, ScheduledDate: now, ElementScores: domain.NewElementScores(),
		LeadAuditorID: &auditor.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.CreateAudit(ctx, &a))

	_, err := db.MutateAudit(ctx, org, a.ID, func(a *domain.Audit) error {
		a.Notes = "discarded"
		return domain.Preconditionf("rejected")
	})
	require.True(t, domain.IsPrecondition(err))
	got, err := db.GetAudit(ctx, org, a.ID)
	require.NoError(t, err)
	require.Empty(t, got.Notes, "a rejected mutation writes nothing")

	closed, err := db.CloseOutAudit(ctx, org, a.ID, func(a *domain.Audit) error {
		return a.CloseOut(true, now, nil, "")
	})
	require.NoError(t, err)
	require.True(t, closed.ClosedOut())

	credited, err := db.GetAuditor(ctx, org, auditor.ID)
	require.NoError(t, err)
	require.Equal(t, 1, credited.AuditsCompleted)

	_, err = db.GetAudit(ctx, newOrg(), a.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestIssueCertificateBackLinksAudit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	org := newOrg()
	now := time.Now().UTC().Truncate(time.Microsecond)

	a := domain.Audit{OrganizationID: org, AuditNumber: "COR-2026-001", Type: domain.AuditCertification,
		Status: domain.AuditPassed, ScheduledDate: now, CompletedDate: &now, ElementScores: domain.NewElementScores(),
		CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.CreateAudit(ctx, &a))

	c := domain.Certificate{OrganizationID: org, CORType: domain.CORTypeOHS,
		IssueDate: now, ExpiryDate: domain.ExpiryFor(now), CertificationAuditID: &a.ID, CreatedAt: now}
	require.NoError(t, db.IssueCertificate(ctx, &c))
	require.NotEmpty(t, c.ID)

	linked, err := db.GetAudit(ctx, org, a.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, *linked.CertificateID)

	again := c
	again.ID = ""
	err = db.IssueCertificate(ctx, &again)
	require.True(t, domain.IsPrecondition(err), "an audit backs one certificate")

	latest, found, err := db.LatestCertificate(ctx, org, domain.CORTypeOHS)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, c.ID, latest.ID)

	require.Empty(t, latest.Status, "an unrevoked certificate stores no status")

	_, found, err = db.LatestCertificate(ctx, org, domain.CORTypeRTW)
	require.NoError(t, err)
	require.False(t, found)

	revoked, err := db.MutateCertificate(ctx, org, c.ID, func(c *domain.Certificate) error {
		return c.Revoke("fraud", now)
	})
	require.NoError(t, err)
	require.Equal(t, domain.CertificateRevoked, revoked.Status)
	_, found, err = db.LatestCertificate(ctx, org, domain.CORTypeOHS)
	require.NoError(t, err)
	require.False(t, found, "revoked certificates are skipped")
}
