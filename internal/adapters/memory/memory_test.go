package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"corengine/internal/domain"
)

func TestLockerSerializesKey(t *testing.T) {
	l := NewLocker()
	ctx := context.Background()

	first, err := l.Obtain(ctx, "audit:1")
	require.NoError(t, err)

	other, err := l.Obtain(ctx, "audit:2")
	require.NoError(t, err, "different keys do not contend")
	require.NoError(t, other.Release(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = l.Obtain(waitCtx, "audit:1")
	require.True(t, errors.Is(err, context.DeadlineExceeded))

	got := make(chan struct{})
	go func() {
		second, err := l.Obtain(ctx, "audit:1")
		if err == nil {
			_ = second.Release(ctx)
		}
		close(got)
	}()
	require.NoError(t, first.Release(ctx))
	require.NoError(t, first.Release(ctx), "release is idempotent")
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("waiter never obtained the released lock")
	}
}

func TestLockerCounter(t *testing.T) {
	l := NewLocker()
	ctx := context.Background()
	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lk, err := l.Obtain(ctx, "k")
			if err != nil {
				return
			}
			counter++
			_ = lk.Release(ctx)
		}()
	}
	wg.Wait()
	require.Equal(t, 50, counter)
}

func TestMutateWritesNothingOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	a := domain.Audit{OrganizationID: "org", AuditNumber: "COR-2026-001", Status: domain.AuditScheduled}
	require.NoError(t, s.CreateAudit(ctx, &a))

	_, err := s.MutateAudit(ctx, "org", a.ID, func(a *domain.Audit) error {
		a.Status = domain.AuditPassed
		return domain.Preconditionf("nope")
	})
	require.Error(t, err)
	got, err := s.GetAudit(ctx, "org", a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AuditScheduled, got.Status)

	_, err = s.GetAudit(ctx, "other", a.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSequenceSeedsFromStoredNumbers(t *testing.T) {
	s := New()
	ctx := context.Background()
	imported := domain.Audit{OrganizationID: "org", AuditNumber: "COR-2026-014"}
	require.NoError(t, s.CreateAudit(ctx, &imported))

	highest, err := s.MaxAuditSequence(ctx, "org", 2026)
	require.NoError(t, err)
	require.Equal(t, 14, highest)

	n, err := s.NextAuditSequence(ctx, "org", 2026)
	require.NoError(t, err)
	require.Equal(t, 15, n)
	n, err = s.NextAuditSequence(ctx, "org", 2027)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCloseOutRollsBackOnMissingAuditor(t *testing.T) {
	s := New()
	ctx := context.Background()
	lead := "gone"
	a := domain.Audit{OrganizationID: "org", Status: domain.AuditInProgress, LeadAuditorID: &lead}
	require.NoError(t, s.CreateAudit(ctx, &a))

	_, err := s.CloseOutAudit(ctx, "org", a.ID, func(a *domain.Audit) error {
		return a.CloseOut(true, time.Now(), nil, "")
	})
	require.True(t, errors.Is(err, domain.ErrNotFound))
	got, err := s.GetAudit(ctx, "org", a.ID)
	require.NoError(t, err)
	require.False(t, got.ClosedOut())
}
