package auditors

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
)

const org = "org-1"

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func setup(t *testing.T) (*Service, *clockwork.FakeClock) {
	t.Helper()
	log, _ := test.NewNullLogger()
	clock := clockwork.NewFakeClockAt(day(2026, 3, 1))
	return New(memory.New(), clock, log), clock
}

func register(hours float64, typ domain.AuditorType) ports.RegisterAuditor {
	return ports.RegisterAuditor{
		Type:                typ,
		Name:                "Dana Whitfield",
		Email:               "dana@example.com",
		CertificationNumber: "AUD-4471",
		CertifiedDate:       day(2025, 6, 1),
		TrainingHours:       hours,
	}
}

func TestRegisterEnforcesTrainingMinimum(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, org, register(10, domain.AuditorInternal))
	var pe *domain.PreconditionError
	require.True(t, errors.As(err, &pe))
	require.NotNil(t, pe.Minimum)
	require.Equal(t, 14.0, *pe.Minimum)

	a, err := svc.Register(ctx, org, register(14, domain.AuditorInternal))
	require.NoError(t, err)
	require.Equal(t, day(2028, 6, 1), *a.RecertificationDue)
	require.Equal(t, domain.AuditorActive, a.CalculatedStatus)
	require.Equal(t, 14.0, a.MinTrainingHours)
	require.False(t, a.MeetsPracticeMinimum)

	_, err = svc.Register(ctx, org, register(20, domain.AuditorExternal))
	require.True(t, domain.IsPrecondition(err), "external auditors need 35 hours")

	_, err = svc.Register(ctx, org, register(35, domain.AuditorExternal))
	require.NoError(t, err)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := setup(t)
	in := register(20, domain.AuditorInternal)
	in.Email = "not-an-email"
	_, err := svc.Register(context.Background(), org, in)
	require.True(t, domain.IsPrecondition(err))
	require.Contains(t, err.Error(), "email")

	in = register(20, domain.AuditorInternal)
	in.Name = ""
	_, err = svc.Register(context.Background(), org, in)
	require.True(t, domain.IsPrecondition(err))
}

func TestUpdateRechecksTraining(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	a, err := svc.Register(ctx, org, register(20, domain.AuditorInternal))
	require.NoError(t, err)

	external := domain.AuditorExternal
	_, err = svc.Update(ctx, org, a.ID, ports.UpdateAuditor{Type: &external})
	require.True(t, domain.IsPrecondition(err), "20 hours is not enough for an external auditor")

	hours := 40.0
	up, err := svc.Update(ctx, org, a.ID, ports.UpdateAuditor{Type: &external, TrainingHours: &hours})
	require.NoError(t, err)
	require.Equal(t, domain.AuditorExternal, up.Type)
	require.Equal(t, 35.0, up.MinTrainingHours)

	recertified := day(2026, 2, 1)
	up, err = svc.Update(ctx, org, a.ID, ports.UpdateAuditor{CertifiedDate: &recertified})
	require.NoError(t, err)
	require.Equal(t, day(2029, 2, 1), *up.RecertificationDue)

	inactive := domain.AuditorInactive
	up, err = svc.Update(ctx, org, a.ID, ports.UpdateAuditor{Status: &inactive})
	require.NoError(t, err)
	require.Equal(t, domain.AuditorInactive, up.CalculatedStatus)

	_, err = svc.Update(ctx, org, "missing", ports.UpdateAuditor{Status: &inactive})
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDerivedStatusExpires(t *testing.T) {
	svc, clock := setup(t)
	ctx := context.Background()
	a, err := svc.Register(ctx, org, register(20, domain.AuditorInternal))
	require.NoError(t, err)

	clock.Advance(3 * 366 * 24 * time.Hour)
	got, err := svc.Get(ctx, org, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AuditorExpired, got.CalculatedStatus)
	require.Equal(t, domain.AuditorActive, got.Status)
}

func TestRecordAudit(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	a, err := svc.Register(ctx, org, register(20, domain.AuditorInternal))
	require.NoError(t, err)

	_, err = svc.RecordAudit(ctx, org, a.ID)
	require.NoError(t, err)
	got, err := svc.RecordAudit(ctx, org, a.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AuditsCompleted)
	require.Equal(t, 2, got.AuditsThisCertification)
	require.True(t, got.MeetsPracticeMinimum)
	require.Equal(t, domain.AuditorActive, got.CalculatedStatus)

	recertified := day(2028, 5, 1)
	got, err = svc.Update(ctx, org, a.ID, ports.UpdateAuditor{CertifiedDate: &recertified})
	require.NoError(t, err)
	require.Equal(t, 2, got.AuditsCompleted)
	require.Zero(t, got.AuditsThisCertification, "a new certification starts a new period")
	require.False(t, got.MeetsPracticeMinimum)
	require.Equal(t, day(2031, 5, 1), *got.RecertificationDue)

	list, err := svc.List(ctx, org)
	require.NoError(t, err)
	require.Len(t, list, 1)

	other, err := svc.List(ctx, "org-2")
	require.NoError(t, err)
	require.Empty(t, other)
}
