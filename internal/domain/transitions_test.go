package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to AuditStatus
		ok       bool
	}{
		{AuditScheduled, AuditInProgress, true},
		{AuditScheduled, AuditPassed, true},
		{AuditInProgress, AuditFailed, true},
		{AuditInProgress, AuditScheduled, false},
		{AuditCompleted, AuditInProgress, false},
		{AuditCompleted, AuditPassed, true},
		{AuditPassed, AuditFailed, true},
		{AuditFailed, AuditInProgress, true},
		{AuditPassed, AuditScheduled, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestApplyScoresMovesStatus(t *testing.T) {
	a := Audit{Status: AuditScheduled, ElementScores: NewElementScores()}

	partial := ScoreElements(scored(map[ElementID][3]*float64{ElementTraining: {f(40), nil, nil}}))
	require.NoError(t, a.ApplyScores(partial))
	require.Equal(t, AuditFailed, a.Status)
	require.Equal(t, 40.0, *a.OverallScore)

	passing := ScoreElements(scored(map[ElementID][3]*float64{ElementTraining: {f(90), nil, nil}}))
	require.NoError(t, a.ApplyScores(passing))
	require.Equal(t, AuditPassed, a.Status)

	require.NoError(t, a.ApplyScores(ScoreElements(NewElementScores())))
	require.Equal(t, AuditInProgress, a.Status)
	require.Nil(t, a.OverallScore)
}

func TestApplyScoresKeepsCompleted(t *testing.T) {
	a := Audit{Status: AuditCompleted, ElementScores: NewElementScores()}
	require.NoError(t, a.ApplyScores(ScoreElements(NewElementScores())))
	require.Equal(t, AuditCompleted, a.Status)
}

func TestCloseOutFreezesAudit(t *testing.T) {
	a := Audit{Status: AuditInProgress, Notes: "site visit"}
	at := date(2026, 5, 1)
	require.NoError(t, a.CloseOut(true, at, f(88), "all elements verified"))
	require.Equal(t, AuditPassed, a.Status)
	require.Equal(t, at, *a.CompletedDate)
	require.Equal(t, 88.0, *a.OverallScore)
	require.Equal(t, "site visit\n\nall elements verified", a.Notes)
	require.True(t, a.ClosedOut())

	require.True(t, errors.Is(a.MoveTo(AuditInProgress), ErrAuditClosed))
	require.True(t, errors.Is(a.CloseOut(false, at, nil, ""), ErrAuditClosed))
	require.True(t, errors.Is(a.ApplyScores(ScoreElements(NewElementScores())), ErrAuditClosed))
	require.Equal(t, AuditPassed, a.Status)
}

func TestCloseOutKeepsComputedScore(t *testing.T) {
	a := Audit{Status: AuditFailed, OverallScore: f(72.4)}
	require.NoError(t, a.CloseOut(false, date(2026, 5, 1), nil, ""))
	require.Equal(t, 72.4, *a.OverallScore)
	require.Equal(t, AuditFailed, a.Status)
	require.Empty(t, a.Notes)
}

func TestCheckIssuingAudit(t *testing.T) {
	ok := Audit{Type: AuditCertification, Status: AuditPassed}
	require.NoError(t, CheckIssuingAudit(ok))

	re := Audit{Type: AuditRecertification, Status: AuditPassed}
	require.NoError(t, CheckIssuingAudit(re))

	require.True(t, IsPrecondition(CheckIssuingAudit(Audit{Type: AuditMaintenance, Status: AuditPassed})))
	require.True(t, IsPrecondition(CheckIssuingAudit(Audit{Type: AuditCertification, Status: AuditFailed})))

	id := "c-1"
	linked := Audit{Type: AuditCertification, Status: AuditPassed, CertificateID: &id}
	require.True(t, IsPrecondition(CheckIssuingAudit(linked)))
}

func TestCertificateRevoke(t *testing.T) {
	c := Certificate{Status: CertificateActive}
	require.NoError(t, c.Revoke("fraudulent records", date(2026, 1, 1)))
	require.Equal(t, CertificateRevoked, c.Status)
	require.Equal(t, "fraudulent records", *c.RevocationReason)
	require.True(t, IsPrecondition(c.Revoke("again", date(2026, 1, 2))))
}

func TestPreconditionMessage(t *testing.T) {
	err := BelowMinimum("internal auditors need at least 14 training hours, got 10", 14)
	require.Equal(t, "internal auditors need at least 14 training hours, got 10 (minimum 14)", err.Error())
	require.Nil(t, WrapOp("op", nil))
	require.Equal(t, err, WrapOp("op", err))
	require.True(t, errors.Is(WrapOp("get audit", ErrNotFound), ErrNotFound))
}
