package domain

import "time"

// transitions lists the statuses reachable from each status while the audit
// is open. Nothing returns to scheduled, and a closed-out audit moves nowhere.
// Score-derived passed/failed stay provisional until close-out.
var transitions = map[AuditStatus][]AuditStatus{
	AuditScheduled:  {AuditInProgress, AuditCompleted, AuditPassed, AuditFailed},
	AuditInProgress: {AuditInProgress, AuditCompleted, AuditPassed, AuditFailed},
	AuditCompleted:  {AuditCompleted, AuditPassed, AuditFailed},
	AuditPassed:     {AuditInProgress, AuditCompleted, AuditPassed, AuditFailed},
	AuditFailed:     {AuditInProgress, AuditCompleted, AuditPassed, AuditFailed},
}

// CanTransition reports whether an open audit may move from one status to another.
func CanTransition(from, to AuditStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// MoveTo is the single place an audit's status changes.
func (a *Audit) MoveTo(to AuditStatus) error {
	if a.ClosedOut() {
		return ErrAuditClosed
	}
	if !CanTransition(a.Status, to) {
		return Preconditionf("audit cannot move from %s to %s", a.Status, to)
	}
	a.Status = to
	return nil
}

// ApplyScores stores a score result and moves the audit to the status it
// implies. An audit already marked completed stays completed until the
// scores settle an outcome.
func (a *Audit) ApplyScores(r ScoreResult) error {
	to := Outcome(r)
	if to == AuditInProgress && a.Status == AuditCompleted {
		to = AuditCompleted
	}
	if err := a.MoveTo(to); err != nil {
		return err
	}
	a.ElementScores = r.Scores
	a.OverallScore = r.OverallScore
	return nil
}

// CloseOut is the authoritative completion step. The passed flag decides
// the outcome regardless of what the scores implied.
func (a *Audit) CloseOut(passed bool, completed time.Time, overall *float64, notes string) error {
	to := AuditFailed
	if passed {
		to = AuditPassed
	}
	if err := a.MoveTo(to); err != nil {
		return err
	}
	a.CompletedDate = &completed
	if overall != nil {
		a.OverallScore = overall
	}
	if notes != "" {
		if a.Notes != "" {
			a.Notes += "\n\n"
		}
		a.Notes += notes
	}
	return nil
}
