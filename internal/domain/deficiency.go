package domain

import (
	"math"
	"time"
)

// IsOverdue reports whether an open deficiency is past its due date at now.
func (d Deficiency) IsOverdue(now time.Time) bool {
	return d.Status == DeficiencyOpen && now.After(d.DueDate)
}

// DaysUntilDue is negative for overdue findings.
func (d Deficiency) DaysUntilDue(now time.Time) int {
	return int(math.Ceil(d.DueDate.Sub(now).Hours() / 24))
}

// Close records remediation of an open deficiency. Closing is one-way.
func (d *Deficiency) Close(closedBy, notes string, verifiedBy *string, at time.Time) error {
	if d.Status != DeficiencyOpen {
		return Preconditionf("deficiency is already %s", d.Status)
	}
	d.Status = DeficiencyClosed
	d.ClosedAt = &at
	d.ClosedBy = &closedBy
	d.ClosureNotes = &notes
	d.VerifiedBy = verifiedBy
	return nil
}
