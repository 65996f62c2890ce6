package domain

import (
	"math"
	"time"
)

const (
	// CycleYears is the length of the repeating COR audit cycle.
	CycleYears = 3
	// MinAuditIntervalMonths is the minimum gap between consecutive audits.
	MinAuditIntervalMonths = 6
)

// CycleStatus is where an organization sits in its COR cycle.
type CycleStatus struct {
	OrganizationID          string           `json:"organizationId"`
	CORType                 CORType          `json:"corType"`
	Certificate             *CertificateView `json:"certificate"`
	CycleYear               *int             `json:"cycleYear"`
	NextAuditType           AuditType        `json:"nextAuditType"`
	NextAuditDue            *time.Time       `json:"nextAuditDue"`
	LastPassedAuditID       *string          `json:"lastPassedAuditId"`
	LastPassedAuditDate     *time.Time       `json:"lastPassedAuditDate"`
	MaintenanceAuditsPassed int              `json:"maintenanceAuditsPassed"`
	TotalAudits             int              `json:"totalAudits"`
}

// ProjectCycle works out the next required audit from the active
// certificate (nil if none) and the organization's audit history. It is a
// pure function of stored dates, so late or out-of-order audits need no
// schedule repair.
func ProjectCycle(cert *Certificate, audits []Audit, now time.Time) CycleStatus {
	st := CycleStatus{TotalAudits: len(audits), NextAuditType: AuditCertification}

	var last *Audit
	for i := range audits {
		a := &audits[i]
		if a.Status != AuditPassed || a.CompletedDate == nil {
			continue
		}
		if last == nil || a.CompletedDate.After(*last.CompletedDate) {
			last = a
		}
	}
	if last != nil {
		st.LastPassedAuditID = &last.ID
		st.LastPassedAuditDate = last.CompletedDate
	}

	if cert == nil {
		return st
	}
	view := ViewCertificate(*cert, now)
	st.Certificate = &view
	st.OrganizationID, st.CORType = cert.OrganizationID, cert.CORType

	for _, a := range audits {
		if a.Type == AuditMaintenance && a.Status == AuditPassed &&
			a.CompletedDate != nil && !a.CompletedDate.Before(cert.IssueDate) {
			st.MaintenanceAuditsPassed++
		}
	}

	year := CycleYear(cert.IssueDate, now)
	st.CycleYear = &year
	if year == CycleYears-1 {
		st.NextAuditType = AuditRecertification
		due := cert.ExpiryDate
		st.NextAuditDue = &due
		return st
	}
	st.NextAuditType = AuditMaintenance
	if last != nil {
		due := last.CompletedDate.AddDate(0, MinAuditIntervalMonths, 0)
		st.NextAuditDue = &due
	}
	return st
}

// CycleYear is floor(years since issue) mod 3, using 365-day years.
func CycleYear(issued, now time.Time) int {
	years := now.Sub(issued).Hours() / 24 / 365
	if years < 0 {
		return 0
	}
	return int(math.Floor(years)) % CycleYears
}

// ReadinessComponent is one program area's contribution to COR readiness.
type ReadinessComponent struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes,omitempty"`
}

// Readiness is the organization-wide COR readiness aggregate. Score is the
// weighted mean of the components, zero when none are registered.
type Readiness struct {
	OrganizationID string               `json:"organizationId"`
	Score          float64              `json:"score"`
	Components     []ReadinessComponent `json:"components"`
}
