package domain

import (
	"math"
	"time"
)

const (
	// CertificateValidityYears is the fixed COR validity period.
	CertificateValidityYears = 3
	// AuditorCertificationYears is how long an auditor certification lasts.
	AuditorCertificationYears = 3
	// ExpiringWindowDays is how close to expiry a certificate reports expiring.
	ExpiringWindowDays = 90
	// MinAuditsPerCycle is the informational practice minimum for auditors.
	MinAuditsPerCycle = 2
)

// ExpiryFor returns the expiry date of a certificate issued at issue.
func ExpiryFor(issue time.Time) time.Time {
	return issue.AddDate(CertificateValidityYears, 0, 0)
}

// RecertificationDueFor returns when an auditor certified at certified must recertify.
func RecertificationDueFor(certified time.Time) time.Time {
	return certified.AddDate(AuditorCertificationYears, 0, 0)
}

// DaysUntilExpiry is the whole number of days until expiry, rounded up.
// Negative once the certificate has expired by a full day or more.
func DaysUntilExpiry(c Certificate, now time.Time) int {
	return int(math.Ceil(c.ExpiryDate.Sub(now).Hours() / 24))
}

// CertificateStatus derives the visible status of c at now. A stored
// revocation always wins.
func CertificateStatus(c Certificate, now time.Time) CertificateStatusValue {
	if c.Status == CertificateRevoked {
		return CertificateRevoked
	}
	if now.After(c.ExpiryDate) {
		return CertificateExpired
	}
	if DaysUntilExpiry(c, now) <= ExpiringWindowDays {
		return CertificateExpiring
	}
	return CertificateActive
}

// AuditorStatus derives the visible status of a at now.
func AuditorStatus(a Auditor, now time.Time) AuditorStatusValue {
	if a.Status == AuditorInactive {
		return AuditorInactive
	}
	if a.RecertificationDue != nil && a.RecertificationDue.Before(now) {
		return AuditorExpired
	}
	return AuditorActive
}

// MeetsPracticeMinimum reports whether a has completed the required audits
// within the current certification period. It is informational only; it
// never gates an auditor.
func (a Auditor) MeetsPracticeMinimum() bool { return a.AuditsThisCertification >= MinAuditsPerCycle }

// CreditAudit counts one completed audit toward both the lifetime total and
// the current certification period.
func (a *Auditor) CreditAudit() {
	a.AuditsCompleted++
	a.AuditsThisCertification++
}

// Recertify moves the certification date. A new date starts a new period,
// so the period counter resets and the recertification due date follows.
func (a *Auditor) Recertify(certified time.Time) {
	if !certified.Equal(a.CertifiedDate) {
		a.AuditsThisCertification = 0
	}
	a.CertifiedDate = certified
	due := RecertificationDueFor(certified)
	a.RecertificationDue = &due
}
