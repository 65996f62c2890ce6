package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Core domain records. Every record is partitioned by OrganizationID; the
// time-dependent statuses of certificates and auditors are derived on read
// (see status.go) and never trusted from storage.

type AuditType string

const (
	AuditCertification   AuditType = "certification"
	AuditMaintenance     AuditType = "maintenance"
	AuditRecertification AuditType = "recertification"
)

func (t AuditType) Valid() bool {
	switch t {
	case AuditCertification, AuditMaintenance, AuditRecertification:
		return true
	}
	return false
}

// IssuesCertificate reports whether a passed audit of this type may issue a certificate.
func (t AuditType) IssuesCertificate() bool {
	return t == AuditCertification || t == AuditRecertification
}

type AuditStatus string

const (
	AuditScheduled  AuditStatus = "scheduled"
	AuditInProgress AuditStatus = "in_progress"
	AuditCompleted  AuditStatus = "completed"
	AuditPassed     AuditStatus = "passed"
	AuditFailed     AuditStatus = "failed"
)

func (s AuditStatus) Valid() bool {
	switch s {
	case AuditScheduled, AuditInProgress, AuditCompleted, AuditPassed, AuditFailed:
		return true
	}
	return false
}

// Settled reports whether the status is an outcome (passed or failed).
func (s AuditStatus) Settled() bool { return s == AuditPassed || s == AuditFailed }

type Audit struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organizationId"`
	AuditNumber    string        `json:"auditNumber"`
	Type           AuditType     `json:"auditType"`
	Status         AuditStatus   `json:"status"`
	ScheduledDate  time.Time     `json:"scheduledDate"`
	CompletedDate  *time.Time    `json:"completedDate"`
	OverallScore   *float64      `json:"overallScore"`
	ElementScores  ElementScores `json:"elementScores"`
	Notes          string        `json:"notes"`
	CertificateID  *string       `json:"certificateId"`
	LeadAuditorID  *string       `json:"leadAuditorId"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ClosedOut reports whether the audit went through its authoritative
// completion step. Closed-out audits are frozen.
func (a Audit) ClosedOut() bool { return a.CompletedDate != nil }

// FormatAuditNumber renders COR-<year>-<NNN>.
func FormatAuditNumber(year, seq int) string {
	return fmt.Sprintf("COR-%d-%03d", year, seq)
}

// ParseAuditNumber is the inverse of FormatAuditNumber.
func ParseAuditNumber(s string) (year, seq int, err error) {
	if _, err = fmt.Sscanf(s, "COR-%d-%d", &year, &seq); err != nil {
		return 0, 0, fmt.Errorf("malformed audit number %q", s)
	}
	return year, seq, nil
}

// ElementScore is the verification result for one element of one audit.
type ElementScore struct {
	Element       ElementID `json:"elementId"`
	ElementName   string    `json:"elementName"`
	Documentation *float64  `json:"documentationScore"`
	Interview     *float64  `json:"interviewScore"`
	Observation   *float64  `json:"observationScore"`
	Total         *int      `json:"totalScore"`
	Passed        *bool     `json:"passed"`
	Notes         string    `json:"notes"`
}

func (s ElementScore) methods() []*float64 {
	return []*float64{s.Documentation, s.Interview, s.Observation}
}

// ElementScores holds exactly one entry per defined element, indexed by
// ElementID-1.
type ElementScores [ElementCount]ElementScore

// NewElementScores returns an unscored set with element names filled in.
func NewElementScores() ElementScores {
	var out ElementScores
	for i, e := range elements {
		out[i] = ElementScore{Element: e.ID, ElementName: e.Name}
	}
	return out
}

// Get returns the entry for id.
func (s *ElementScores) Get(id ElementID) *ElementScore { return &s[id.index()] }

func (s ElementScores) MarshalJSON() ([]byte, error) {
	return json.Marshal([ElementCount]ElementScore(s))
}

// UnmarshalJSON places each entry by element id. Missing elements come back
// unscored; duplicates and unknown elements are rejected.
func (s *ElementScores) UnmarshalJSON(b []byte) error {
	var list []ElementScore
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	out := NewElementScores()
	var seen [ElementCount]bool
	for _, e := range list {
		if !e.Element.Valid() {
			return fmt.Errorf("undefined element %d", int(e.Element))
		}
		if seen[e.Element.index()] {
			return fmt.Errorf("duplicate element %s", e.Element)
		}
		seen[e.Element.index()] = true
		e.ElementName = e.Element.Element().Name
		out[e.Element.index()] = e
	}
	*s = out
	return nil
}

type CORType string

const (
	CORTypeOHS CORType = "OHS"
	CORTypeRTW CORType = "RTW"
)

func (t CORType) Valid() bool { return t == CORTypeOHS || t == CORTypeRTW }

type CertificateStatusValue string

const (
	CertificateActive   CertificateStatusValue = "active"
	CertificateExpiring CertificateStatusValue = "expiring"
	CertificateExpired  CertificateStatusValue = "expired"
	CertificateRevoked  CertificateStatusValue = "revoked"
)

// Certificate is the stored record. Status is empty unless the certificate
// was revoked; active, expiring and expired are derived on read.
type Certificate struct {
	ID                   string                 `json:"id"`
	OrganizationID       string                 `json:"organizationId"`
	CORType              CORType                `json:"corType"`
	Status               CertificateStatusValue `json:"status,omitempty"`
	IssueDate            time.Time              `json:"issueDate"`
	ExpiryDate           time.Time              `json:"expiryDate"`
	CertificationAuditID *string                `json:"certificationAuditId"`
	RevocationReason     *string                `json:"revocationReason"`
	RevokedAt            *time.Time             `json:"revokedAt"`
	CreatedAt            time.Time              `json:"createdAt"`
}

type AuditorType string

const (
	AuditorInternal AuditorType = "internal"
	AuditorExternal AuditorType = "external"
)

func (t AuditorType) Valid() bool { return t == AuditorInternal || t == AuditorExternal }

// MinTrainingHours is the training required to act as an auditor of this type.
func (t AuditorType) MinTrainingHours() float64 {
	if t == AuditorExternal {
		return 35
	}
	return 14
}

type AuditorStatusValue string

const (
	AuditorActive   AuditorStatusValue = "active"
	AuditorInactive AuditorStatusValue = "inactive"
	AuditorExpired  AuditorStatusValue = "expired"
)

// Auditor is a registered auditor. AuditsThisCertification counts audits
// since CertifiedDate last changed; AuditsCompleted never resets.
type Auditor struct {
	ID                      string             `json:"id"`
	OrganizationID          string             `json:"organizationId"`
	Type                    AuditorType        `json:"auditorType"`
	Name                    string             `json:"name"`
	Email                   string             `json:"email"`
	Phone                   string             `json:"phone"`
	CertificationNumber     string             `json:"certificationNumber"`
	CertifiedDate           time.Time          `json:"certifiedDate"`
	TrainingHours           float64            `json:"trainingHours"`
	AuditsCompleted         int                `json:"auditsCompleted"`
	AuditsThisCertification int                `json:"auditsThisCertification"`
	RecertificationDue      *time.Time         `json:"recertificationDue"`
	Status                  AuditorStatusValue `json:"status"`
	CreatedAt               time.Time          `json:"createdAt"`
	UpdatedAt               time.Time          `json:"updatedAt"`
}

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

// ResolutionDays is the remediation window for the severity.
func (s Severity) ResolutionDays() int {
	switch s {
	case SeverityCritical:
		return 7
	case SeverityMajor:
		return 14
	default:
		return 30
	}
}

type DeficiencyStatus string

const (
	DeficiencyOpen   DeficiencyStatus = "open"
	DeficiencyClosed DeficiencyStatus = "closed"
)

type Deficiency struct {
	ID               string           `json:"id"`
	AuditID          string           `json:"auditId"`
	OrganizationID   string           `json:"organizationId"`
	Element          *ElementID       `json:"elementId"`
	Severity         Severity         `json:"severity"`
	Description      string           `json:"description"`
	CorrectiveAction string           `json:"correctiveAction"`
	AssignedTo       *string          `json:"assignedTo"`
	Status           DeficiencyStatus `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	DueDate          time.Time        `json:"dueDate"`
	ClosedAt         *time.Time       `json:"closedAt"`
	ClosedBy         *string          `json:"closedBy"`
	ClosureNotes     *string          `json:"closureNotes"`
	VerifiedBy       *string          `json:"verifiedBy"`
}

// DueDateFor returns the remediation deadline of a finding of severity s
// raised at opened.
func DueDateFor(s Severity, opened time.Time) time.Time {
	return opened.AddDate(0, 0, s.ResolutionDays())
}
