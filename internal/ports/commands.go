package ports

import (
	"time"

	"corengine/internal/domain"
)

// Commands accepted by the services. Struct tags are checked with
// domain.Validate before any store call.

type ScheduleAudit struct {
	Type          domain.AuditType `json:"auditType" validate:"required,oneof=certification maintenance recertification"`
	ScheduledDate time.Time        `json:"scheduledDate" validate:"required"`
	Notes         string           `json:"notes"`
	LeadAuditorID *string          `json:"leadAuditorId" validate:"omitempty,min=1"`
}

type ElementScoreInput struct {
	Element       domain.ElementID `json:"elementId" validate:"required"`
	Documentation *float64         `json:"documentationScore" validate:"omitempty,min=0,max=100"`
	Interview     *float64         `json:"interviewScore" validate:"omitempty,min=0,max=100"`
	Observation   *float64         `json:"observationScore" validate:"omitempty,min=0,max=100"`
	Notes         string           `json:"notes"`
}

// UpdateElementScores carries the complete current score set. Elements left
// out are stored unscored.
type UpdateElementScores struct {
	Scores []ElementScoreInput `json:"scores" validate:"dive"`
}

type CompleteAudit struct {
	OverallScore  *float64   `json:"overallScore" validate:"omitempty,min=0,max=100"`
	Passed        *bool      `json:"passed" validate:"required"`
	CompletedDate *time.Time `json:"completedDate"`
	Notes         string     `json:"notes"`
}

type UpdateAuditDetails struct {
	ScheduledDate *time.Time          `json:"scheduledDate"`
	Notes         *string             `json:"notes"`
	LeadAuditorID *string             `json:"leadAuditorId"`
	Status        *domain.AuditStatus `json:"status" validate:"omitempty,oneof=in_progress completed"`
}

type IssueCertificate struct {
	CORType              domain.CORType `json:"corType" validate:"required,oneof=OHS RTW"`
	IssueDate            *time.Time     `json:"issueDate"`
	CertificationAuditID *string        `json:"certificationAuditId" validate:"omitempty,min=1"`
}

type RegisterAuditor struct {
	Type                domain.AuditorType `json:"auditorType" validate:"required,oneof=internal external"`
	Name                string             `json:"name" validate:"required"`
	Email               string             `json:"email" validate:"omitempty,email"`
	Phone               string             `json:"phone"`
	CertificationNumber string             `json:"certificationNumber" validate:"required"`
	CertifiedDate       time.Time          `json:"certifiedDate" validate:"required"`
	TrainingHours       float64            `json:"trainingHours" validate:"gte=0"`
}

type UpdateAuditor struct {
	Type                *domain.AuditorType        `json:"auditorType" validate:"omitempty,oneof=internal external"`
	Name                *string                    `json:"name" validate:"omitempty,min=1"`
	Email               *string                    `json:"email" validate:"omitempty,email"`
	Phone               *string                    `json:"phone"`
	CertificationNumber *string                    `json:"certificationNumber" validate:"omitempty,min=1"`
	CertifiedDate       *time.Time                 `json:"certifiedDate"`
	TrainingHours       *float64                   `json:"trainingHours" validate:"omitempty,gte=0"`
	Status              *domain.AuditorStatusValue `json:"status" validate:"omitempty,oneof=active inactive"`
}

type OpenDeficiency struct {
	AuditID          string            `json:"auditId" validate:"required"`
	Severity         domain.Severity   `json:"severity" validate:"required,oneof=minor major critical"`
	Description      string            `json:"description" validate:"required"`
	Element          *domain.ElementID `json:"elementId"`
	CorrectiveAction string            `json:"correctiveAction"`
	AssignedTo       *string           `json:"assignedTo"`
}

type UpdateDeficiency struct {
	Severity         *domain.Severity `json:"severity" validate:"omitempty,oneof=minor major critical"`
	Description      *string          `json:"description" validate:"omitempty,min=1"`
	CorrectiveAction *string          `json:"correctiveAction"`
	AssignedTo       *string          `json:"assignedTo"`
}

type CloseDeficiency struct {
	ClosedBy   string  `json:"closedBy" validate:"required"`
	Notes      string  `json:"notes"`
	VerifiedBy *string `json:"verifiedBy"`
}
