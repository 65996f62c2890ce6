package deficiencies

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"corengine/internal/domain"
	"corengine/internal/ports"
	"corengine/internal/telemetry"
)

const module = "deficiencies"

// Service tracks audit findings. Due dates follow from severity; overdue is
// computed at read time and never stored.
type Service struct {
	deficiencies ports.DeficiencyRepository
	audits       ports.AuditRepository
	clock        clockwork.Clock
	log          logrus.FieldLogger
}

func New(deficiencies ports.DeficiencyRepository, audits ports.AuditRepository, clock clockwork.Clock, log logrus.FieldLogger) *Service {
	return &Service{deficiencies: deficiencies, audits: audits, clock: clock, log: log}
}

func (s *Service) Open(ctx context.Context, orgID string, in ports.OpenDeficiency) (out domain.DeficiencyView, err error) {
	ctx, span := telemetry.Start(ctx, "deficiencies.Open", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	if in.Element != nil && !in.Element.Valid() {
		return out, domain.Preconditionf("unknown element %d", int(*in.Element))
	}
	if _, err := s.audits.GetAudit(ctx, orgID, in.AuditID); err != nil {
		return out, fmt.Errorf("open deficiency: audit %s: %w", in.AuditID, err)
	}
	now := s.clock.Now().UTC()
	d := domain.Deficiency{
		AuditID:          in.AuditID,
		OrganizationID:   orgID,
		Element:          in.Element,
		Severity:         in.Severity,
		Description:      in.Description,
		CorrectiveAction: in.CorrectiveAction,
		AssignedTo:       in.AssignedTo,
		Status:           domain.DeficiencyOpen,
		CreatedAt:        now,
		DueDate:          domain.DueDateFor(in.Severity, now),
	}
	if err := s.deficiencies.CreateDeficiency(ctx, &d); err != nil {
		return out, fmt.Errorf("open deficiency: %w", err)
	}
	telemetry.Op(s.log, module, "Open", orgID).WithFields(logrus.Fields{
		"deficiency_id": d.ID,
		"audit_id":      d.AuditID,
		"severity":      d.Severity,
		"due_date":      d.DueDate,
	}).Info("deficiency opened")
	return domain.ViewDeficiency(d, now), nil
}

// Update edits an open deficiency. A severity change moves the due date to
// the new severity's window counted from the original creation date.
func (s *Service) Update(ctx context.Context, orgID, id string, in ports.UpdateDeficiency) (out domain.DeficiencyView, err error) {
	ctx, span := telemetry.Start(ctx, "deficiencies.Update", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	d, err := s.deficiencies.MutateDeficiency(ctx, orgID, id, func(d *domain.Deficiency) error {
		if d.Status != domain.DeficiencyOpen {
			return domain.Preconditionf("deficiency is %s and cannot be modified", d.Status)
		}
		if in.Severity != nil && *in.Severity != d.Severity {
			d.Severity = *in.Severity
			d.DueDate = domain.DueDateFor(d.Severity, d.CreatedAt)
		}
		if in.Description != nil {
			d.Description = *in.Description
		}
		if in.CorrectiveAction != nil {
			d.CorrectiveAction = *in.CorrectiveAction
		}
		if in.AssignedTo != nil {
			d.AssignedTo = in.AssignedTo
		}
		return nil
	})
	if err != nil {
		return out, domain.WrapOp("update deficiency", err)
	}
	return domain.ViewDeficiency(d, s.clock.Now()), nil
}

// Close moves an open deficiency to closed. There is no reopening.
func (s *Service) Close(ctx context.Context, orgID, id string, in ports.CloseDeficiency) (out domain.DeficiencyView, err error) {
	ctx, span := telemetry.Start(ctx, "deficiencies.Close", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	now := s.clock.Now().UTC()
	d, err := s.deficiencies.MutateDeficiency(ctx, orgID, id, func(d *domain.Deficiency) error {
		return d.Close(in.ClosedBy, in.Notes, in.VerifiedBy, now)
	})
	if err != nil {
		return out, domain.WrapOp("close deficiency", err)
	}
	telemetry.Op(s.log, module, "Close", orgID).WithFields(logrus.Fields{
		"deficiency_id": id,
		"closed_by":     in.ClosedBy,
	}).Info("deficiency closed")
	return domain.ViewDeficiency(d, now), nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.DeficiencyView, error) {
	d, err := s.deficiencies.GetDeficiency(ctx, orgID, id)
	if err != nil {
		return domain.DeficiencyView{}, fmt.Errorf("get deficiency: %w", err)
	}
	return domain.ViewDeficiency(d, s.clock.Now()), nil
}

func (s *Service) List(ctx context.Context, orgID string, f ports.DeficiencyFilter) ([]domain.DeficiencyView, error) {
	list, err := s.deficiencies.ListDeficiencies(ctx, orgID, f)
	if err != nil {
		return nil, fmt.Errorf("list deficiencies: %w", err)
	}
	now := s.clock.Now()
	out := make([]domain.DeficiencyView, 0, len(list))
	for _, d := range list {
		out = append(out, domain.ViewDeficiency(d, now))
	}
	return out, nil
}

// ListOpen returns the organization's open deficiencies, earliest due first.
func (s *Service) ListOpen(ctx context.Context, orgID string) ([]domain.DeficiencyView, error) {
	return s.List(ctx, orgID, ports.DeficiencyFilter{Status: domain.DeficiencyOpen})
}
