package auditors

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"corengine/internal/domain"
	"corengine/internal/ports"
	"corengine/internal/telemetry"
)

const module = "auditors"

// Service keeps the auditor registry. Training hours are checked against
// the auditor type's minimum on every write.
type Service struct {
	auditors ports.AuditorRepository
	clock    clockwork.Clock
	log      logrus.FieldLogger
}

func New(auditors ports.AuditorRepository, clock clockwork.Clock, log logrus.FieldLogger) *Service {
	return &Service{auditors: auditors, clock: clock, log: log}
}

func (s *Service) Register(ctx context.Context, orgID string, in ports.RegisterAuditor) (out domain.AuditorView, err error) {
	ctx, span := telemetry.Start(ctx, "auditors.Register", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	if err := checkTraining(in.Type, in.TrainingHours); err != nil {
		return out, err
	}
	now := s.clock.Now().UTC()
	certified := in.CertifiedDate.UTC()
	due := domain.RecertificationDueFor(certified)
	a := domain.Auditor{
		OrganizationID:      orgID,
		Type:                in.Type,
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		CertificationNumber: in.CertificationNumber,
		CertifiedDate:       certified,
		TrainingHours:       in.TrainingHours,
		RecertificationDue:  &due,
		Status:              domain.AuditorActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.auditors.CreateAuditor(ctx, &a); err != nil {
		return out, fmt.Errorf("register auditor: %w", err)
	}
	telemetry.Op(s.log, module, "Register", orgID).WithFields(logrus.Fields{
		"auditor_id":   a.ID,
		"auditor_type": a.Type,
	}).Info("auditor registered")
	return domain.ViewAuditor(a, now), nil
}

func (s *Service) Update(ctx context.Context, orgID, id string, in ports.UpdateAuditor) (out domain.AuditorView, err error) {
	ctx, span := telemetry.Start(ctx, "auditors.Update", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	now := s.clock.Now().UTC()
	a, err := s.auditors.MutateAuditor(ctx, orgID, id, func(a *domain.Auditor) error {
		if in.Type != nil {
			a.Type = *in.Type
		}
		if in.TrainingHours != nil {
			a.TrainingHours = *in.TrainingHours
		}
		if err := checkTraining(a.Type, a.TrainingHours); err != nil {
			return err
		}
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Email != nil {
			a.Email = *in.Email
		}
		if in.Phone != nil {
			a.Phone = *in.Phone
		}
		if in.CertificationNumber != nil {
			a.CertificationNumber = *in.CertificationNumber
		}
		if in.CertifiedDate != nil {
			a.Recertify(in.CertifiedDate.UTC())
		}
		if in.Status != nil {
			a.Status = *in.Status
		}
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		return out, domain.WrapOp("update auditor", err)
	}
	return domain.ViewAuditor(a, now), nil
}

// RecordAudit credits the auditor with one completed audit. It does not
// change the auditor's status.
func (s *Service) RecordAudit(ctx context.Context, orgID, id string) (out domain.AuditorView, err error) {
	ctx, span := telemetry.Start(ctx, "auditors.RecordAudit", orgID)
	defer func() { telemetry.Finish(span, err) }()

	now := s.clock.Now().UTC()
	a, err := s.auditors.MutateAuditor(ctx, orgID, id, func(a *domain.Auditor) error {
		a.CreditAudit()
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		return out, domain.WrapOp("record audit for auditor", err)
	}
	return domain.ViewAuditor(a, now), nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.AuditorView, error) {
	a, err := s.auditors.GetAuditor(ctx, orgID, id)
	if err != nil {
		return domain.AuditorView{}, fmt.Errorf("get auditor: %w", err)
	}
	return domain.ViewAuditor(a, s.clock.Now()), nil
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.AuditorView, error) {
	list, err := s.auditors.ListAuditors(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list auditors: %w", err)
	}
	now := s.clock.Now()
	out := make([]domain.AuditorView, 0, len(list))
	for _, a := range list {
		out = append(out, domain.ViewAuditor(a, now))
	}
	return out, nil
}

func checkTraining(t domain.AuditorType, hours float64) error {
	if required := t.MinTrainingHours(); hours < required {
		return domain.BelowMinimum(fmt.Sprintf("%s auditors need at least %v training hours, got %v", t, required, hours), required)
	}
	return nil
}
