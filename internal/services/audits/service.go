package audits

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"corengine/internal/domain"
	"corengine/internal/ports"
	"corengine/internal/telemetry"
)

const module = "audits"

// Service runs audits through their lifecycle: scheduling, scoring and the
// authoritative close-out.
type Service struct {
	audits   ports.AuditRepository
	seq      ports.SequenceAllocator
	auditors ports.AuditorRepository
	locks    ports.Locker
	clock    clockwork.Clock
	log      logrus.FieldLogger
}

func New(audits ports.AuditRepository, seq ports.SequenceAllocator, auditors ports.AuditorRepository, locks ports.Locker, clock clockwork.Clock, log logrus.FieldLogger) *Service {
	return &Service{audits: audits, seq: seq, auditors: auditors, locks: locks, clock: clock, log: log}
}

func (s *Service) Schedule(ctx context.Context, orgID string, in ports.ScheduleAudit) (out domain.Audit, err error) {
	ctx, span := telemetry.Start(ctx, "audits.Schedule", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	if in.LeadAuditorID != nil {
		if err := s.checkLeadAuditor(ctx, orgID, *in.LeadAuditorID); err != nil {
			return out, err
		}
	}

	year := in.ScheduledDate.UTC().Year()
	// The number is allocated in one system and stored in another, so the lock
	// spans both; a reseeded counter cannot hand out a number still in flight.
	release, err := s.lock(ctx, fmt.Sprintf("auditseq:%s:%d", orgID, year))
	if err != nil {
		return out, fmt.Errorf("schedule audit: %w", err)
	}
	defer release()

	seq, err := s.seq.NextAuditSequence(ctx, orgID, year)
	if err != nil {
		return out, fmt.Errorf("schedule audit: allocate number: %w", err)
	}
	now := s.clock.Now().UTC()
	a := domain.Audit{
		OrganizationID: orgID,
		AuditNumber:    domain.FormatAuditNumber(year, seq),
		Type:           in.Type,
		Status:         domain.AuditScheduled,
		ScheduledDate:  in.ScheduledDate.UTC(),
		ElementScores:  domain.NewElementScores(),
		Notes:          in.Notes,
		LeadAuditorID:  in.LeadAuditorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.audits.CreateAudit(ctx, &a); err != nil {
		return out, fmt.Errorf("schedule audit: %w", err)
	}
	telemetry.Op(s.log, module, "Schedule", orgID).WithFields(logrus.Fields{
		"audit_id":     a.ID,
		"audit_number": a.AuditNumber,
		"audit_type":   a.Type,
	}).Info("audit scheduled")
	return a, nil
}

// UpdateElementScores replaces the audit's element scores with the submitted
// set and recomputes totals, the overall score and the implied status.
func (s *Service) UpdateElementScores(ctx context.Context, orgID, id string, in ports.UpdateElementScores) (out domain.Audit, err error) {
	ctx, span := telemetry.Start(ctx, "audits.UpdateElementScores", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	set, err := buildScores(in.Scores)
	if err != nil {
		return out, err
	}
	result := domain.ScoreElements(set)

	now := s.clock.Now().UTC()
	out, err = s.audits.MutateAudit(ctx, orgID, id, func(a *domain.Audit) error {
		if err := a.ApplyScores(result); err != nil {
			return err
		}
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		return out, domain.WrapOp("update element scores", err)
	}
	telemetry.Op(s.log, module, "UpdateElementScores", orgID).WithFields(logrus.Fields{
		"audit_id":      id,
		"status":        out.Status,
		"overall_score": out.OverallScore,
	}).Info("element scores updated")
	return out, nil
}

// Complete closes out an audit with an explicit outcome. It is authoritative
// over whatever status the scores implied; afterwards the audit is frozen.
func (s *Service) Complete(ctx context.Context, orgID, id string, in ports.CompleteAudit) (out domain.Audit, err error) {
	ctx, span := telemetry.Start(ctx, "audits.Complete", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	now := s.clock.Now().UTC()
	completed := now
	if in.CompletedDate != nil {
		completed = in.CompletedDate.UTC()
	}

	out, err = s.audits.CloseOutAudit(ctx, orgID, id, func(a *domain.Audit) error {
		if err := a.CloseOut(*in.Passed, completed, in.OverallScore, in.Notes); err != nil {
			return err
		}
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		return out, domain.WrapOp("complete audit", err)
	}
	telemetry.Op(s.log, module, "Complete", orgID).WithFields(logrus.Fields{
		"audit_id":     id,
		"audit_number": out.AuditNumber,
		"status":       out.Status,
	}).Info("audit closed out")
	return out, nil
}

func (s *Service) UpdateDetails(ctx context.Context, orgID, id string, in ports.UpdateAuditDetails) (out domain.Audit, err error) {
	ctx, span := telemetry.Start(ctx, "audits.UpdateDetails", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	if in.LeadAuditorID != nil && *in.LeadAuditorID != "" {
		if err := s.checkLeadAuditor(ctx, orgID, *in.LeadAuditorID); err != nil {
			return out, err
		}
	}
	now := s.clock.Now().UTC()
	out, err = s.audits.MutateAudit(ctx, orgID, id, func(a *domain.Audit) error {
		if a.ClosedOut() {
			return domain.ErrAuditClosed
		}
		if in.Status != nil {
			if err := a.MoveTo(*in.Status); err != nil {
				return err
			}
		}
		if in.ScheduledDate != nil {
			a.ScheduledDate = in.ScheduledDate.UTC()
		}
		if in.Notes != nil {
			a.Notes = *in.Notes
		}
		if in.LeadAuditorID != nil {
			a.LeadAuditorID = in.LeadAuditorID
			if *in.LeadAuditorID == "" {
				a.LeadAuditorID = nil
			}
		}
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		return out, domain.WrapOp("update audit", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.Audit, error) {
	a, err := s.audits.GetAudit(ctx, orgID, id)
	if err != nil {
		return a, fmt.Errorf("get audit: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, orgID string, f ports.AuditFilter) ([]domain.Audit, error) {
	list, err := s.audits.ListAudits(ctx, orgID, f)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	return list, nil
}

func (s *Service) checkLeadAuditor(ctx context.Context, orgID, auditorID string) error {
	au, err := s.auditors.GetAuditor(ctx, orgID, auditorID)
	if err != nil {
		return fmt.Errorf("lead auditor %s: %w", auditorID, err)
	}
	if st := domain.AuditorStatus(au, s.clock.Now()); st != domain.AuditorActive {
		return domain.Preconditionf("lead auditor %s is %s", au.Name, st)
	}
	return nil
}

// lock holds key across replicas. Failing to release only costs the lock
// TTL, so it is logged and not returned.
func (s *Service) lock(ctx context.Context, key string) (func(), error) {
	l, err := s.locks.Obtain(ctx, key)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := l.Release(context.WithoutCancel(ctx)); err != nil {
			s.log.WithFields(logrus.Fields{"module": module, "lock": key}).
				Warn("failed to release lock: " + err.Error())
		}
	}, nil
}

func buildScores(in []ports.ElementScoreInput) (domain.ElementScores, error) {
	set := domain.NewElementScores()
	var seen [domain.ElementCount]bool
	for _, e := range in {
		if !e.Element.Valid() {
			return set, domain.Preconditionf("unknown element %d", int(e.Element))
		}
		i := int(e.Element) - 1
		if seen[i] {
			return set, domain.Preconditionf("element %s submitted more than once", e.Element)
		}
		seen[i] = true
		entry := set.Get(e.Element)
		entry.Documentation = e.Documentation
		entry.Interview = e.Interview
		entry.Observation = e.Observation
		entry.Notes = e.Notes
	}
	return set, domain.ValidateMethodScores(set)
}
