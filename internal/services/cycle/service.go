package cycle

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"corengine/internal/domain"
	"corengine/internal/ports"
	"corengine/internal/telemetry"
)

const module = "cycle"

// ReadinessContributor scores one safety-program area (training, JHSC,
// incidents, ...) for the readiness aggregate. Areas outside the audit
// engine plug in here.
type ReadinessContributor interface {
	Name() string
	Weight() float64
	Score(ctx context.Context, orgID string) (score float64, notes string, err error)
}

// Service projects the COR audit cycle and aggregates readiness.
type Service struct {
	certs        ports.CertificateRepository
	audits       ports.AuditRepository
	contributors []ReadinessContributor
	clock        clockwork.Clock
	log          logrus.FieldLogger
}

func New(certs ports.CertificateRepository, audits ports.AuditRepository, clock clockwork.Clock, log logrus.FieldLogger, contributors ...ReadinessContributor) *Service {
	return &Service{certs: certs, audits: audits, contributors: contributors, clock: clock, log: log}
}

// Project loads the active certificate and the audit history concurrently
// and works out the next required audit.
func (s *Service) Project(ctx context.Context, orgID string, t domain.CORType) (out domain.CycleStatus, err error) {
	ctx, span := telemetry.Start(ctx, "cycle.Project", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if !t.Valid() {
		return out, domain.Preconditionf("unknown COR type %q", t)
	}
	var (
		cert   domain.Certificate
		found  bool
		audits []domain.Audit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cert, found, err = s.certs.LatestCertificate(gctx, orgID, t)
		return err
	})
	g.Go(func() error {
		var err error
		audits, err = s.audits.ListAudits(gctx, orgID, ports.AuditFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return out, fmt.Errorf("project cycle: %w", err)
	}

	var active *domain.Certificate
	if found {
		active = &cert
	}
	out = domain.ProjectCycle(active, audits, s.clock.Now().UTC())
	out.OrganizationID, out.CORType = orgID, t
	telemetry.Op(s.log, module, "Project", orgID).WithFields(logrus.Fields{
		"cor_type":        t,
		"next_audit_type": out.NextAuditType,
		"cycle_year":      out.CycleYear,
	}).Debug("cycle projected")
	return out, nil
}

// Readiness aggregates the registered contributors into a weighted score.
// With no contributors registered it returns the zero-valued aggregate.
func (s *Service) Readiness(ctx context.Context, orgID string) (out domain.Readiness, err error) {
	ctx, span := telemetry.Start(ctx, "cycle.Readiness", orgID)
	defer func() { telemetry.Finish(span, err) }()

	out = domain.Readiness{OrganizationID: orgID, Components: []domain.ReadinessComponent{}}
	var num, den float64
	for _, c := range s.contributors {
		score, notes, err := c.Score(ctx, orgID)
		if err != nil {
			return out, fmt.Errorf("readiness: %s: %w", c.Name(), err)
		}
		out.Components = append(out.Components, domain.ReadinessComponent{
			Name: c.Name(), Score: score, Weight: c.Weight(), Notes: notes,
		})
		num += score * c.Weight()
		den += c.Weight()
	}
	if den > 0 {
		out.Score = num / den
	}
	return out, nil
}
