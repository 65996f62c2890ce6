package certificates

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"corengine/internal/domain"
	"corengine/internal/ports"
	"corengine/internal/telemetry"
)

const module = "certificates"

// Service issues and revokes COR certificates. Visible statuses are derived
// on every read; only revocation is stored.
type Service struct {
	certs ports.CertificateRepository
	clock clockwork.Clock
	log   logrus.FieldLogger
}

func New(certs ports.CertificateRepository, clock clockwork.Clock, log logrus.FieldLogger) *Service {
	return &Service{certs: certs, clock: clock, log: log}
}

// Issue creates a certificate valid for three years from its issue date.
// When an originating audit is given, the audit is back-linked to the new
// certificate in the same store transaction.
func (s *Service) Issue(ctx context.Context, orgID string, in ports.IssueCertificate) (out domain.CertificateView, err error) {
	ctx, span := telemetry.Start(ctx, "certificates.Issue", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if err := domain.Validate(in); err != nil {
		return out, err
	}
	now := s.clock.Now().UTC()
	issued := now
	if in.IssueDate != nil {
		issued = in.IssueDate.UTC()
	}
	c := domain.Certificate{
		OrganizationID:       orgID,
		CORType:              in.CORType,
		IssueDate:            issued,
		ExpiryDate:           domain.ExpiryFor(issued),
		CertificationAuditID: in.CertificationAuditID,
		CreatedAt:            now,
	}
	if err := s.certs.IssueCertificate(ctx, &c); err != nil {
		return out, domain.WrapOp("issue certificate", err)
	}
	telemetry.Op(s.log, module, "Issue", orgID).WithFields(logrus.Fields{
		"certificate_id": c.ID,
		"cor_type":       c.CORType,
		"expiry_date":    c.ExpiryDate,
	}).Info("certificate issued")
	return domain.ViewCertificate(c, now), nil
}

func (s *Service) Revoke(ctx context.Context, orgID, id, reason string) (out domain.CertificateView, err error) {
	ctx, span := telemetry.Start(ctx, "certificates.Revoke", orgID)
	defer func() { telemetry.Finish(span, err) }()

	if reason == "" {
		return out, domain.Preconditionf("a revocation reason is required")
	}
	now := s.clock.Now().UTC()
	c, err := s.certs.MutateCertificate(ctx, orgID, id, func(c *domain.Certificate) error {
		return c.Revoke(reason, now)
	})
	if err != nil {
		return out, domain.WrapOp("revoke certificate", err)
	}
	telemetry.Op(s.log, module, "Revoke", orgID).WithField("certificate_id", id).Warn("certificate revoked")
	return domain.ViewCertificate(c, now), nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.CertificateView, error) {
	c, err := s.certs.GetCertificate(ctx, orgID, id)
	if err != nil {
		return domain.CertificateView{}, fmt.Errorf("get certificate: %w", err)
	}
	return domain.ViewCertificate(c, s.clock.Now()), nil
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.CertificateView, error) {
	list, err := s.certs.ListCertificates(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	now := s.clock.Now()
	out := make([]domain.CertificateView, 0, len(list))
	for _, c := range list {
		out = append(out, domain.ViewCertificate(c, now))
	}
	return out, nil
}

// GetActive returns the most recently issued unrevoked certificate of the
// type. Its derived status may still be expiring or expired.
func (s *Service) GetActive(ctx context.Context, orgID string, t domain.CORType) (domain.CertificateView, error) {
	if !t.Valid() {
		return domain.CertificateView{}, domain.Preconditionf("unknown COR type %q", t)
	}
	c, found, err := s.certs.LatestCertificate(ctx, orgID, t)
	if err != nil {
		return domain.CertificateView{}, fmt.Errorf("get active certificate: %w", err)
	}
	if !found {
		return domain.CertificateView{}, fmt.Errorf("get active certificate: %w", domain.ErrNotFound)
	}
	return domain.ViewCertificate(c, s.clock.Now()), nil
}
