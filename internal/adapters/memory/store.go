// Package memory is a process-local implementation of the store ports. It
// backs the test suites and STORE=memory development runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"corengine/internal/domain"
	"corengine/internal/ports"
)

type seqKey struct {
	org  string
	year int
}

// Store keeps every record kind behind one mutex, which makes each Mutate*
// call trivially atomic.
type Store struct {
	mu           sync.Mutex
	audits       map[string]domain.Audit
	certs        map[string]domain.Certificate
	auditors     map[string]domain.Auditor
	deficiencies map[string]domain.Deficiency
	seqs         map[seqKey]int
}

var _ ports.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		audits:       make(map[string]domain.Audit),
		certs:        make(map[string]domain.Certificate),
		auditors:     make(map[string]domain.Auditor),
		deficiencies: make(map[string]domain.Deficiency),
		seqs:         make(map[seqKey]int),
	}
}

// Audits

func (s *Store) CreateAudit(ctx context.Context, a *domain.Audit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.NewString()
	s.audits[a.ID] = *a
	return nil
}

func (s *Store) GetAudit(ctx context.Context, orgID, id string) (domain.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audit(orgID, id)
}

func (s *Store) audit(orgID, id string) (domain.Audit, error) {
	a, ok := s.audits[id]
	if !ok || a.OrganizationID != orgID {
		return domain.Audit{}, domain.ErrNotFound
	}
	return a, nil
}

func (s *Store) ListAudits(ctx context.Context, orgID string, f ports.AuditFilter) ([]domain.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Audit{}
	for _, a := range s.audits {
		if a.OrganizationID != orgID {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.After(out[j].ScheduledDate)
		}
		return out[i].AuditNumber > out[j].AuditNumber
	})
	return out, nil
}

func (s *Store) MutateAudit(ctx context.Context, orgID, id string, fn func(*domain.Audit) error) (domain.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.audit(orgID, id)
	if err != nil {
		return a, err
	}
	if err := fn(&a); err != nil {
		return domain.Audit{}, err
	}
	s.audits[id] = a
	return a, nil
}

func (s *Store) CloseOutAudit(ctx context.Context, orgID, id string, fn func(*domain.Audit) error) (domain.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.audit(orgID, id)
	if err != nil {
		return a, err
	}
	if err := fn(&a); err != nil {
		return domain.Audit{}, err
	}
	if a.LeadAuditorID != nil {
		au, err := s.auditor(orgID, *a.LeadAuditorID)
		if err != nil {
			return domain.Audit{}, err
		}
		au.CreditAudit()
		au.UpdatedAt = a.UpdatedAt
		s.auditors[au.ID] = au
	}
	s.audits[id] = a
	return a, nil
}

// NextAuditSequence seeds a fresh (org, year) counter from the highest
// audit number already stored, so imported audits are never reused.
func (s *Store) NextAuditSequence(ctx context.Context, orgID string, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := seqKey{orgID, year}
	if _, ok := s.seqs[k]; !ok {
		s.seqs[k] = s.maxSequence(orgID, year)
	}
	s.seqs[k]++
	return s.seqs[k], nil
}

// MaxAuditSequence returns the highest stored sequence for (org, year).
func (s *Store) MaxAuditSequence(ctx context.Context, orgID string, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxSequence(orgID, year), nil
}

func (s *Store) maxSequence(orgID string, year int) int {
	highest := 0
	for _, a := range s.audits {
		if a.OrganizationID != orgID {
			continue
		}
		y, seq, err := domain.ParseAuditNumber(a.AuditNumber)
		if err == nil && y == year && seq > highest {
			highest = seq
		}
	}
	return highest
}

// Certificates

func (s *Store) IssueCertificate(ctx context.Context, c *domain.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var linked domain.Audit
	if c.CertificationAuditID != nil {
		a, err := s.audit(c.OrganizationID, *c.CertificationAuditID)
		if err != nil {
			return err
		}
		if err := domain.CheckIssuingAudit(a); err != nil {
			return err
		}
		linked = a
	}
	c.ID = uuid.NewString()
	s.certs[c.ID] = *c
	if linked.ID != "" {
		id := c.ID
		linked.CertificateID = &id
		s.audits[linked.ID] = linked
	}
	return nil
}

func (s *Store) GetCertificate(ctx context.Context, orgID, id string) (domain.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.certificate(orgID, id)
}

func (s *Store) certificate(orgID, id string) (domain.Certificate, error) {
	c, ok := s.certs[id]
	if !ok || c.OrganizationID != orgID {
		return domain.Certificate{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListCertificates(ctx context.Context, orgID string) ([]domain.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Certificate{}
	for _, c := range s.certs {
		if c.OrganizationID == orgID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssueDate.After(out[j].IssueDate) })
	return out, nil
}

func (s *Store) LatestCertificate(ctx context.Context, orgID string, t domain.CORType) (domain.Certificate, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest domain.Certificate
	found := false
	for _, c := range s.certs {
		if c.OrganizationID != orgID || c.CORType != t || c.Status == domain.CertificateRevoked {
			continue
		}
		if !found || c.IssueDate.After(latest.IssueDate) {
			latest, found = c, true
		}
	}
	return latest, found, nil
}

func (s *Store) MutateCertificate(ctx context.Context, orgID, id string, fn func(*domain.Certificate) error) (domain.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.certificate(orgID, id)
	if err != nil {
		return c, err
	}
	if err := fn(&c); err != nil {
		return domain.Certificate{}, err
	}
	s.certs[id] = c
	return c, nil
}

// Auditors

func (s *Store) CreateAuditor(ctx context.Context, a *domain.Auditor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.NewString()
	s.auditors[a.ID] = *a
	return nil
}

func (s *Store) GetAuditor(ctx context.Context, orgID, id string) (domain.Auditor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auditor(orgID, id)
}

func (s *Store) auditor(orgID, id string) (domain.Auditor, error) {
	a, ok := s.auditors[id]
	if !ok || a.OrganizationID != orgID {
		return domain.Auditor{}, domain.ErrNotFound
	}
	return a, nil
}

func (s *Store) ListAuditors(ctx context.Context, orgID string) ([]domain.Auditor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Auditor{}
	for _, a := range s.auditors {
		if a.OrganizationID == orgID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) MutateAuditor(ctx context.Context, orgID, id string, fn func(*domain.Auditor) error) (domain.Auditor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.auditor(orgID, id)
	if err != nil {
		return a, err
	}
	if err := fn(&a); err != nil {
		return domain.Auditor{}, err
	}
	s.auditors[id] = a
	return a, nil
}

// Deficiencies

func (s *Store) CreateDeficiency(ctx context.Context, d *domain.Deficiency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = uuid.NewString()
	s.deficiencies[d.ID] = *d
	return nil
}

func (s *Store) GetDeficiency(ctx context.Context, orgID, id string) (domain.Deficiency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deficiency(orgID, id)
}

func (s *Store) deficiency(orgID, id string) (domain.Deficiency, error) {
	d, ok := s.deficiencies[id]
	if !ok || d.OrganizationID != orgID {
		return domain.Deficiency{}, domain.ErrNotFound
	}
	return d, nil
}

func (s *Store) ListDeficiencies(ctx context.Context, orgID string, f ports.DeficiencyFilter) ([]domain.Deficiency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Deficiency{}
	for _, d := range s.deficiencies {
		if d.OrganizationID != orgID {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.AuditID != "" && d.AuditID != f.AuditID {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) MutateDeficiency(ctx context.Context, orgID, id string, fn func(*domain.Deficiency) error) (domain.Deficiency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.deficiency(orgID, id)
	if err != nil {
		return d, err
	}
	if err := fn(&d); err != nil {
		return domain.Deficiency{}, err
	}
	s.deficiencies[id] = d
	return d, nil
}
