package httpadapter

import (
	"context"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	api "corengine/internal/api"
	"corengine/internal/domain"
	"corengine/internal/ports"
)

func dateTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// corType reads an optional corType query parameter, defaulting to OHS.
func corType(p *api.CORType) (domain.CORType, error) {
	if p == nil || *p == "" {
		return domain.CORTypeOHS, nil
	}
	if !p.Valid() {
		return "", badRequest("unknown corType " + string(*p))
	}
	return *p, nil
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) ListElements(ctx context.Context, _ api.ListElementsRequestObject) (api.ListElementsResponseObject, error) {
	els := domain.Elements()
	return api.ListElements200JSONResponse(els[:]), nil
}

// Audits

func (s *Server) ScheduleAudit(ctx context.Context, req api.ScheduleAuditRequestObject) (api.ScheduleAuditResponseObject, error) {
	b := req.Body
	a, err := s.audits.Schedule(ctx, req.OrgID, ports.ScheduleAudit{
		Type:          b.AuditType,
		ScheduledDate: b.ScheduledDate.Time,
		Notes:         str(b.Notes),
		LeadAuditorID: b.LeadAuditorId,
	})
	if err != nil {
		return nil, err
	}
	return api.ScheduleAudit201JSONResponse(a), nil
}

func (s *Server) ListAudits(ctx context.Context, req api.ListAuditsRequestObject) (api.ListAuditsResponseObject, error) {
	var f ports.AuditFilter
	if t := req.Params.Type; t != nil {
		if !t.Valid() {
			return nil, badRequest("unknown audit type " + string(*t))
		}
		f.Type = *t
	}
	if st := req.Params.Status; st != nil {
		if !st.Valid() {
			return nil, badRequest("unknown audit status " + string(*st))
		}
		f.Status = *st
	}
	list, err := s.audits.List(ctx, req.OrgID, f)
	if err != nil {
		return nil, err
	}
	return api.ListAudits200JSONResponse(list), nil
}

func (s *Server) GetAudit(ctx context.Context, req api.GetAuditRequestObject) (api.GetAuditResponseObject, error) {
	a, err := s.audits.Get(ctx, req.OrgID, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetAudit200JSONResponse(a), nil
}

func (s *Server) UpdateAudit(ctx context.Context, req api.UpdateAuditRequestObject) (api.UpdateAuditResponseObject, error) {
	b := req.Body
	a, err := s.audits.UpdateDetails(ctx, req.OrgID, req.Id, ports.UpdateAuditDetails{
		ScheduledDate: dateTime(b.ScheduledDate),
		Notes:         b.Notes,
		LeadAuditorID: b.LeadAuditorId,
		Status:        b.Status,
	})
	if err != nil {
		return nil, err
	}
	return api.UpdateAudit200JSONResponse(a), nil
}

func (s *Server) UpdateAuditScores(ctx context.Context, req api.UpdateAuditScoresRequestObject) (api.UpdateAuditScoresResponseObject, error) {
	a, err := s.audits.UpdateElementScores(ctx, req.OrgID, req.Id, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.UpdateAuditScores200JSONResponse(a), nil
}

func (s *Server) CompleteAudit(ctx context.Context, req api.CompleteAuditRequestObject) (api.CompleteAuditResponseObject, error) {
	b := req.Body
	a, err := s.audits.Complete(ctx, req.OrgID, req.Id, ports.CompleteAudit{
		OverallScore:  b.OverallScore,
		Passed:        b.Passed,
		CompletedDate: dateTime(b.CompletedDate),
		Notes:         str(b.Notes),
	})
	if err != nil {
		return nil, err
	}
	return api.CompleteAudit200JSONResponse(a), nil
}

// Certificates

func (s *Server) IssueCertificate(ctx context.Context, req api.IssueCertificateRequestObject) (api.IssueCertificateResponseObject, error) {
	b := req.Body
	c, err := s.certificates.Issue(ctx, req.OrgID, ports.IssueCertificate{
		CORType:              b.CorType,
		IssueDate:            dateTime(b.IssueDate),
		CertificationAuditID: b.CertificationAuditId,
	})
	if err != nil {
		return nil, err
	}
	return api.IssueCertificate201JSONResponse(c), nil
}

func (s *Server) ListCertificates(ctx context.Context, req api.ListCertificatesRequestObject) (api.ListCertificatesResponseObject, error) {
	list, err := s.certificates.List(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}
	return api.ListCertificates200JSONResponse(list), nil
}

func (s *Server) GetActiveCertificate(ctx context.Context, req api.GetActiveCertificateRequestObject) (api.GetActiveCertificateResponseObject, error) {
	t, err := corType(req.Params.CorType)
	if err != nil {
		return nil, err
	}
	c, err := s.certificates.GetActive(ctx, req.OrgID, t)
	if err != nil {
		return nil, err
	}
	return api.GetActiveCertificate200JSONResponse(c), nil
}

func (s *Server) GetCertificate(ctx context.Context, req api.GetCertificateRequestObject) (api.GetCertificateResponseObject, error) {
	c, err := s.certificates.Get(ctx, req.OrgID, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetCertificate200JSONResponse(c), nil
}

func (s *Server) RevokeCertificate(ctx context.Context, req api.RevokeCertificateRequestObject) (api.RevokeCertificateResponseObject, error) {
	c, err := s.certificates.Revoke(ctx, req.OrgID, req.Id, req.Body.Reason)
	if err != nil {
		return nil, err
	}
	return api.RevokeCertificate200JSONResponse(c), nil
}

// Auditors

func (s *Server) RegisterAuditor(ctx context.Context, req api.RegisterAuditorRequestObject) (api.RegisterAuditorResponseObject, error) {
	b := req.Body
	a, err := s.auditors.Register(ctx, req.OrgID, ports.RegisterAuditor{
		Type:                b.AuditorType,
		Name:                b.Name,
		Email:               str(b.Email),
		Phone:               str(b.Phone),
		CertificationNumber: b.CertificationNumber,
		CertifiedDate:       b.CertifiedDate.Time,
		TrainingHours:       b.TrainingHours,
	})
	if err != nil {
		return nil, err
	}
	return api.RegisterAuditor201JSONResponse(a), nil
}

func (s *Server) ListAuditors(ctx context.Context, req api.ListAuditorsRequestObject) (api.ListAuditorsResponseObject, error) {
	list, err := s.auditors.List(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}
	return api.ListAuditors200JSONResponse(list), nil
}

func (s *Server) GetAuditor(ctx context.Context, req api.GetAuditorRequestObject) (api.GetAuditorResponseObject, error) {
	a, err := s.auditors.Get(ctx, req.OrgID, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetAuditor200JSONResponse(a), nil
}

func (s *Server) UpdateAuditor(ctx context.Context, req api.UpdateAuditorRequestObject) (api.UpdateAuditorResponseObject, error) {
	b := req.Body
	a, err := s.auditors.Update(ctx, req.OrgID, req.Id, ports.UpdateAuditor{
		Type:                b.AuditorType,
		Name:                b.Name,
		Email:               b.Email,
		Phone:               b.Phone,
		CertificationNumber: b.CertificationNumber,
		CertifiedDate:       dateTime(b.CertifiedDate),
		TrainingHours:       b.TrainingHours,
		Status:              b.Status,
	})
	if err != nil {
		return nil, err
	}
	return api.UpdateAuditor200JSONResponse(a), nil
}

func (s *Server) RecordAuditorAudit(ctx context.Context, req api.RecordAuditorAuditRequestObject) (api.RecordAuditorAuditResponseObject, error) {
	a, err := s.auditors.RecordAudit(ctx, req.OrgID, req.Id)
	if err != nil {
		return nil, err
	}
	return api.RecordAuditorAudit200JSONResponse(a), nil
}

// Deficiencies

func (s *Server) OpenDeficiency(ctx context.Context, req api.OpenDeficiencyRequestObject) (api.OpenDeficiencyResponseObject, error) {
	d, err := s.deficiencies.Open(ctx, req.OrgID, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.OpenDeficiency201JSONResponse(d), nil
}

func (s *Server) ListDeficiencies(ctx context.Context, req api.ListDeficienciesRequestObject) (api.ListDeficienciesResponseObject, error) {
	f := ports.DeficiencyFilter{AuditID: str(req.Params.AuditId)}
	if st := req.Params.Status; st != nil {
		if *st != domain.DeficiencyOpen && *st != domain.DeficiencyClosed {
			return nil, badRequest("unknown deficiency status " + string(*st))
		}
		f.Status = *st
	}
	list, err := s.deficiencies.List(ctx, req.OrgID, f)
	if err != nil {
		return nil, err
	}
	return api.ListDeficiencies200JSONResponse(list), nil
}

func (s *Server) ListOpenDeficiencies(ctx context.Context, req api.ListOpenDeficienciesRequestObject) (api.ListOpenDeficienciesResponseObject, error) {
	list, err := s.deficiencies.ListOpen(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}
	return api.ListOpenDeficiencies200JSONResponse(list), nil
}

func (s *Server) GetDeficiency(ctx context.Context, req api.GetDeficiencyRequestObject) (api.GetDeficiencyResponseObject, error) {
	d, err := s.deficiencies.Get(ctx, req.OrgID, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetDeficiency200JSONResponse(d), nil
}

func (s *Server) UpdateDeficiency(ctx context.Context, req api.UpdateDeficiencyRequestObject) (api.UpdateDeficiencyResponseObject, error) {
	d, err := s.deficiencies.Update(ctx, req.OrgID, req.Id, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.UpdateDeficiency200JSONResponse(d), nil
}

func (s *Server) CloseDeficiency(ctx context.Context, req api.CloseDeficiencyRequestObject) (api.CloseDeficiencyResponseObject, error) {
	d, err := s.deficiencies.Close(ctx, req.OrgID, req.Id, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CloseDeficiency200JSONResponse(d), nil
}

// Cycle

func (s *Server) GetCycle(ctx context.Context, req api.GetCycleRequestObject) (api.GetCycleResponseObject, error) {
	t, err := corType(req.Params.CorType)
	if err != nil {
		return nil, err
	}
	st, err := s.cycle.Project(ctx, req.OrgID, t)
	if err != nil {
		return nil, err
	}
	return api.GetCycle200JSONResponse(st), nil
}

func (s *Server) GetReadiness(ctx context.Context, req api.GetReadinessRequestObject) (api.GetReadinessResponseObject, error) {
	rd, err := s.cycle.Readiness(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}
	return api.GetReadiness200JSONResponse(rd), nil
}
