package domain

import "time"

// Read models. Each carries the stored record plus the values derived from
// it at read time; they are rebuilt on every read.

type CertificateView struct {
	Certificate
	CalculatedStatus CertificateStatusValue `json:"calculatedStatus"`
	DaysUntilExpiry  int                    `json:"daysUntilExpiry"`
}

func ViewCertificate(c Certificate, now time.Time) CertificateView {
	return CertificateView{
		Certificate:      c,
		CalculatedStatus: CertificateStatus(c, now),
		DaysUntilExpiry:  DaysUntilExpiry(c, now),
	}
}

type AuditorView struct {
	Auditor
	CalculatedStatus     AuditorStatusValue `json:"calculatedStatus"`
	MinTrainingHours     float64            `json:"minTrainingHours"`
	MeetsPracticeMinimum bool               `json:"meetsPracticeMinimum"`
}

func ViewAuditor(a Auditor, now time.Time) AuditorView {
	return AuditorView{
		Auditor:              a,
		CalculatedStatus:     AuditorStatus(a, now),
		MinTrainingHours:     a.Type.MinTrainingHours(),
		MeetsPracticeMinimum: a.MeetsPracticeMinimum(),
	}
}

type DeficiencyView struct {
	Deficiency
	Overdue      bool `json:"overdue"`
	DaysUntilDue int  `json:"daysUntilDue"`
}

func ViewDeficiency(d Deficiency, now time.Time) DeficiencyView {
	return DeficiencyView{Deficiency: d, Overdue: d.IsOverdue(now), DaysUntilDue: d.DaysUntilDue(now)}
}
