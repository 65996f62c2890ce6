package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCertificateStatus(t *testing.T) {
	issued := date(2024, 1, 15)
	cert := Certificate{Status: CertificateActive, IssueDate: issued, ExpiryDate: ExpiryFor(issued)}
	require.Equal(t, date(2027, 1, 15), cert.ExpiryDate)

	cases := []struct {
		name string
		now  time.Time
		want CertificateStatusValue
	}{
		{"well before expiry", date(2026, 6, 1), CertificateActive},
		{"91 days out", cert.ExpiryDate.AddDate(0, 0, -91), CertificateActive},
		{"exactly 90 days out", cert.ExpiryDate.AddDate(0, 0, -90), CertificateExpiring},
		{"inside window", date(2026, 11, 1), CertificateExpiring},
		{"at expiry instant", cert.ExpiryDate, CertificateExpiring},
		{"past expiry", cert.ExpiryDate.Add(time.Second), CertificateExpired},
		{"long expired", date(2030, 1, 1), CertificateExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CertificateStatus(cert, tc.now))
		})
	}
}

func TestCertificateStatusRevokedWins(t *testing.T) {
	issued := date(2024, 1, 15)
	cert := Certificate{Status: CertificateRevoked, IssueDate: issued, ExpiryDate: ExpiryFor(issued)}
	for _, now := range []time.Time{date(2024, 2, 1), date(2026, 12, 1), date(2031, 1, 1)} {
		require.Equal(t, CertificateRevoked, CertificateStatus(cert, now))
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	cert := Certificate{ExpiryDate: date(2027, 1, 15)}
	require.Equal(t, 10, DaysUntilExpiry(cert, date(2027, 1, 5)))
	require.Equal(t, 1, DaysUntilExpiry(cert, date(2027, 1, 14).Add(12*time.Hour)))
	require.Equal(t, 0, DaysUntilExpiry(cert, date(2027, 1, 15)))
	require.Equal(t, -3, DaysUntilExpiry(cert, date(2027, 1, 18)))
}

func TestAuditorStatus(t *testing.T) {
	due := RecertificationDueFor(date(2023, 3, 1))
	require.Equal(t, date(2026, 3, 1), due)

	active := Auditor{Status: AuditorActive, RecertificationDue: &due}
	require.Equal(t, AuditorActive, AuditorStatus(active, date(2026, 2, 28)))
	require.Equal(t, AuditorActive, AuditorStatus(active, due), "due date itself is not yet expired")
	require.Equal(t, AuditorExpired, AuditorStatus(active, date(2026, 3, 2)))

	inactive := Auditor{Status: AuditorInactive, RecertificationDue: &due}
	require.Equal(t, AuditorInactive, AuditorStatus(inactive, date(2025, 1, 1)))
	require.Equal(t, AuditorInactive, AuditorStatus(inactive, date(2027, 1, 1)))

	noDue := Auditor{Status: AuditorActive}
	require.Equal(t, AuditorActive, AuditorStatus(noDue, date(2040, 1, 1)))
}

func TestMeetsPracticeMinimum(t *testing.T) {
	require.False(t, Auditor{AuditsThisCertification: 1}.MeetsPracticeMinimum())
	require.True(t, Auditor{AuditsThisCertification: 2}.MeetsPracticeMinimum())
	require.False(t, Auditor{AuditsCompleted: 9}.MeetsPracticeMinimum(), "lifetime audits do not count")

	a := Auditor{CertifiedDate: date(2023, 6, 1)}
	a.CreditAudit()
	a.CreditAudit()
	require.True(t, a.MeetsPracticeMinimum())

	a.Recertify(date(2023, 6, 1))
	require.Equal(t, 2, a.AuditsThisCertification, "same date keeps the period")

	a.Recertify(date(2026, 6, 1))
	require.Equal(t, 2, a.AuditsCompleted)
	require.Zero(t, a.AuditsThisCertification)
	require.False(t, a.MeetsPracticeMinimum())
	require.Equal(t, date(2029, 6, 1), *a.RecertificationDue)
}

func TestDeficiencyDue(t *testing.T) {
	opened := date(2026, 3, 1)
	require.Equal(t, date(2026, 3, 8), DueDateFor(SeverityCritical, opened))
	require.Equal(t, date(2026, 3, 15), DueDateFor(SeverityMajor, opened))
	require.Equal(t, date(2026, 3, 31), DueDateFor(SeverityMinor, opened))

	d := Deficiency{Status: DeficiencyOpen, DueDate: date(2026, 3, 8)}
	require.False(t, d.IsOverdue(date(2026, 3, 8)))
	require.True(t, d.IsOverdue(date(2026, 3, 9)))
	require.Equal(t, -1, d.DaysUntilDue(date(2026, 3, 9)))

	d.Status = DeficiencyClosed
	require.False(t, d.IsOverdue(date(2026, 4, 1)), "closed findings are never overdue")
}

func TestDeficiencyClose(t *testing.T) {
	d := Deficiency{Status: DeficiencyOpen}
	at := date(2026, 3, 5)
	require.NoError(t, d.Close("j.doe", "guard installed", nil, at))
	require.Equal(t, DeficiencyClosed, d.Status)
	require.Equal(t, at, *d.ClosedAt)
	require.Equal(t, "j.doe", *d.ClosedBy)

	err := d.Close("j.doe", "", nil, at)
	require.Error(t, err)
	require.True(t, IsPrecondition(err))
}
