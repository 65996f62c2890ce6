package domain

import "time"

// CheckIssuingAudit verifies that a certificate may be issued from a.
func CheckIssuingAudit(a Audit) error {
	if !a.Type.IssuesCertificate() {
		return Preconditionf("a %s audit cannot issue a certificate", a.Type)
	}
	if a.Status != AuditPassed {
		return Preconditionf("audit %s has status %s; only a passed audit can issue a certificate", a.AuditNumber, a.Status)
	}
	if a.CertificateID != nil {
		return Preconditionf("audit %s already issued certificate %s", a.AuditNumber, *a.CertificateID)
	}
	return nil
}

// Revoke stores the revocation. It is the only status ever persisted.
func (c *Certificate) Revoke(reason string, at time.Time) error {
	if c.Status == CertificateRevoked {
		return Preconditionf("certificate is already revoked")
	}
	c.Status = CertificateRevoked
	c.RevocationReason = &reason
	c.RevokedAt = &at
	return nil
}
