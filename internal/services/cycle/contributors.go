package cycle

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"corengine/internal/domain"
	"corengine/internal/ports"
)

// RemediationContributor scores how well an organization keeps up with its
// open deficiencies: the share of open findings that are not overdue.
type RemediationContributor struct {
	Deficiencies ports.DeficiencyRepository
	Clock        clockwork.Clock
}

func (RemediationContributor) Name() string    { return "deficiency_remediation" }
func (RemediationContributor) Weight() float64 { return 1 }

func (r RemediationContributor) Score(ctx context.Context, orgID string) (float64, string, error) {
	open, err := r.Deficiencies.ListDeficiencies(ctx, orgID, ports.DeficiencyFilter{Status: domain.DeficiencyOpen})
	if err != nil {
		return 0, "", err
	}
	if len(open) == 0 {
		return 100, "no open deficiencies", nil
	}
	now := r.Clock.Now()
	overdue := 0
	for _, d := range open {
		if d.IsOverdue(now) {
			overdue++
		}
	}
	score := 100 * float64(len(open)-overdue) / float64(len(open))
	return score, fmt.Sprintf("%d of %d open deficiencies overdue", overdue, len(open)), nil
}
