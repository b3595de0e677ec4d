package donation

import (
	"time"

	"github.com/google/uuid"

	"community-seva/internal/eligibility"
)

const (
	ResultEligible = "eligible"
	ResultDeferred = "deferred"
)

// Screening is one evaluated intake. It lives for the duration of a request.
type Screening struct {
	ID         uuid.UUID
	BloodGroup eligibility.BloodGroup
	Components []eligibility.Component
	Verdict    eligibility.Verdict

	// NextEligibleDate is set for repeat donors still inside the interval.
	NextEligibleDate *time.Time

	EvaluatedAt time.Time
}

// Result is the outcome label used in logs and metrics.
func (s Screening) Result() string {
	if s.Verdict.Eligible {
		return ResultEligible
	}
	return ResultDeferred
}

func newScreening(in eligibility.DonorIntake, verdict eligibility.Verdict, evaluatedAt time.Time) *Screening {
	s := &Screening{
		ID:          uuid.New(),
		BloodGroup:  in.BloodGroup,
		Components:  in.BloodComponents,
		Verdict:     verdict,
		EvaluatedAt: evaluatedAt,
	}
	if verdict.Failed(eligibility.RuleDonationInterval) {
		if next, ok := verdict.NextEligibleDate(); ok {
			s.NextEligibleDate = &next
		}
	}
	return s
}
