package donation

import (
	"time"

	"community-seva/internal/eligibility"
)

// ScreeningResponse is the HTTP response for an eligibility check.
type ScreeningResponse struct {
	ScreeningID      string    `json:"screening_id"`
	Eligible         bool      `json:"eligible"`
	Reasons          []string  `json:"reasons"`
	NextEligibleDate string    `json:"next_eligible_date,omitempty"`
	EvaluatedAt      time.Time `json:"evaluated_at"`
}

func FromScreening(s *Screening) *ScreeningResponse {
	resp := &ScreeningResponse{
		ScreeningID: s.ID.String(),
		Eligible:    s.Verdict.Eligible,
		Reasons:     s.Verdict.Reasons,
		EvaluatedAt: s.EvaluatedAt,
	}
	if resp.Reasons == nil {
		resp.Reasons = []string{}
	}
	if s.NextEligibleDate != nil {
		resp.NextEligibleDate = s.NextEligibleDate.Format(time.DateOnly)
	}
	return resp
}

// CatalogResponse lists every closed set the intake form draws from.
type CatalogResponse struct {
	BloodGroups       []eligibility.BloodGroup `json:"blood_groups"`
	BloodComponents   []eligibility.Component  `json:"blood_components"`
	PermanentDiseases []eligibility.Disease    `json:"permanent_diseases"`
	TemporaryDiseases []eligibility.Disease    `json:"temporary_diseases"`
	Medications       []eligibility.Medication `json:"medications"`
	Procedures        []eligibility.Procedure  `json:"recent_procedures"`
	Surgeries         []eligibility.Surgery    `json:"surgeries"`
}

func Catalog() *CatalogResponse {
	return &CatalogResponse{
		BloodGroups:       eligibility.BloodGroups(),
		BloodComponents:   eligibility.Components(),
		PermanentDiseases: eligibility.PermanentDiseases(),
		TemporaryDiseases: eligibility.TemporaryDiseases(),
		Medications:       eligibility.Medications(),
		Procedures:        eligibility.Procedures(),
		Surgeries:         eligibility.Surgeries(),
	}
}
