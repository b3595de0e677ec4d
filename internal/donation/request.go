package donation

import (
	"fmt"
	"strings"

	"community-seva/internal/eligibility"
	"community-seva/internal/platform/sentinel"
)

// IntakeRequest is the HTTP body of the donor questionnaire.
type IntakeRequest struct {
	Age           string `json:"age"`
	WeightKg      string `json:"weight_kg"`
	Hemoglobin    string `json:"hemoglobin"`
	BloodPressure string `json:"blood_pressure"`

	BloodGroup      string   `json:"blood_group"`
	BloodComponents []string `json:"blood_components"`

	HasDonatedPreviously string `json:"has_donated_previously"`
	LastDonationDate     string `json:"last_donation_date"`

	Diseases         []string `json:"diseases"`
	Medications      []string `json:"medications"`
	RecentProcedures []string `json:"recent_procedures"`
	Surgeries        []string `json:"surgeries"`
}

// Validate applies the form's completeness checks and catalog membership.
// Vitals are only required here; their values are judged by the evaluator.
func (r *IntakeRequest) Validate() error {
	verr := &sentinel.ValidationError{}
	if r == nil {
		verr.Add("body", "request body is required")
		return verr
	}

	if strings.TrimSpace(r.Age) == "" {
		verr.Add("age", "Age is required")
	}
	if strings.TrimSpace(r.WeightKg) == "" {
		verr.Add("weight_kg", "Weight is required")
	}
	if strings.TrimSpace(r.Hemoglobin) == "" {
		verr.Add("hemoglobin", "Hb is required")
	}
	if strings.TrimSpace(r.BloodPressure) == "" {
		verr.Add("blood_pressure", "BP is required")
	}

	switch group := eligibility.BloodGroup(r.BloodGroup); {
	case r.BloodGroup == "":
		verr.Add("blood_group", "Blood group is required")
	case !group.Valid():
		verr.Add("blood_group", fmt.Sprintf("Unknown blood group %q", r.BloodGroup))
	}

	switch history := eligibility.DonationHistory(r.HasDonatedPreviously); {
	case !history.Valid():
		verr.Add("has_donated_previously", "Please select an option")
	case history == eligibility.DonatedYes && strings.TrimSpace(r.LastDonationDate) == "":
		verr.Add("last_donation_date", "Last donation date is required")
	}

	checkCatalog(verr, "blood_components", r.BloodComponents, eligibility.Component.Valid)
	checkCatalog(verr, "diseases", r.Diseases, eligibility.Disease.Valid)
	checkCatalog(verr, "medications", r.Medications, eligibility.Medication.Valid)
	checkCatalog(verr, "recent_procedures", r.RecentProcedures, eligibility.Procedure.Valid)
	checkCatalog(verr, "surgeries", r.Surgeries, eligibility.Surgery.Valid)

	return verr.ErrOrNil()
}

func checkCatalog[T ~string](verr *sentinel.ValidationError, field string, values []string, valid func(T) bool) {
	for _, v := range values {
		if !valid(T(v)) {
			verr.Add(field, fmt.Sprintf("Unknown option %q", v))
			return
		}
	}
}

// ToIntake builds the evaluator input. The last donation date only travels
// with a "yes" answer, and repeated selections collapse to one.
func (r *IntakeRequest) ToIntake() eligibility.DonorIntake {
	history := eligibility.DonationHistory(r.HasDonatedPreviously)
	lastDonation := ""
	if history == eligibility.DonatedYes {
		lastDonation = r.LastDonationDate
	}

	return eligibility.DonorIntake{
		Age:               r.Age,
		WeightKg:          r.WeightKg,
		Hemoglobin:        r.Hemoglobin,
		BloodPressure:     r.BloodPressure,
		BloodGroup:        eligibility.BloodGroup(r.BloodGroup),
		BloodComponents:   selection[eligibility.Component](r.BloodComponents),
		DonatedPreviously: history,
		LastDonationDate:  lastDonation,
		Diseases:          selection[eligibility.Disease](r.Diseases),
		Medications:       selection[eligibility.Medication](r.Medications),
		RecentProcedures:  selection[eligibility.Procedure](r.RecentProcedures),
		Surgeries:         selection[eligibility.Surgery](r.Surgeries),
	}
}

// selection converts checklist values, dropping repeats but keeping order.
func selection[T ~string](values []string) []T {
	out := make([]T, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, T(v))
	}
	return out
}
