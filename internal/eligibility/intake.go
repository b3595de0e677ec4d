package eligibility

import (
	"slices"
	"time"
)

// DonationHistory is the answer to "have you donated blood before?".
type DonationHistory string

const (
	DonatedUnanswered DonationHistory = ""
	DonatedYes        DonationHistory = "yes"
	DonatedNo         DonationHistory = "no"
)

func (h DonationHistory) Valid() bool {
	return h == DonatedYes || h == DonatedNo
}

// DonorIntake is the raw donor questionnaire. Vitals stay as the strings the
// donor typed; the evaluator owns their parsing.
type DonorIntake struct {
	Age           string
	WeightKg      string
	Hemoglobin    string
	BloodPressure string

	BloodGroup      BloodGroup
	BloodComponents []Component

	DonatedPreviously DonationHistory
	LastDonationDate  string

	Diseases         []Disease
	Medications      []Medication
	RecentProcedures []Procedure
	Surgeries        []Surgery
}

// Rule identifies the check that produced a reason.
type Rule string

const (
	RuleAge              Rule = "age"
	RuleWeight           Rule = "weight"
	RuleHemoglobin       Rule = "hemoglobin"
	RuleBloodPressure    Rule = "blood_pressure"
	RuleSystolic         Rule = "systolic"
	RuleDiastolic        Rule = "diastolic"
	RuleDonationInterval Rule = "donation_interval"
	RulePermanentDisease Rule = "permanent_disease"
	RuleTemporaryDisease Rule = "temporary_disease"
	RuleMedications      Rule = "medications"
	RuleProcedures       Rule = "procedures"
	RuleSurgeries        Rule = "surgeries"
)

// Verdict is the outcome of one evaluation. Rules[i] produced Reasons[i].
type Verdict struct {
	Eligible bool
	Reasons  []string
	Rules    []Rule

	// LastDonation is set when a previous donation date was parsed.
	LastDonation *time.Time
}

// NextEligibleDate reports when a repeat donor clears the donation interval.
// ok is false when no previous donation date is known.
func (v Verdict) NextEligibleDate() (time.Time, bool) {
	if v.LastDonation == nil {
		return time.Time{}, false
	}
	return NextEligibleDate(*v.LastDonation), true
}

// Failed reports whether the given rule contributed a reason.
func (v Verdict) Failed(rule Rule) bool {
	return slices.Contains(v.Rules, rule)
}
