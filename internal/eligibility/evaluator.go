package eligibility

import (
	"fmt"
	"strings"
	"time"
)

// Screening thresholds.
const (
	MinAge            = 18
	MaxAge            = 65
	MinWeightKg       = 50.0
	MinHemoglobin     = 12.5
	MinSystolic       = 90
	MaxSystolic       = 180
	MinDiastolic      = 50
	MaxDiastolic      = 100
	DonationGapInDays = 90
)

// Fixed reason texts. List-bearing reasons are built in the rules below.
const (
	ReasonAge                 = "Age must be between 18 and 65 years."
	ReasonWeight              = "Weight must be at least 50 kg."
	ReasonHemoglobin          = "Haemoglobin (Hb) level must be at least 12.5 g/dL."
	ReasonBloodPressureFormat = "Blood pressure (BP) must be in the format 120/80."
	ReasonSystolic            = "Systolic BP must be between 90 and 180 mmHg."
	ReasonDiastolic           = "Diastolic BP must be between 50 and 100 mmHg."
	ReasonLastDonationMissing = "Last donation date is required if you have donated previously."
	ReasonLastDonationInvalid = "Last donation date format is invalid."
	ReasonDonationInterval    = "You must wait at least 3 months (90 days) between donations."
	ReasonPermanentDisease    = "You have a medical condition (e.g. heart disease, cancer, hepatitis, kidney disease, epilepsy, or abnormal bleeding) that makes you ineligible to donate blood."
	temporaryDiseaseReasonFmt = "Recent or ongoing illnesses detected: %s. You should wait until fully recovered and the required waiting period is over before donating."
	medicationsReasonFmt      = "You have taken the following in the past 72 hours: %s. This may temporarily defer you from donating blood."
	proceduresReasonFmt       = "Recent procedures detected: %s. After tattooing, ear piercing or dental extraction, you usually need to wait up to 6 months before donating."
	surgeriesReasonFmt        = "Recent surgery or blood transfusion detected: %s. This usually causes temporary deferral from blood donation."
)

const day = 24 * time.Hour

// NextEligibleDate is the first moment a donor who last gave blood at last
// may donate again.
func NextEligibleDate(last time.Time) time.Time {
	return last.Add(DonationGapInDays * day)
}

// Evaluator screens donor intakes against the blood donation rules.
type Evaluator struct {
	now func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock overrides the time source used for the donation interval rule.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate screens the intake as of the evaluator's current time.
func (e *Evaluator) Evaluate(in DonorIntake) Verdict {
	return Evaluate(in, e.now())
}

// Evaluate applies every rule to the intake, in order, without stopping at
// the first failure. It never panics: malformed input fails its own rule.
// This is pure domain logic; now is the reference for the donation interval.
func Evaluate(in DonorIntake, now time.Time) Verdict {
	v := &verdictBuilder{}

	checkAge(v, in)
	checkWeight(v, in)
	checkHemoglobin(v, in)
	checkBloodPressure(v, in)
	checkDonationInterval(v, in, now)
	checkDiseases(v, in)
	checkMedications(v, in)
	checkProcedures(v, in)
	checkSurgeries(v, in)

	return v.build()
}

type verdictBuilder struct {
	reasons      []string
	rules        []Rule
	lastDonation *time.Time
}

func (b *verdictBuilder) fail(rule Rule, reason string) {
	b.rules = append(b.rules, rule)
	b.reasons = append(b.reasons, reason)
}

func (b *verdictBuilder) build() Verdict {
	reasons := b.reasons
	if reasons == nil {
		reasons = []string{}
	}
	return Verdict{
		Eligible:     len(reasons) == 0,
		Reasons:      reasons,
		Rules:        b.rules,
		LastDonation: b.lastDonation,
	}
}

func checkAge(v *verdictBuilder, in DonorIntake) {
	age, ok := ParseLeadingInt(in.Age)
	if !ok || age < MinAge || age > MaxAge {
		v.fail(RuleAge, ReasonAge)
	}
}

func checkWeight(v *verdictBuilder, in DonorIntake) {
	weight, ok := ParseLeadingFloat(in.WeightKg)
	if !ok || weight < MinWeightKg {
		v.fail(RuleWeight, ReasonWeight)
	}
}

// checkHemoglobin reads only the first numeric token, so "23/9" passes as 23.
func checkHemoglobin(v *verdictBuilder, in DonorIntake) {
	hb, ok := ExtractHemoglobin(in.Hemoglobin)
	if !ok || hb < MinHemoglobin {
		v.fail(RuleHemoglobin, ReasonHemoglobin)
	}
}

// checkBloodPressure skips the range checks when the reading is malformed.
func checkBloodPressure(v *verdictBuilder, in DonorIntake) {
	systolic, diastolic, ok := ParseBloodPressure(in.BloodPressure)
	if !ok {
		v.fail(RuleBloodPressure, ReasonBloodPressureFormat)
		return
	}
	if systolic < MinSystolic || systolic > MaxSystolic {
		v.fail(RuleSystolic, ReasonSystolic)
	}
	if diastolic < MinDiastolic || diastolic > MaxDiastolic {
		v.fail(RuleDiastolic, ReasonDiastolic)
	}
}

func checkDonationInterval(v *verdictBuilder, in DonorIntake, now time.Time) {
	if in.DonatedPreviously != DonatedYes {
		return
	}
	if in.LastDonationDate == "" {
		v.fail(RuleDonationInterval, ReasonLastDonationMissing)
		return
	}
	last, ok := ParseDonationDate(in.LastDonationDate, now.Location())
	if !ok {
		v.fail(RuleDonationInterval, ReasonLastDonationInvalid)
		return
	}
	v.lastDonation = &last
	if now.Sub(last) < DonationGapInDays*day {
		v.fail(RuleDonationInterval, ReasonDonationInterval)
	}
}

// checkDiseases emits one combined reason for permanent conditions and one
// listing every temporary condition. Matching is exact.
func checkDiseases(v *verdictBuilder, in DonorIntake) {
	permanent := false
	var temporary []string
	for _, d := range in.Diseases {
		if d.Permanent() {
			permanent = true
		}
		if d.Temporary() {
			temporary = append(temporary, string(d))
		}
	}
	if permanent {
		v.fail(RulePermanentDisease, ReasonPermanentDisease)
	}
	if len(temporary) > 0 {
		v.fail(RuleTemporaryDisease, listReason(temporaryDiseaseReasonFmt, temporary))
	}
}

func checkMedications(v *verdictBuilder, in DonorIntake) {
	if len(in.Medications) > 0 {
		v.fail(RuleMedications, listReason(medicationsReasonFmt, labels(in.Medications)))
	}
}

func checkProcedures(v *verdictBuilder, in DonorIntake) {
	if len(in.RecentProcedures) > 0 {
		v.fail(RuleProcedures, listReason(proceduresReasonFmt, labels(in.RecentProcedures)))
	}
}

func checkSurgeries(v *verdictBuilder, in DonorIntake) {
	if len(in.Surgeries) > 0 {
		v.fail(RuleSurgeries, listReason(surgeriesReasonFmt, labels(in.Surgeries)))
	}
}

func listReason(format string, items []string) string {
	return fmt.Sprintf(format, strings.Join(items, ", "))
}

func labels[T ~string](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item)
	}
	return out
}
