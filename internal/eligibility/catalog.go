package eligibility

import "slices"

// BloodGroup is one of the eight ABO/Rh tags offered on the intake form.
type BloodGroup string

const (
	GroupAPos  BloodGroup = "A+"
	GroupANeg  BloodGroup = "A-"
	GroupBPos  BloodGroup = "B+"
	GroupBNeg  BloodGroup = "B-"
	GroupOPos  BloodGroup = "O+"
	GroupONeg  BloodGroup = "O-"
	GroupABPos BloodGroup = "AB+"
	GroupABNeg BloodGroup = "AB-"
)

// bloodGroups lists the tags in form order.
var bloodGroups = []BloodGroup{
	GroupAPos, GroupANeg, GroupBPos, GroupBNeg,
	GroupOPos, GroupONeg, GroupABPos, GroupABNeg,
}

func (g BloodGroup) Valid() bool { return slices.Contains(bloodGroups, g) }

// Component is a blood component the donor is willing to give.
type Component string

const (
	ComponentWholeBlood Component = "Whole Blood"
	ComponentPlatelets  Component = "Platelets"
	ComponentRBC        Component = "RBC"
	ComponentPlasma     Component = "Plasma"
	ComponentWBC        Component = "WBC"
)

var components = []Component{
	ComponentWholeBlood, ComponentPlatelets, ComponentRBC, ComponentPlasma, ComponentWBC,
}

func (c Component) Valid() bool { return slices.Contains(components, c) }

// Disease labels double as reason text, so the string values must not change.
type Disease string

const (
	DiseaseHeart          Disease = "Heart Disease"
	DiseaseCancer         Disease = "Cancer / Malignant Disease"
	DiseaseDiabetes       Disease = "Diabetes"
	DiseaseHepatitis      Disease = "Hepatitis B/C"
	DiseaseSTD            Disease = "Sexually Transmitted diseases"
	DiseaseTyphoid        Disease = "Typhoid (last one year)"
	DiseaseLung           Disease = "Lung Disease"
	DiseaseTuberculosis   Disease = "Tuberculosis"
	DiseaseAllergic       Disease = "Allergic Disease"
	DiseaseKidney         Disease = "Kidney Disease"
	DiseaseEpilepsy       Disease = "Epilepsy"
	DiseaseBleeding       Disease = "Abnormal bleeding tendency"
	DiseaseJaundice       Disease = "Jaundice (last one year)"
	DiseaseMalaria        Disease = "Malaria (last six months)"
	DiseaseFaintingSpells Disease = "Fainting spells"
)

// permanentDiseases always disqualify.
var permanentDiseases = []Disease{
	DiseaseHeart,
	DiseaseCancer,
	DiseaseHepatitis,
	DiseaseSTD,
	DiseaseKidney,
	DiseaseEpilepsy,
	DiseaseBleeding,
}

// temporaryDiseases defer the donor until recovered.
var temporaryDiseases = []Disease{
	DiseaseDiabetes,
	DiseaseTyphoid,
	DiseaseLung,
	DiseaseTuberculosis,
	DiseaseAllergic,
	DiseaseJaundice,
	DiseaseMalaria,
	DiseaseFaintingSpells,
}

// diseases is the full checklist in form order.
var diseases = []Disease{
	DiseaseHeart,
	DiseaseCancer,
	DiseaseDiabetes,
	DiseaseHepatitis,
	DiseaseSTD,
	DiseaseTyphoid,
	DiseaseLung,
	DiseaseTuberculosis,
	DiseaseAllergic,
	DiseaseKidney,
	DiseaseEpilepsy,
	DiseaseBleeding,
	DiseaseJaundice,
	DiseaseMalaria,
	DiseaseFaintingSpells,
}

func (d Disease) Valid() bool     { return slices.Contains(diseases, d) }
func (d Disease) Permanent() bool { return slices.Contains(permanentDiseases, d) }
func (d Disease) Temporary() bool { return slices.Contains(temporaryDiseases, d) }

// Medication covers drugs and substances taken in the past 72 hours.
type Medication string

const (
	MedicationAntibiotics  Medication = "Antibiotics"
	MedicationSteroids     Medication = "Steroids"
	MedicationAspirin      Medication = "Aspirin"
	MedicationVaccinations Medication = "Vaccinations"
	MedicationAlcohol      Medication = "Alcohol"
	MedicationRabies       Medication = "Dog bite Rabies vaccine (1 year)"
)

var medications = []Medication{
	MedicationAntibiotics,
	MedicationSteroids,
	MedicationAspirin,
	MedicationVaccinations,
	MedicationAlcohol,
	MedicationRabies,
}

func (m Medication) Valid() bool { return slices.Contains(medications, m) }

// Procedure is a skin- or tissue-breaking procedure in the last 6 months.
type Procedure string

const (
	ProcedureTattoo           Procedure = "Tattooing"
	ProcedureEarPiercing      Procedure = "Ear piercing"
	ProcedureDentalExtraction Procedure = "Dental extraction"
)

var procedures = []Procedure{ProcedureTattoo, ProcedureEarPiercing, ProcedureDentalExtraction}

func (p Procedure) Valid() bool { return slices.Contains(procedures, p) }

// Surgery is a surgery or transfusion in the last 6 months.
type Surgery string

const (
	SurgeryMajor       Surgery = "Major surgery"
	SurgeryMinor       Surgery = "Minor surgery"
	SurgeryTransfusion Surgery = "Blood transfusion"
)

var surgeries = []Surgery{SurgeryMajor, SurgeryMinor, SurgeryTransfusion}

func (s Surgery) Valid() bool { return slices.Contains(surgeries, s) }

// Catalog accessors return fresh copies in form order.

func BloodGroups() []BloodGroup    { return slices.Clone(bloodGroups) }
func Components() []Component      { return slices.Clone(components) }
func PermanentDiseases() []Disease { return slices.Clone(permanentDiseases) }
func TemporaryDiseases() []Disease { return slices.Clone(temporaryDiseases) }
func Diseases() []Disease          { return slices.Clone(diseases) }
func Medications() []Medication    { return slices.Clone(medications) }
func Procedures() []Procedure      { return slices.Clone(procedures) }
func Surgeries() []Surgery         { return slices.Clone(surgeries) }
