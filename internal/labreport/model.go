package labreport

import (
	"fmt"
	"path/filepath"
	"strings"

	"community-seva/internal/platform/sentinel"
)

// MaxUploadBytes bounds an uploaded report.
const MaxUploadBytes = 10 << 20

// BloodOverviewRow is one measured parameter in the analysed report.
type BloodOverviewRow struct {
	Parameter      string `json:"parameter"`
	Value          string `json:"value"`
	NormalRange    string `json:"normalRange"`
	Interpretation string `json:"interpretation"`
}

// Analysis is the structured reading of a blood report. Field names follow
// the JSON schema the model is asked to return.
type Analysis struct {
	BloodOverview   []BloodOverviewRow `json:"bloodOverview"`
	HasDiseaseRisk  bool               `json:"hasDiseaseRisk"`
	DiseaseInfo     string             `json:"diseaseInfo"`
	ImprovementTips string             `json:"improvementTips"`
	FutureRisks     string             `json:"futureRisks"`
	PreventionTips  string             `json:"preventionTips"`
	FoodLifestyle   string             `json:"foodLifestyle"`
	Slogan          string             `json:"slogan"`
}

// Report is an uploaded lab report ready for analysis.
type Report struct {
	Name     string
	MimeType string
	Data     []byte
}

var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

// DetectMimeType checks the file extension and settles the MIME type sent to
// the model. A declared type wins when it is specific.
func DetectMimeType(name, declared string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	fallback, ok := allowedTypes[ext]
	if !ok {
		return "", fmt.Errorf("%q: only .jpg, .jpeg, .png or .pdf files are accepted: %w", name, sentinel.ErrUnsupported)
	}
	declared = strings.TrimSpace(declared)
	if declared == "" || declared == "application/octet-stream" {
		return fallback, nil
	}
	return declared, nil
}
