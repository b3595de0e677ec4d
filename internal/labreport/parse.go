package labreport

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	leadingFence = regexp.MustCompile("^```[a-zA-Z]*\\n?")
	bulletPrefix = regexp.MustCompile(`(?m)^\s*\*\s*`)
)

// ParseAnalysisText turns the model's text answer into an Analysis. Models
// often wrap JSON in code fences or chatter, so only the outermost object is
// decoded. When decoding fails the raw text is kept as improvement tips
// alongside generic advice.
func ParseAnalysisText(text string) Analysis {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = leadingFence.ReplaceAllString(cleaned, "")
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		cleaned = cleaned[start : end+1]
	}

	var a Analysis
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil {
		return fallbackAnalysis(text)
	}
	if a.BloodOverview == nil {
		a.BloodOverview = []BloodOverviewRow{}
	}
	a.FoodLifestyle = StripMarkdownAsterisks(a.FoodLifestyle)
	return a
}

// StripMarkdownAsterisks removes bold markers and leading "* " bullets.
func StripMarkdownAsterisks(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "**", "")
	text = bulletPrefix.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func fallbackAnalysis(text string) Analysis {
	tips := text
	if strings.TrimSpace(tips) == "" {
		tips = "Unable to parse structured response. Read above text and consult a doctor for interpretation."
	}
	return Analysis{
		BloodOverview:   []BloodOverviewRow{},
		ImprovementTips: tips,
		FutureRisks:     "Please consult a qualified doctor to understand any future risks based on your blood report.",
		PreventionTips:  "Maintain a balanced diet, regular exercise, enough sleep, and regular health checkups.",
		FoodLifestyle:   "Eat iron-rich foods, plenty of fruits and vegetables, drink enough water, sleep well, and exercise regularly.",
		Slogan:          "Strong blood, strong life. Take care of yourself today.",
	}
}
