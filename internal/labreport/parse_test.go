package labreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-seva/internal/platform/sentinel"
)

func TestParseAnalysisText(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		a := ParseAnalysisText(`{"bloodOverview":[{"parameter":"WBC","value":"7000","normalRange":"4000-11000","interpretation":"Normal"}],"hasDiseaseRisk":false,"slogan":"Stay strong"}`)

		require.Len(t, a.BloodOverview, 1)
		assert.Equal(t, "WBC", a.BloodOverview[0].Parameter)
		assert.Equal(t, "Stay strong", a.Slogan)
	})

	t.Run("fenced json with chatter", func(t *testing.T) {
		text := "```json\nHere you go: {\"hasDiseaseRisk\":true,\"diseaseInfo\":\"Low iron\"} hope this helps\n```"

		a := ParseAnalysisText(text)

		assert.True(t, a.HasDiseaseRisk)
		assert.Equal(t, "Low iron", a.DiseaseInfo)
		assert.NotNil(t, a.BloodOverview)
	})

	t.Run("unparseable text falls back", func(t *testing.T) {
		a := ParseAnalysisText("The report looks normal overall.")

		assert.False(t, a.HasDiseaseRisk)
		assert.Equal(t, "The report looks normal overall.", a.ImprovementTips)
		assert.NotEmpty(t, a.PreventionTips)
		assert.Empty(t, a.BloodOverview)
	})

	t.Run("empty text falls back to generic tips", func(t *testing.T) {
		a := ParseAnalysisText("")

		assert.Contains(t, a.ImprovementTips, "Unable to parse structured response")
	})
}

func TestStripMarkdownAsterisks(t *testing.T) {
	in := "**Diet**\n* Eat spinach\n  * Drink water\nSleep *well*"

	assert.Equal(t, "Diet\nEat spinach\nDrink water\nSleep *well*", StripMarkdownAsterisks(in))
	assert.Equal(t, "", StripMarkdownAsterisks(""))
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		declared string
		want     string
		wantErr  bool
	}{
		{name: "pdf without declared type", file: "cbc.PDF", want: "application/pdf"},
		{name: "jpeg from octet stream", file: "scan.jpeg", declared: "application/octet-stream", want: "image/jpeg"},
		{name: "declared type wins", file: "photo.jpg", declared: "image/jpg", want: "image/jpg"},
		{name: "png", file: "x.png", want: "image/png"},
		{name: "gif rejected", file: "x.gif", wantErr: true},
		{name: "no extension rejected", file: "report", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectMimeType(tt.file, tt.declared)
			if tt.wantErr {
				assert.ErrorIs(t, err, sentinel.ErrUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
