package agent

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"community-seva/internal/labreport"
)

// analysisPrompt asks the model for the labreport.Analysis JSON shape.
const analysisPrompt = `You are a medical information assistant. A user has uploaded a blood report (image or PDF).

1. Read the report and extract the basic blood values: RBC, WBC, Hemoglobin, Platelets and any other important parameter that is visible.
2. Build a table-style overview of these values.
3. Decide whether anything clearly suggests a risk of disease. This is not a diagnosis, only a description of possible concerns.
4. If there is a risk, explain it. Otherwise explain how to improve blood levels and stay healthy.
5. Explain possible future risks if abnormal patterns continue, and how to prevent them.
6. Give simple food and lifestyle suggestions, favouring Indian foods, vegetables and fruits.
7. End with one short motivational health slogan.

Keep every field short and easy to understand, except bloodOverview which stays detailed.

Safety rules: you are not a doctor, never give a final diagnosis, always recommend consulting a qualified doctor.

Return STRICTLY one JSON object with exactly this structure:
{
  "bloodOverview": [
    {"parameter": "Hemoglobin", "value": "14.5 g/dL", "normalRange": "13 - 17 g/dL (male)", "interpretation": "Normal"}
  ],
  "hasDiseaseRisk": false,
  "diseaseInfo": "Possible conditions when hasDiseaseRisk is true.",
  "improvementTips": "How to improve blood levels when hasDiseaseRisk is false.",
  "futureRisks": "Possible future issues if the patterns stay abnormal.",
  "preventionTips": "How to prevent or reduce those risks.",
  "foodLifestyle": "Diet and lifestyle tips.",
  "slogan": "One short health slogan."
}`

type geminiClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// NewGeminiClient returns an analyzer backed by the generateContent endpoint.
func NewGeminiClient(apiKey, url string) labreport.Analyzer {
	return &geminiClient{
		apiKey: apiKey,
		url:    url,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *geminiClient) Analyse(ctx context.Context, report labreport.Report) (*labreport.Analysis, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: analysisPrompt},
				{InlineData: &inlineData{
					MimeType: report.MimeType,
					Data:     base64.StdEncoding.EncodeToString(report.Data),
				}},
			},
		}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("analysis API error (%d): %s", resp.StatusCode, errorMessage(rawBody))
	}

	var result generateResponse
	if err := json.Unmarshal(rawBody, &result); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if len(result.Candidates) == 0 {
		return nil, errors.New("analysis response has no candidates")
	}

	texts := make([]string, 0, len(result.Candidates[0].Content.Parts))
	for _, p := range result.Candidates[0].Content.Parts {
		texts = append(texts, p.Text)
	}

	analysis := labreport.ParseAnalysisText(strings.Join(texts, "\n"))
	return &analysis, nil
}

// errorMessage prefers the API's own message over the raw body.
func errorMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return string(body)
}
