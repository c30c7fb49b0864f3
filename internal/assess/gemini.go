// Package assess delegates damage assessment of citizen-uploaded photos to
// a remote image classification model. The model first gates on whether the
// photo shows a disaster at all, then grades the visible damage.
package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// ErrNotDisaster marks uploads that do not show a disaster; the API rejects
// these with a validation error rather than grading them.
var ErrNotDisaster = errors.New("image is not a disaster photo")

// Result is the combined gate + grading outcome.
type Result struct {
	IsDisaster         bool     `json:"is_disaster"`
	DisasterType       string   `json:"disaster_type"`
	Confidence         float64  `json:"confidence"`
	Severity           string   `json:"severity"`
	DamageDescription  string   `json:"damage_description"`
	AffectedAreas      []string `json:"affected_areas"`
	RecommendedActions []string `json:"recommended_actions"`
	EstimatedImpact    string   `json:"estimated_impact"`
}

// Classifier scores a base64-encoded disaster photo.
type Classifier interface {
	Assess(ctx context.Context, imageBase64 string) (*Result, error)
}

const gateInstruction = `Analyze this image and determine if it shows a natural disaster or emergency situation (flood, earthquake, landslide, fire, storm, tsunami, volcanic eruption, or structural building damage).

Respond ONLY with this exact JSON format (no other text):
{"is_disaster": true or false, "disaster_type": "specific type or null", "confidence": 0.0 to 1.0, "reason": "brief explanation"}`

const gradeInstruction = `Analyze this disaster image and provide a detailed damage assessment.

Disaster type: %s

Respond ONLY with this exact JSON format (no other text):
{"severity": "low" or "medium" or "high" or "critical", "damage_description": "detailed description of visible damage", "affected_areas": ["list of affected areas/structures"], "recommended_actions": ["actionable recommendations"], "estimated_impact": "brief impact assessment"}`

// GeminiClassifier calls the Gemini generateContent endpoint. Single
// bounded-timeout attempt per step, like every other outbound call.
type GeminiClassifier struct {
	http    *http.Client
	apiKey  string
	baseURL string
	model   string
}

// NewGeminiClassifier creates a classifier using the given API key.
func NewGeminiClassifier(httpClient *http.Client, apiKey string) *GeminiClassifier {
	return &GeminiClassifier{
		http:    httpClient,
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		model:   "gemini-2.0-flash",
	}
}

func (g *GeminiClassifier) Assess(ctx context.Context, imageBase64 string) (*Result, error) {
	// Accept data URLs ("data:image/jpeg;base64,...") as well as bare base64.
	if i := strings.Index(imageBase64, ","); i >= 0 {
		imageBase64 = imageBase64[i+1:]
	}

	var gate struct {
		IsDisaster   bool    `json:"is_disaster"`
		DisasterType string  `json:"disaster_type"`
		Confidence   float64 `json:"confidence"`
	}
	if err := g.generate(ctx, gateInstruction, imageBase64, &gate); err != nil {
		return nil, err
	}

	if !gate.IsDisaster {
		return &Result{IsDisaster: false}, ErrNotDisaster
	}

	var grade struct {
		Severity           string   `json:"severity"`
		DamageDescription  string   `json:"damage_description"`
		AffectedAreas      []string `json:"affected_areas"`
		RecommendedActions []string `json:"recommended_actions"`
		EstimatedImpact    string   `json:"estimated_impact"`
	}
	if err := g.generate(ctx, fmt.Sprintf(gradeInstruction, gate.DisasterType), imageBase64, &grade); err != nil {
		return nil, err
	}

	if grade.Severity == "" {
		grade.Severity = "medium"
	}

	return &Result{
		IsDisaster:         true,
		DisasterType:       gate.DisasterType,
		Confidence:         gate.Confidence,
		Severity:           grade.Severity,
		DamageDescription:  grade.DamageDescription,
		AffectedAreas:      grade.AffectedAreas,
		RecommendedActions: grade.RecommendedActions,
		EstimatedImpact:    grade.EstimatedImpact,
	}, nil
}

type generateRequest struct {
	Contents []struct {
		Parts []map[string]any `json:"parts"`
	} `json:"contents"`
}

// generate sends one prompt + image to the model and decodes the JSON
// object embedded in its text reply into out.
func (g *GeminiClassifier) generate(ctx context.Context, instruction, imageBase64 string, out any) error {
	var reqBody generateRequest
	reqBody.Contents = append(reqBody.Contents, struct {
		Parts []map[string]any `json:"parts"`
	}{
		Parts: []map[string]any{
			{"text": instruction},
			{"inline_data": map[string]string{"mime_type": "image/jpeg", "data": imageBase64}},
		},
	})

	body, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return errors.New("empty model response")
	}

	return decodeEmbeddedJSON(payload.Candidates[0].Content.Parts[0].Text, out)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// decodeEmbeddedJSON extracts the first JSON object from free-form model
// text. Models tend to wrap the object in markdown fences or prose.
func decodeEmbeddedJSON(text string, out any) error {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return errors.New("no JSON object in model response")
	}
	return json.Unmarshal([]byte(match), out)
}
