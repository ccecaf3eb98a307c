package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

const (
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	maxGeminiResponseBytes = 1 << 20
)

// Estimator turns a free-text food description into nutrition values.
type Estimator interface {
	Estimate(ctx context.Context, description string) (models.Estimate, error)
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// estimateSchema asks for exactly the seven estimate fields.
var estimateSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"name":     map[string]any{"type": "STRING", "description": "The standardized name of the food."},
		"calories": map[string]any{"type": "NUMBER", "description": "Total calories."},
		"protein":  map[string]any{"type": "NUMBER", "description": "Protein in grams."},
		"carbs":    map[string]any{"type": "NUMBER", "description": "Carbohydrates in grams."},
		"fats":     map[string]any{"type": "NUMBER", "description": "Fats in grams."},
		"fibre":    map[string]any{"type": "NUMBER", "description": "Fibre in grams."},
		"emoji":    map[string]any{"type": "STRING", "description": "A single representative emoji."},
	},
	"required": []string{"name", "calories", "protein", "carbs", "fats", "fibre", "emoji"},
}

// GeminiEstimator calls the Gemini generateContent REST endpoint with a
// JSON response schema.
type GeminiEstimator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiEstimator(apiKey, model string) *GeminiEstimator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiEstimator{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultGeminiBaseURL,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// WithBaseURL points the estimator at another endpoint.
func (g *GeminiEstimator) WithBaseURL(u string) *GeminiEstimator {
	g.baseURL = strings.TrimRight(u, "/")
	return g
}

func (g *GeminiEstimator) Estimate(ctx context.Context, description string) (models.Estimate, error) {
	if g.apiKey == "" {
		return models.Estimate{}, fmt.Errorf("GEMINI_API_KEY not set")
	}
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{
			Text: fmt.Sprintf("Analyze the following food and provide estimated nutritional values including FIBRE: %q", description),
		}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   estimateSchema,
		},
	})
	if err != nil {
		return models.Estimate{}, fmt.Errorf("encode gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Estimate{}, fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Estimate{}, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxGeminiResponseBytes))
	if err != nil {
		return models.Estimate{}, fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Estimate{}, fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.Estimate{}, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return models.Estimate{}, fmt.Errorf("no candidates in gemini response")
	}
	return ValidateEstimate([]byte(out.Candidates[0].Content.Parts[0].Text))
}

// ValidateEstimate decodes the model's JSON answer and rejects missing
// fields, wrong types and negative numbers. Markdown code fences around
// the JSON are tolerated.
func ValidateEstimate(text []byte) (models.Estimate, error) {
	s := strings.TrimSpace(string(text))
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	var e models.Estimate
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &e); err != nil {
		return models.Estimate{}, fmt.Errorf("malformed estimate: %w", err)
	}
	if err := utils.ValidateStruct(e); err != nil {
		return models.Estimate{}, fmt.Errorf("invalid estimate: %w", err)
	}
	return e, nil
}
