package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// BankEntry mirrors the JSON shape the model is asked to return for the
// template bank. Score stays a json.Number because the model occasionally
// quotes it.
type BankEntry struct {
	Level string      `json:"level"`
	Score json.Number `json:"score"`
	Text  string      `json:"text"`
}

// StudentPrompt is the per-student payload sent when asking for remarks.
type StudentPrompt struct {
	Ordinal int     `json:"ordinal"`
	Level   string  `json:"level"`
	Score   float64 `json:"score"`
}

// StudentRemark is one generated remark keyed by roster ordinal.
type StudentRemark struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// Config tunes the Gemini client.
type Config struct {
	APIKey string
	Model  string
}

// Gemini calls the Gemini API in JSON response mode to write the template
// bank and per-student remarks.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini constructs the Gemini generator.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// GenerateBank asks the model for the curated template bank.
func (g *Gemini) GenerateBank(ctx context.Context, subject, grade, semester string) ([]BankEntry, error) {
	raw, err := g.generateJSON(ctx, bankPrompt(subject, grade, semester))
	if err != nil {
		return nil, err
	}
	var entries []BankEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode bank response: %w", err)
	}
	return entries, nil
}

// GenerateRemarks asks the model to write one remark per student.
func (g *Gemini) GenerateRemarks(ctx context.Context, subject, grade, semester string, students []StudentPrompt) ([]StudentRemark, error) {
	prompt, err := remarksPrompt(subject, grade, semester, students)
	if err != nil {
		return nil, err
	}
	raw, err := g.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var remarks []StudentRemark
	if err := json.Unmarshal(raw, &remarks); err != nil {
		return nil, fmt.Errorf("decode remark response: %w", err)
	}
	return remarks, nil
}

func (g *Gemini) generateJSON(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}
	return []byte(text), nil
}
