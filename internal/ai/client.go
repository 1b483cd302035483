// Package ai wraps the generative-AI text service behind the two
// request/response functions the consultation screens use: symptom analysis
// and SOAP-note drafting. A missing API key surfaces as ErrNotConfigured at
// construction so the features degrade instead of crashing the session.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when the Gemini API key is missing. Callers
// treat it as "no draft produced", not as a fault.
var ErrNotConfigured = errors.New("ai: gemini api key is not configured")

const defaultModelID = "gemini-2.5-flash"

// TriageLevel is the urgency classification of a symptom analysis.
type TriageLevel string

const (
	TriageLow    TriageLevel = "Low"
	TriageMedium TriageLevel = "Medium"
	TriageHigh   TriageLevel = "High"
)

// Valid reports whether t is a known triage level.
func (t TriageLevel) Valid() bool {
	switch t {
	case TriageLow, TriageMedium, TriageHigh:
		return true
	}
	return false
}

// SymptomAnalysis is the structured result of analyzing free-text symptoms.
type SymptomAnalysis struct {
	Considerations    []string    `json:"considerations"`
	TriageLevel       TriageLevel `json:"triageLevel"`
	FollowUpQuestions []string    `json:"followUpQuestions"`
	Summary           string      `json:"summary"`
}

// SOAPDraft is a drafted clinical note in SOAP structure.
type SOAPDraft struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// generator abstracts the model call so parsing can be tested without the
// network.
type generator interface {
	generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Client talks to Gemini with JSON-schema constrained responses.
type Client struct {
	gen    generator
	client *genai.Client
}

// NewClient creates a Gemini-backed client. An empty API key returns
// ErrNotConfigured.
func NewClient(ctx context.Context, apiKey, modelID string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = defaultModelID
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ai: failed to create gemini client: %w", err)
	}

	return &Client{
		gen:    &geminiGenerator{client: gc, modelID: modelID},
		client: gc,
	}, nil
}

// AnalyzeSymptoms asks the model for clinical considerations, a triage
// level, and follow-up questions for the given free-text symptoms.
func (c *Client) AnalyzeSymptoms(ctx context.Context, symptoms string) (*SymptomAnalysis, error) {
	prompt := "Analyze the following symptoms and provide a potential list of clinical considerations, " +
		"triage level, and suggested follow-up questions for a medical professional. Symptoms: " + symptoms

	raw, err := c.gen.generate(ctx, prompt, symptomSchema)
	if err != nil {
		return nil, err
	}
	return parseSymptomAnalysis(raw)
}

// DraftNotes converts a consultation transcript into a SOAP note draft.
func (c *Client) DraftNotes(ctx context.Context, transcript string) (*SOAPDraft, error) {
	prompt := "Convert the following patient consultation transcript into a professional SOAP note " +
		"(Subjective, Objective, Assessment, Plan). Transcript: " + transcript

	raw, err := c.gen.generate(ctx, prompt, soapSchema)
	if err != nil {
		return nil, err
	}
	return parseSOAPDraft(raw)
}

// Close releases resources held by the Gemini client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

var symptomSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"considerations": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"triageLevel": {
			Type:        genai.TypeString,
			Description: "Low, Medium, or High priority",
		},
		"followUpQuestions": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"summary": {Type: genai.TypeString},
	},
	Required: []string{"considerations", "triageLevel", "followUpQuestions", "summary"},
}

var soapSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subjective": {Type: genai.TypeString},
		"objective":  {Type: genai.TypeString},
		"assessment": {Type: genai.TypeString},
		"plan":       {Type: genai.TypeString},
	},
	Required: []string{"subjective", "objective", "assessment", "plan"},
}

func parseSymptomAnalysis(raw string) (*SymptomAnalysis, error) {
	var analysis SymptomAnalysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("ai: failed to decode symptom analysis: %w", err)
	}
	analysis.TriageLevel = normalizeTriage(analysis.TriageLevel)
	if !analysis.TriageLevel.Valid() {
		return nil, fmt.Errorf("ai: unknown triage level %q", analysis.TriageLevel)
	}
	if analysis.Summary == "" {
		return nil, errors.New("ai: symptom analysis has no summary")
	}
	return &analysis, nil
}

func parseSOAPDraft(raw string) (*SOAPDraft, error) {
	var draft SOAPDraft
	if err := json.Unmarshal([]byte(stripFences(raw)), &draft); err != nil {
		return nil, fmt.Errorf("ai: failed to decode soap draft: %w", err)
	}
	if draft.Subjective == "" && draft.Objective == "" && draft.Assessment == "" && draft.Plan == "" {
		return nil, errors.New("ai: soap draft is empty")
	}
	return &draft, nil
}

// stripFences removes a markdown code fence the model sometimes wraps JSON
// in despite the response MIME type.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

func normalizeTriage(t TriageLevel) TriageLevel {
	switch strings.ToLower(strings.TrimSpace(string(t))) {
	case "low":
		return TriageLow
	case "medium":
		return TriageMedium
	case "high":
		return TriageHigh
	}
	return t
}

// geminiGenerator issues a single-turn, schema-constrained completion.
type geminiGenerator struct {
	client  *genai.Client
	modelID string
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	model := g.client.GenerativeModel(g.modelID)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("ai: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("ai: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("ai: gemini returned empty content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}
