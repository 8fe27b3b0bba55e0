package narrator

import (
	"context"

	"google.golang.org/genai"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// DefaultModel is used when GeminiConfig.Model is empty.
const DefaultModel = "gemini-2.0-flash"

// GenerateOptions tune a single generation call.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// Generator produces freeform text from a system instruction and a prompt.
// The narrator client parses whatever comes back; implementations never need
// to understand the wire formats.
type Generator interface {
	Generate(ctx context.Context, system, prompt string, opts *GenerateOptions) (string, error)
}

// GeminiConfig configures the Gemini-backed generator.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Validate ensures the config is usable
func (c *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.APIKey == "" {
		vb.RequiredField("APIKey")
	}

	return vb.Build()
}

// Gemini generates text through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini generator with the provided config
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*Gemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Generate runs one generation call and returns the text of the best
// candidate.
func (g *Gemini) Generate(ctx context.Context, system, prompt string, opts *GenerateOptions) (string, error) {
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	cfg := &genai.GenerateContentConfig{}
	if opts != nil {
		temp := opts.Temperature
		cfg.Temperature = &temp
		cfg.MaxOutputTokens = opts.MaxOutputTokens
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: system}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.Unavailable("gemini returned no text candidates")
	}
	return text, nil
}

func extractText(res *genai.GenerateContentResponse) string {
	if res == nil {
		return ""
	}
	for _, c := range res.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

var _ Generator = (*Gemini)(nil)
