package wisdom

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

var (
	errNoClient      = errors.New("no api key configured")
	errEmptyResponse = errors.New("empty model response")
)

// Gemini asks the Gemini API for quotes and blessings as structured JSON.
// Every call is a single attempt; any failure resolves to the static
// fallback and is logged, never returned.
type Gemini struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// NewGemini builds a provider backed by the Gemini API. An empty apiKey is a
// normal offline mode, not an error: the provider is still returned and
// serves fallback content on every call.
func NewGemini(ctx context.Context, apiKey, model string, log zerolog.Logger) *Gemini {
	g := &Gemini{model: model, log: log}
	if apiKey == "" {
		log.Info().Msg("no gemini api key, serving fallback wisdom")
		return g
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Warn().Err(err).Msg("gemini client init failed, serving fallback wisdom")
		return g
	}
	g.client = client
	return g
}

func (g *Gemini) AmbientWisdom(ctx context.Context) Quote {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quote":  {Type: genai.TypeString, Description: "The Zen quote"},
			"author": {Type: genai.TypeString, Description: "Attributed author or '佚名'"},
			"advice": {Type: genai.TypeString, Description: "One-sentence posture/breathing tip"},
		},
		Required: []string{"quote", "author", "advice"},
	}

	var q Quote
	err := g.generate(ctx,
		"Generate a short Zen quote in Chinese related to standing meditation (Zhan Zhuang), internal energy, or mindfulness. Also provide a one-sentence tip for posture or breathing during Zhan Zhuang.",
		schema, &q,
	)
	if err != nil {
		g.log.Warn().Err(err).Msg("ambient wisdom fetch failed, using fallback")
		return FallbackQuote()
	}
	return q
}

func (g *Gemini) CompletionBlessing(ctx context.Context, minutes int) Blessing {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":   {Type: genai.TypeString},
			"message": {Type: genai.TypeString},
		},
		Required: []string{"title", "message"},
	}

	prompt := fmt.Sprintf(
		"The user just finished %d minutes of Zhan Zhuang (standing meditation). Generate a 4-character poetic title (e.g. 功德圆满, 气定神闲) and a short, encouraging Zen-style blessing in Chinese (max 30 words).",
		minutes,
	)

	var b Blessing
	if err := g.generate(ctx, prompt, schema, &b); err != nil {
		g.log.Warn().Err(err).Int("minutes", minutes).Msg("completion blessing fetch failed, using fallback")
		return FallbackBlessing()
	}
	return b
}

// generate makes one structured-output call and decodes the JSON reply into
// out.
func (g *Gemini) generate(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	if g.client == nil {
		return errNoClient
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return errEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
