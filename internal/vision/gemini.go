package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini implements the Invoker interface using Google Gemini.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a new Gemini Invoker instance.
func NewGemini(apiKey string, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = defaultModelName
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(modelTemperature)
	model.SetTopP(modelTopP)
	model.SetTopK(modelTopK)
	model.SetMaxOutputTokens(modelMaxOutputTokens)

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Invoke sends the document inline with the extraction prompt and returns
// the model's raw text. The whole round trip shares one 30 second budget.
func (g *Gemini) Invoke(ctx context.Context, data []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, format, err := preparePayload(data, mimeType)
	if err != nil {
		return "", fmt.Errorf("preparing document: %w", err)
	}

	parts := []genai.Part{
		genai.ImageData(format, payload),
		genai.Text(extractionPrompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("model call exceeded %s: %w", requestTimeout, ErrUnavailable)
		}
		return "", fmt.Errorf("generating content: %v: %w", err, ErrUnavailable)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini: %w", ErrUnavailable)
	}

	// Collect the text parts of the first candidate
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	return responseText.String(), nil
}

// Close closes the Gemini client.
func (g *Gemini) Close() error {
	return g.client.Close()
}
