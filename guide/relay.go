package guide

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const relayModel = "gemini-2.0-flash"

const wastelandPrompt = `You are a wise survivor in a post-apocalyptic wasteland. A fellow survivor has asked you for advice. Respond in a way that reflects the harsh reality of the wasteland, using appropriate post-apocalyptic terminology and considering the limited resources available. Be practical, specific, and focus on survival techniques. Use a tone that's both knowledgeable and weary from years of survival. Avoid modern conveniences and focus on what's realistically available in a world where infrastructure has collapsed.

Use markdown formatting in your response:
- Use **bold** for important warnings or critical information
- Use *italics* for emphasis or dramatic effect
- Use bullet points (-) for lists of items or steps
- Use numbered lists (1., 2., etc.) for sequential instructions

Question: %s

Answer:`

const plantAnalysisPrompt = "Analyze this plant image for any signs of disease, health issues, or growth stage. Provide detailed observations and recommendations for care."

// Relay wraps the Gemini client. All prompts go out with the survivor
// persona baked in; the raw Prompt path is the one exception.
type Relay struct {
	client *genai.Client
}

func NewRelay(ctx context.Context) (*Relay, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Relay{client: client}, nil
}

// Ask answers a survivor question in the wasteland guide persona.
func (r *Relay) Ask(ctx context.Context, question string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(wastelandPrompt, question), genai.RoleUser),
	}
	resp, err := r.client.Models.GenerateContent(ctx, relayModel, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.7)),
		TopK:            genai.Ptr(float32(40)),
		TopP:            genai.Ptr(float32(0.95)),
		MaxOutputTokens: 1024,
	})
	if err != nil {
		return "", fmt.Errorf("guide generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// AnalyzeImage runs the fixed plant-health analysis over an uploaded
// photo.
func (r *Relay) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(plantAnalysisPrompt),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := r.client.Models.GenerateContent(ctx, relayModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("image analysis failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "No analysis available", nil
	}
	return text, nil
}

// Prompt relays a caller-supplied prompt verbatim.
func (r *Relay) Prompt(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := r.client.Models.GenerateContent(ctx, relayModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("prompt relay failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "No response available", nil
	}
	return text, nil
}
