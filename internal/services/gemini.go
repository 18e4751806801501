package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"resume-parser/internal/models"
)

// maxPromptChars caps the resume text sent to the model; the chunker keeps
// the cut on a paragraph boundary.
const maxPromptChars = 40000

type GeminiService interface {
	ExtractResume(ctx context.Context, text, fileType string) (*models.ResumeRecord, error)
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error)
}

type geminiService struct {
	client        *genai.Client
	modelName     string
	promptBuilder *PromptBuilder
	chunker       TextChunker
}

func NewGeminiService(apiKey string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		modelName:     "gemini-2.5-flash",
		promptBuilder: NewPromptBuilder(),
		chunker:       NewTextChunker(),
	}, nil
}

// ExtractResume implements GeminiService.
func (g *geminiService) ExtractResume(ctx context.Context, text, fileType string) (*models.ResumeRecord, error) {
	text = g.chunker.TruncateAtBoundary(text, maxPromptChars)
	prompt := g.promptBuilder.BuildResumeExtractionPrompt(text, fileType)

	response, err := g.GenerateTextWithRetry(ctx, prompt, 0.1, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to generate extraction: %w", err)
	}
	if response == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var record models.ResumeRecord
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &record); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return &record, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}

// GenerateTextWithRetry implements GeminiService.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := g.GenerateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			log.Printf("⚠️ Gemini attempt %d failed: %v. Retrying...", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

// ExtractJSON pulls a JSON object or array out of text that may wrap it in
// markdown fences or commentary.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
