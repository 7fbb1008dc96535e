// Package openai implements the external risk model boundary on top of the
// OpenAI chat-completion API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/ai"
	"github.com/seguro/quotes-service/internal/domain/entity"
)

// RiskClient asks the model for a risk assessment of one application.
type RiskClient struct {
	client *openai.Client
	model  string
	temp   float32
	logger *zap.Logger
}

// NewRiskClient creates a client for the configured model.
func NewRiskClient(apiKey, model string, temperature float32, logger *zap.Logger) *RiskClient {
	return &RiskClient{
		client: openai.NewClient(apiKey),
		model:  model,
		temp:   temperature,
		logger: logger,
	}
}

// Assess sends the assessment prompt and parses the model's JSON reply. Any
// deviation — transport error, empty choice list, unparseable reply — is an
// error; the gateway above turns it into the fallback.
func (c *RiskClient) Assess(ctx context.Context, input ai.RiskInput) (entity.RiskAssessment, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temp,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildAssessmentPrompt(input),
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return entity.RiskAssessment{}, fmt.Errorf("risk model call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return entity.RiskAssessment{}, fmt.Errorf("risk model returned no choices")
	}

	content := resp.Choices[0].Message.Content
	assessment, err := parseAssessment(content)
	if err != nil {
		c.logger.Warn("Failed to parse risk model reply",
			zap.Error(err),
			zap.String("content", content))
		return entity.RiskAssessment{}, err
	}

	return assessment.Normalized(), nil
}

// parseAssessment decodes the reply, tolerating prose or markdown fences
// around the JSON object.
func parseAssessment(content string) (entity.RiskAssessment, error) {
	var assessment entity.RiskAssessment
	if err := json.Unmarshal([]byte(content), &assessment); err == nil {
		return assessment, nil
	}

	extracted, ok := extractJSON(content)
	if !ok {
		return entity.RiskAssessment{}, fmt.Errorf("no JSON object in model reply")
	}
	if err := json.Unmarshal([]byte(extracted), &assessment); err != nil {
		return entity.RiskAssessment{}, fmt.Errorf("failed to parse model reply: %w", err)
	}
	return assessment, nil
}

// extractJSON returns the first balanced JSON object embedded in content.
func extractJSON(content string) (string, bool) {
	start := -1
	for i := 0; i < len(content); i++ {
		if content[i] == '{' {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	braceCount := 0
	inString := false
	escapeNext := false

	for i := start; i < len(content); i++ {
		char := content[i]

		if escapeNext {
			escapeNext = false
			continue
		}
		if char == '\\' {
			escapeNext = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				return content[start : i+1], true
			}
		}
	}

	return "", false
}
