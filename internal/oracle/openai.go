package oracle

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/osse101/CrypticClues_Go/internal/domain"
)

const (
	clueSystemPrompt = "You are a cryptic clue generator."

	clueUserPromptFormat = `Create a %s cryptic clue. Include the clue, answer, and a brief explanation. Please format your response exactly as:

Clue: [Your Clue]

Answer: [Answer]

Explanation: [Explanation]

Do not include any additional text and AVOID ANAGRAMS ENTIRELY. Do not rearrange letters to create words.`

	gradeSystemPrompt = "You are an assistant that checks if a user's answer to a cryptic clue is correct. Respond with 'CORRECT' or 'INCORRECT' followed by a brief explanation."

	gradeUserPromptFormat = "User's Answer: %q\nCorrect Answer: %q\nIs the user's answer correct?"

	clueMaxTokens  = 300
	gradeMaxTokens = 100
	temperature    = 0.7
)

type openAIClient struct {
	api   *openai.Client
	model string
}

// NewOpenAIClient creates an oracle client backed by the OpenAI chat
// completion API.
func NewOpenAIClient(apiKey, model string) Client {
	return &openAIClient{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

func (c *openAIClient) GenerateClue(ctx context.Context, difficulty string) (*Clue, error) {
	content, err := c.complete(ctx, clueSystemPrompt, fmt.Sprintf(clueUserPromptFormat, difficulty), clueMaxTokens)
	if err != nil {
		return nil, err
	}

	return ParseClueResponse(content), nil
}

func (c *openAIClient) GradeAnswer(ctx context.Context, userAnswer, correctAnswer string) (*Grade, error) {
	content, err := c.complete(ctx, gradeSystemPrompt, fmt.Sprintf(gradeUserPromptFormat, userAnswer, correctAnswer), gradeMaxTokens)
	if err != nil {
		return nil, err
	}

	return ParseGradeResponse(content), nil
}

func (c *openAIClient) complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", domain.ErrOracleUnavailable)
	}

	return resp.Choices[0].Message.Content, nil
}
