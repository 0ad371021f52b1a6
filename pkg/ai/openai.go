package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrejsstepanovs/storyshape/pkg/config"
	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
	"github.com/sashabaranov/go-openai"
)

// OpenAIReviewer talks to any OpenAI compatible chat endpoint directly.
type OpenAIReviewer struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIReviewer(cfg config.Config) *OpenAIReviewer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")
	}

	return &OpenAIReviewer{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (r *OpenAIReviewer) Review(ctx context.Context, s narrative.Structure, text string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     r.model,
		MaxTokens: r.maxTokens,
		Messages:  reviewMessages(s, text),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return cleanReview(resp.Choices[0].Message.Content)
}

func reviewMessages(s narrative.Structure, text string) []openai.ChatCompletionMessage {
	user := strings.NewReplacer("{{.Prompt}}", s.Prompt(), "{{.Text}}", text).Replace(reviewInstructions)

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: fmt.Sprintf("You are a story editor reviewing how well a text follows %s. Be concrete and quote the text.", s.DisplayName()),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: user,
		},
	}
}
