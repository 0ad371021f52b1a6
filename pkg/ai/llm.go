package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/andrejsstepanovs/storyshape/pkg/config"
	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
	"github.com/teilomillet/gollm"
)

var ErrEmptyResponse = errors.New("llm returned an empty review")

const reviewInstructions = "Follow the structure below stage by stage.\n" +
	"For every stage say whether the text contains it, quote the passage that shows it and rate it weak, medium or strong.\n" +
	"Finish with the three most important suggestions to improve the narrative.\n\n" +
	"{{.Prompt}}\n\n" +
	"**This is the text you need to analyze**:\n```\n{{.Text}}\n```"

// Reviewer asks a language model for a free-text review of a narrative
// against a structure's prompt.
type Reviewer interface {
	Review(ctx context.Context, s narrative.Structure, text string) (string, error)
}

// NewReviewer picks the backend named in the config.
func NewReviewer(cfg config.Config) (Reviewer, error) {
	switch cfg.Backend {
	case config.BackendOpenAI:
		return NewOpenAIReviewer(cfg), nil
	case config.BackendGollm, "":
		return NewGollmReviewer(cfg)
	}
	return nil, fmt.Errorf("unknown review backend %q", cfg.Backend)
}

type GollmReviewer struct {
	client gollm.LLM
}

func NewGollmReviewer(cfg config.Config) (*GollmReviewer, error) {
	conn, err := gollm.NewLLM(
		gollm.SetProvider(cfg.Provider),
		gollm.SetModel(cfg.Model),
		gollm.SetAPIKey(cfg.APIKey),
		gollm.SetMaxRetries(cfg.MaxRetries),
		gollm.SetRetryDelay(time.Second*5),
		gollm.SetLogLevel(gollm.LogLevelInfo),
		gollm.SetMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("create llm: %w", err)
	}

	log.Printf("Using %s model %q\n", cfg.Provider, cfg.Model)
	return &GollmReviewer{client: conn}, nil
}

func (r *GollmReviewer) Review(ctx context.Context, s narrative.Structure, text string) (string, error) {
	prompt, err := reviewPrompt(s, text)
	if err != nil {
		return "", err
	}

	response, err := r.client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate review: %w", err)
	}

	return cleanReview(gollm.CleanResponse(response))
}

func reviewPrompt(s narrative.Structure, text string) (*gollm.Prompt, error) {
	templatePrompt := gollm.NewPromptTemplate(
		"NarrativeStructureReviewer",
		fmt.Sprintf("Review a narrative against %s.", s.DisplayName()),
		reviewInstructions,
		gollm.WithPromptOptions(
			gollm.WithContext("You are a story editor reviewing how well a text follows a narrative structure."),
			gollm.WithDirectives("Be concrete and quote the text.", "Do not invent events that are not in the text."),
			gollm.WithOutput("Plain text review grouped by stage. No yapping."),
		),
	)

	prompt, err := templatePrompt.Execute(map[string]interface{}{
		"Prompt": s.Prompt(),
		"Text":   text,
	})
	if err != nil {
		return nil, fmt.Errorf("execute prompt template: %w", err)
	}
	return prompt, nil
}

func cleanReview(response string) (string, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return "", ErrEmptyResponse
	}
	return response, nil
}
