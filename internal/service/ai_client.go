package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/utils"
)

// Assistant answers chat messages the rule engine could not place.
type Assistant interface {
	Suggest(ctx context.Context, message string) (*AssistantReply, error)
}

// AssistantReply is the JSON shape the model is asked to return.
type AssistantReply struct {
	Response     string   `json:"response"`
	QuickReplies []string `json:"quickReplies,omitempty"`
}

const maxAssistantQuickReplies = 4

// LLMAssistant asks an OpenAI-compatible model for a short answer grounded
// in the business facts below.
type LLMAssistant struct {
	client       *OpenAIClient
	systemPrompt string
	logger       *zap.Logger
}

// Ensure LLMAssistant implements Assistant
var _ Assistant = (*LLMAssistant)(nil)

// NewLLMAssistant builds the assistant. It returns nil if the client is not
// configured.
func NewLLMAssistant(client *OpenAIClient, addons *pricing.AddonCatalog, logger *zap.Logger) *LLMAssistant {
	if !client.IsEnabled() {
		return nil
	}
	return &LLMAssistant{
		client:       client,
		systemPrompt: buildSystemPrompt(addons),
		logger:       logger,
	}
}

func (a *LLMAssistant) Suggest(ctx context.Context, message string) (*AssistantReply, error) {
	resp, err := a.client.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: a.systemPrompt},
			{Role: "user", Content: message},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from model")
	}

	var reply AssistantReply
	content := resp.Choices[0].Message.Content
	if err := utils.ParseAIJSON(content, &reply); err != nil {
		a.logger.Debug("Unparseable assistant output", zap.String("content", content))
		return nil, fmt.Errorf("failed to parse assistant response: %w", err)
	}

	reply.Response = strings.TrimSpace(reply.Response)
	if reply.Response == "" {
		return nil, errors.New("assistant returned an empty response")
	}
	if len(reply.QuickReplies) > maxAssistantQuickReplies {
		reply.QuickReplies = reply.QuickReplies[:maxAssistantQuickReplies]
	}

	a.logger.Debug("Assistant answered",
		zap.String("model", resp.Model),
		zap.Int("tokens", resp.Usage.TotalTokens),
	)
	return &reply, nil
}

func buildSystemPrompt(addons *pricing.AddonCatalog) string {
	var b strings.Builder
	b.WriteString(`You are the booking assistant for ChefWeb, a private chef service that cooks in customers' homes.
Answer in two or three friendly sentences. Never invent prices, dates or policies that are not listed below.
If you are unsure, suggest contacting the team through the contact form.

Packages (per guest):
`)
	for _, p := range pricing.Packages() {
		fmt.Fprintf(&b, "- %s: %s per adult, %s per child. %s\n",
			p.Name, pricing.FormatUSD(p.AdultPrice), pricing.FormatUSD(p.ChildPrice), p.Description)
	}

	if addons != nil {
		b.WriteString("\nAdd-ons:\n")
		for _, a := range addons.All() {
			unit := "flat"
			if a.PerGuest {
				unit = "per guest"
			}
			fmt.Fprintf(&b, "- %s: %s %s\n", a.Name, pricing.FormatUSD(a.Price), unit)
		}
	}

	b.WriteString(`
Travel fees are included, estimated at booking, or confirmed later depending on distance.

Respond ONLY with JSON of the form:
{"response": "<answer>", "quickReplies": ["<up to 4 short follow-up buttons>"]}`)
	return b.String()
}
