package ai

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
	"mintfire.backend/pkg/logger"
)

// FallbackResponse is returned whenever the model produces no usable
// output. The chat endpoint never surfaces an error to the visitor.
const FallbackResponse = "Sorry, I couldn't come up with an answer just now. Please try again in a moment."

const systemPrompt = "You are the MintFire assistant. Answer questions about MintFire's " +
	"products, services, security research program and hiring process. Be concise and " +
	"factual. If a question is unrelated to MintFire, politely steer the conversation back."

// Asker answers a free-text product question
type Asker interface {
	Ask(ctx context.Context, query string) string
}

type disabledChat struct{}

func (disabledChat) Ask(context.Context, string) string { return FallbackResponse }

// Disabled returns an Asker that always answers with the fallback.
// Used when no API key is configured so the chat endpoint still works.
func Disabled() Asker {
	return disabledChat{}
}

// ChatService forwards visitor questions to Gemini with a fixed system
// prompt. The client is built once at startup and reused.
type ChatService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewChatService creates the Gemini-backed chat service
func NewChatService(ctx context.Context, apiKey, model string, timeout time.Duration) (*ChatService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &ChatService{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Ask forwards the query and returns the model's answer, or the fixed
// fallback on any failure, empty output or timeout. Never returns an
// error: failures must not cross the chat boundary.
func (s *ChatService) Ask(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(query),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		},
	)
	if err != nil {
		logger.Warn(ctx, "chat model call failed", zap.Error(err))
		return FallbackResponse
	}

	text := result.Text()
	if text == "" {
		logger.Warn(ctx, "chat model returned empty output")
		return FallbackResponse
	}
	return text
}
