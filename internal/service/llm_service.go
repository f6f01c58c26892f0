package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-api/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService is the completion client: one outbound call per question, a
// prompt string in and a completion string out. Provider failures never
// propagate; they are absorbed into the apology string.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.Temperature = 0.3

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *LLMService) Close() {
	s.client.Close()
}

// Answer submits the combined prompt and returns the provider's text
// verbatim, or the apology string on any failure.
func (s *LLMService) Answer(ctx context.Context, question, portfolioContext string) string {
	prompt := buildPrompt(question, portfolioContext)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		s.logger.Error("LLM generation failed", zap.Error(err))
		return apologize(err)
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no response from LLM")
		s.logger.Error("LLM generation failed", zap.Error(err))
		return apologize(err)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
