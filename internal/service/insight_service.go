package service

import (
	"context"
	"fmt"
	"strings"

	"spendwatch/internal/analytics"
	"spendwatch/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// InsightService turns a spending report into a short narrative summary via
// GigaChat. The summary is advisory text only; every number in the report is
// computed deterministically before the model sees it.
type InsightService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are a personal-finance assistant. You receive a pre-computed
spending report: monthly totals in CHF, category budget checks, potential
savings with investment projections, and sustainability notes.

Write a short summary for the card holder:
- At most four sentences, plain language, no markdown.
- Mention the most recent month's total and the largest category.
- If the report lists potential savings, mention the annual amount once.
- Never invent numbers; only restate figures present in the report.
- If the report notes missing exchange rates, say totals are approximate.`
}

func NewInsightService(cfg *config.GigaChatConfig, logger *zap.Logger) (*InsightService, error) {
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

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	return &InsightService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Narrate asks the model to summarize the report. Failures are soft: the
// caller still has the deterministic insights, so an empty string and the
// error are both acceptable outcomes.
func (s *InsightService) Narrate(ctx context.Context, report analytics.SpendingReport) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: report.RenderText()},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	narrative := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("Narrative generated", zap.Int("length", len(narrative)))
	return narrative, nil
}

func (s *InsightService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
