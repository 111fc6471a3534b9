// Package ai mediates between user free text and the external completion
// API: it gates low-quality questions, builds the data-grounded prompt and
// substitutes a deterministic rule-based analysis whenever the API is
// unconfigured or failing.
package ai

import (
	"context"
	"fmt"
	"log/slog"

	"techflow-console/internal/models"
)

const clarificationTemplate = `I'm sorry, but your question %q is unclear or too short. Please provide more context or ask a specific question about your business metrics. For example:

- "What's driving our revenue growth?"
- "Which products are performing best?"
- "Show me customer trends by geography"
- "How are our different customer segments performing?"`

// Result is one analysis turn. Valid=false tells the caller to suppress
// chart generation for this turn.
type Result struct {
	Analysis string `json:"analysis"`
	Valid    bool   `json:"valid"`
}

// Analyzer is constructed explicitly and passed into the chat orchestration,
// so tests can substitute a fake completer without process-wide state.
type Analyzer struct {
	client Completer
	logger *slog.Logger
}

// NewAnalyzer wires the analyzer. A nil client selects the offline
// rule-based path for every question; that is a supported configuration,
// not an error.
func NewAnalyzer(client Completer, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{client: client, logger: logger}
}

// Analyze runs one question against the dataset. It never returns an error:
// every failure path terminates in a normally formed analysis text.
func (a *Analyzer) Analyze(ctx context.Context, question string, data models.AggregatedData) Result {
	if !ValidateQuestion(question) {
		return Result{
			Analysis: fmt.Sprintf(clarificationTemplate, question),
			Valid:    false,
		}
	}

	if a.client == nil {
		return Result{Analysis: fallbackAnalysis(question, data), Valid: true}
	}

	prompt := BuildPrompt(question, data)
	text, err := a.client.Complete(ctx, prompt)
	if err != nil {
		a.logger.Warn("completion API failed, using rule-based analysis", "error", err)
		return Result{Analysis: fallbackAnalysis(question, data), Valid: true}
	}

	return Result{Analysis: text, Valid: !isUnclearResponse(text)}
}
