// Package chat orchestrates one conversation turn: user input, AI analysis,
// conditional chart selection, and the append-only message list.
package chat

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"techflow-console/internal/models"
	"techflow-console/internal/services/ai"
)

// ErrBusy is returned when a submit arrives while a prior submission is
// still in flight. The turn is rejected, not queued.
var ErrBusy = errors.New("a submission is already in progress")

const greeting = "Hi! I'm your analytics assistant. I have access to all your TechFlow Solutions business data. " +
	"Ask me anything about your metrics, revenue trends, customer behavior, or business performance. " +
	"For example, you could ask \"What's driving our revenue growth?\" or \"Which products are performing best?\""

// Analyzer is the AI query boundary the session depends on.
type Analyzer interface {
	Analyze(ctx context.Context, question string, data models.AggregatedData) ai.Result
}

// ChartSelector maps a question to chart specs.
type ChartSelector interface {
	Select(question string, data models.AggregatedData) []models.ChartSpec
}

// DataSource supplies the aggregated dataset for a turn.
type DataSource interface {
	Aggregate() models.AggregatedData
}

// Session holds one conversation. Messages are append-only and live only as
// long as the session; there is no persistence.
type Session struct {
	ID string

	analyzer Analyzer
	selector ChartSelector
	source   DataSource

	mu         sync.Mutex
	submitting bool
	nextID     int
	messages   []models.ChatMessage
}

func NewSession(id string, analyzer Analyzer, selector ChartSelector, source DataSource) *Session {
	s := &Session{
		ID:       id,
		analyzer: analyzer,
		selector: selector,
		source:   source,
		nextID:   1,
	}
	s.appendLocked(models.RoleAssistant, greeting, nil)
	return s
}

// Submit runs one turn: append the user message, analyze, select charts only
// when the analysis reported valid, and append exactly one assistant
// message. A submit while another is in flight returns ErrBusy and leaves
// the message list untouched.
func (s *Session) Submit(ctx context.Context, text string) (models.ChatMessage, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return models.ChatMessage{}, ErrBusy
	}
	s.submitting = true
	s.appendLocked(models.RoleUser, text, nil)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	data := s.source.Aggregate()
	result := s.analyzer.Analyze(ctx, text, data)

	var specs []models.ChartSpec
	if result.Valid {
		specs = s.selector.Select(text, data)
	}

	s.mu.Lock()
	msg := s.appendLocked(models.RoleAssistant, result.Analysis, specs)
	s.mu.Unlock()
	return msg, nil
}

// Messages returns a snapshot of the conversation in insertion order.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) appendLocked(role, content string, specs []models.ChartSpec) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        strconv.Itoa(s.nextID),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Charts:    specs,
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg
}
