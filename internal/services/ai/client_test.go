package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"techflow-console/internal/models"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(ClientConfig{APIKey: "sk-test"})

	if c.config.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("default BaseURL = %q", c.config.BaseURL)
	}
	if c.config.Model != "gpt-4" {
		t.Errorf("default Model = %q", c.config.Model)
	}
	if c.config.MaxTokens != 800 {
		t.Errorf("default MaxTokens = %d", c.config.MaxTokens)
	}
	if c.config.Temperature != 0.3 {
		t.Errorf("default Temperature = %v", c.config.Temperature)
	}
	if c.config.Timeout != 30*time.Second {
		t.Errorf("default Timeout = %v", c.config.Timeout)
	}
}

func TestComplete_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  Revenue is up 15.3%.  "}}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{
		BaseURL: srv.URL + "/", // trailing slash must not double up
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
	})

	text, err := c.Complete(context.Background(), "analyze revenue")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "Revenue is up 15.3%." {
		t.Errorf("Complete() = %q, want trimmed content", text)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("request messages = %+v, want system then user", gotReq.Messages)
	}
	if gotReq.Messages[1].Content != "analyze revenue" {
		t.Errorf("user message = %q", gotReq.Messages[1].Content)
	}
}

func TestComplete_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"non-200", http.StatusTooManyRequests, `rate limited`, "returned 429"},
		{"api error object", http.StatusOK, `{"error":{"message":"invalid api key"}}`, "invalid api key"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"empty content", http.StatusOK, `{"choices":[{"message":{"content":"   "}}]}`, "empty content"},
		{"malformed json", http.StatusOK, `{not json`, "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "sk-test"})
			_, err := c.Complete(context.Background(), "question")
			if err == nil {
				t.Fatal("Complete() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestComplete_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server watches the connection and cancels
		// r.Context() when the client goes away; otherwise Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "sk-test"})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Complete(ctx, "question"); err == nil {
		t.Error("Complete() with canceled context expected error")
	}
}

func TestBuildPrompt(t *testing.T) {
	data := models.AggregatedData{
		Overview: models.BusinessMetrics{TotalRevenue: 127394.28},
	}
	prompt := BuildPrompt(`What's driving growth?`, data)

	for _, want := range []string{
		"TechFlow Solutions",
		"CURRENT BUSINESS DATA:",
		`"total_revenue": 127394.28`,
		`USER QUESTION: "What's driving growth?"`,
		"ANALYSIS:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("BuildPrompt() missing %q", want)
		}
	}

	if !strings.HasSuffix(prompt, "ANALYSIS:") {
		t.Error("BuildPrompt() should terminate with the analysis cue")
	}
}
