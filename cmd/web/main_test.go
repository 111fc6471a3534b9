package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techflow-console/internal/models"
	"techflow-console/internal/server"
	"techflow-console/internal/services/ai"
	"techflow-console/internal/services/charts"
	"techflow-console/internal/services/chat"
	"techflow-console/internal/store"
)

func newTestStore() *store.Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewFromDataset(store.Dataset{
		Overview: models.BusinessMetrics{
			TotalRevenue:   127394.28,
			TotalCustomers: 2847,
			MRR:            42464.76,
		},
		Customers: []models.Customer{
			{ID: "cus_001", Name: "Acme Corp", Country: "US", CurrentPlan: "Enterprise", RiskScore: models.RiskLow, LifetimeValue: 48200},
		},
		Products: []models.Product{
			{ID: "prod_pro", Name: "Pro Plan", TotalRevenue: 45230, GrowthRate: 24.1},
		},
		Geography: []models.GeographicBucket{
			{Country: "US", CountryName: "United States", Revenue: 67230},
		},
		MonthlyRevenue: []models.MonthlyRevenuePoint{
			{Month: "2024-09", Revenue: 127394.28, Customers: 2847},
		},
	}, logger)
}

func newIntegrationServer() *server.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := newTestStore()
	chats := chat.NewManager(ai.NewAnalyzer(nil, logger), charts.NewSelector(), s)
	return server.NewServer(s, chats, logger, &server.TemplateHandlers{Dashboard: handleDashboard})
}

// Integration tests for HTTP routes
func TestServer_Routes(t *testing.T) {
	srv := newIntegrationServer()

	tests := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/api/overview", http.StatusOK, "application/json"},
		{"/api/customers", http.StatusOK, "application/json"},
		{"/api/products", http.StatusOK, "application/json"},
		{"/api/geography", http.StatusOK, "application/json"},
		{"/api/monthly-revenue", http.StatusOK, "application/json"},
		{"/api/insights", http.StatusOK, "application/json"},
		{"/health", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			ct := w.Header().Get("Content-Type")
			if !strings.Contains(ct, tt.contentType) {
				t.Errorf("content-type = %q, want %q", ct, tt.contentType)
			}

			if tt.contentType == "application/json" {
				var result any
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("invalid json: %v", err)
				}
			}
		})
	}
}

// Test Server-Sent Events routes
func TestServer_SSERoutes(t *testing.T) {
	srv := newIntegrationServer()

	sseRoutes := []string{
		"/sse/overview",
		"/sse/customers",
		"/sse/refresh-all",
	}

	for _, route := range sseRoutes {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", route, nil)

			srv.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}

			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}
		})
	}
}

// One full chat turn over HTTP: submit, then read the conversation back.
func TestServer_ChatRoundTrip(t *testing.T) {
	srv := newIntegrationServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/chat",
		strings.NewReader(`{"session_id":"it","message":"What's driving our revenue growth?"}`))
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r = httptest.NewRequest("GET", "/api/chat/it/messages", nil)
	srv.ServeHTTP(w, r)

	var response struct {
		Data    []models.ChatMessage `json:"data"`
		Success bool                 `json:"success"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if !response.Success {
		t.Error("expected success=true in response")
	}
	// greeting + user + assistant
	if len(response.Data) != 3 {
		t.Fatalf("conversation length = %d, want 3", len(response.Data))
	}
	last := response.Data[2]
	if last.Role != models.RoleAssistant || len(last.Charts) == 0 {
		t.Errorf("last message = %+v, want assistant reply with charts", last)
	}
}

func TestServer_ErrorHandling(t *testing.T) {
	srv := newIntegrationServer()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/api/overview", http.StatusMethodNotAllowed},
		{"PUT", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"GET", "/api/chat", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

// Test dashboard template rendering
func TestDashboardTemplate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	handleDashboard(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, "TechFlow Console") {
		t.Error("dashboard should contain title")
	}

	expectedComponents := []string{
		"Total Revenue",
		"Analytics Assistant",
		`id="customers-content"`,
		`id="chat-latest"`,
		"/sse/refresh-all",
	}

	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("dashboard should contain '%s'", component)
		}
	}
}
