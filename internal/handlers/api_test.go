package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techflow-console/internal/models"
	"techflow-console/internal/services/ai"
	"techflow-console/internal/services/charts"
	"techflow-console/internal/services/chat"
	"techflow-console/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handlerDataset() store.Dataset {
	return store.Dataset{
		Overview: models.BusinessMetrics{
			TotalRevenue:   127394.28,
			TotalCustomers: 2847,
			RevenueGrowth:  15.3,
		},
		Customers: []models.Customer{
			{ID: "cus_001", Name: "Acme Corp", Country: "US", CurrentPlan: "Enterprise", RiskScore: models.RiskLow},
			{ID: "cus_002", Name: "Globex Ltd", Country: "GB", CurrentPlan: "Pro", RiskScore: models.RiskHigh},
			{ID: "cus_003", Name: "Initech", Country: "US", CurrentPlan: "Basic", RiskScore: models.RiskMedium},
		},
		Transactions: []models.Transaction{
			{ID: "txn_0001", CustomerID: "cus_001", Status: models.StatusSucceeded, Amount: 299},
			{ID: "txn_0002", CustomerID: "cus_002", Status: models.StatusFailed, Amount: 99},
		},
		Products: []models.Product{
			{ID: "prod_basic", Name: "Basic Plan", TotalRevenue: 28940, GrowthRate: 12.3},
			{ID: "prod_pro", Name: "Pro Plan", TotalRevenue: 45230, GrowthRate: 24.1},
		},
		Geography: []models.GeographicBucket{
			{Country: "US", CountryName: "United States", Revenue: 67230},
		},
		MonthlyRevenue: []models.MonthlyRevenuePoint{
			{Month: "2024-07", Revenue: 115230.11, Customers: 2698},
			{Month: "2024-08", Revenue: 121098.44, Customers: 2779},
			{Month: "2024-09", Revenue: 127394.28, Customers: 2847},
		},
		Segments: []models.CustomerSegment{
			{Segment: "Enterprise", CustomerCount: 156},
		},
	}
}

func newTestHandlers(t *testing.T) *APIHandlers {
	t.Helper()
	logger := testLogger()
	s := store.NewFromDataset(handlerDataset(), logger)
	analyzer := ai.NewAnalyzer(nil, logger)
	chats := chat.NewManager(analyzer, charts.NewSelector(), s)
	return NewAPIHandlers(s, chats, logger)
}

type successEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Success bool `json:"success"`
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env successEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.Success {
		t.Fatal("envelope success = false")
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func TestHandleOverview(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleOverview(rec, httptest.NewRequest(http.MethodGet, "/api/overview", nil))

	var got models.BusinessMetrics
	decodeSuccess(t, rec, &got)
	if got.TotalRevenue != 127394.28 || got.TotalCustomers != 2847 {
		t.Errorf("overview = %+v", got)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestHandleCustomers_Filters(t *testing.T) {
	h := newTestHandlers(t)

	tests := []struct {
		name    string
		url     string
		wantIDs []string
	}{
		{"all", "/api/customers", []string{"cus_001", "cus_002", "cus_003"}},
		{"by country case-insensitive", "/api/customers?country=us", []string{"cus_001", "cus_003"}},
		{"by plan", "/api/customers?plan=Pro", []string{"cus_002"}},
		{"by risk", "/api/customers?risk=high", []string{"cus_002"}},
		{"by search", "/api/customers?q=acme", []string{"cus_001"}},
		{"no match is empty not error", "/api/customers?country=FR", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleCustomers(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			var got []models.Customer
			decodeSuccess(t, rec, &got)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestHandleTransactions_Filters(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleTransactions(rec, httptest.NewRequest(http.MethodGet, "/api/transactions?status=failed", nil))

	var got []models.Transaction
	decodeSuccess(t, rec, &got)
	if len(got) != 1 || got[0].ID != "txn_0002" {
		t.Errorf("failed transactions = %+v", got)
	}

	rec = httptest.NewRecorder()
	h.HandleTransactions(rec, httptest.NewRequest(http.MethodGet, "/api/transactions?customer=cus_001", nil))
	decodeSuccess(t, rec, &got)
	if len(got) != 1 || got[0].ID != "txn_0001" {
		t.Errorf("customer transactions = %+v", got)
	}
}

func TestHandleProducts_Sorting(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products?sort=revenue&limit=1", nil))

	var got []models.Product
	decodeSuccess(t, rec, &got)
	if len(got) != 1 || got[0].ID != "prod_pro" {
		t.Errorf("top product by revenue = %+v", got)
	}

	rec = httptest.NewRecorder()
	h.HandleProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products?sort=growth&limit=1", nil))
	decodeSuccess(t, rec, &got)
	if len(got) != 1 || got[0].ID != "prod_pro" {
		t.Errorf("top product by growth = %+v", got)
	}

	// Junk limit falls back to the default rather than erroring.
	rec = httptest.NewRecorder()
	h.HandleProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products?sort=revenue&limit=banana", nil))
	decodeSuccess(t, rec, &got)
	if len(got) != 2 {
		t.Errorf("products with junk limit = %d, want all", len(got))
	}
}

func TestHandleMonthlyRevenue_Window(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleMonthlyRevenue(rec, httptest.NewRequest(http.MethodGet, "/api/monthly-revenue?months=2", nil))

	var got []models.MonthlyRevenuePoint
	decodeSuccess(t, rec, &got)
	if len(got) != 2 || got[0].Month != "2024-08" {
		t.Errorf("trend window = %+v, want last two months", got)
	}

	rec = httptest.NewRecorder()
	h.HandleMonthlyRevenue(rec, httptest.NewRequest(http.MethodGet, "/api/monthly-revenue", nil))
	decodeSuccess(t, rec, &got)
	if len(got) != 3 {
		t.Errorf("full series length = %d", len(got))
	}
}

func TestHandleInsights(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleInsights(rec, httptest.NewRequest(http.MethodGet, "/api/insights", nil))

	var got struct {
		Revenue   models.RevenueInsights  `json:"revenue"`
		Customers models.CustomerInsights `json:"customers"`
	}
	decodeSuccess(t, rec, &got)
	if got.Revenue.TotalRevenue != 127394.28 {
		t.Errorf("revenue insights = %+v", got.Revenue)
	}
	if got.Customers.TotalCustomers != 2847 {
		t.Errorf("customer insights = %+v", got.Customers)
	}
}

func TestHandleChatSubmit(t *testing.T) {
	h := newTestHandlers(t)

	body := strings.NewReader(`{"session_id":"s1","message":"What's driving our revenue growth?"}`)
	rec := httptest.NewRecorder()
	h.HandleChatSubmit(rec, httptest.NewRequest(http.MethodPost, "/api/chat", body))

	var got models.ChatMessage
	decodeSuccess(t, rec, &got)
	if got.Role != models.RoleAssistant {
		t.Errorf("reply role = %q", got.Role)
	}
	if len(got.Charts) == 0 {
		t.Error("revenue question should come back with charts")
	}
}

func TestHandleChatSubmit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed body", `{not json`, http.StatusBadRequest, "BAD_REQUEST"},
		{"empty message", `{"session_id":"s1","message":"   "}`, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(t)
			rec := httptest.NewRecorder()
			h.HandleChatSubmit(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body)))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var env errorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if env.Success {
				t.Error("error envelope success = true")
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleChatSubmit_DefaultSession(t *testing.T) {
	h := newTestHandlers(t)

	body := strings.NewReader(`{"message":"show me product performance"}`)
	rec := httptest.NewRecorder()
	h.HandleChatSubmit(rec, httptest.NewRequest(http.MethodPost, "/api/chat", body))
	decodeSuccess(t, rec, nil)

	if _, ok := h.chats.Lookup("default"); !ok {
		t.Error("missing session_id should land in the default session")
	}
}

func TestHandleChatMessages(t *testing.T) {
	h := newTestHandlers(t)

	// Unknown session is a 404, not an implicit create.
	req := httptest.NewRequest(http.MethodGet, "/api/chat/ghost/messages", nil)
	req.SetPathValue("session", "ghost")
	rec := httptest.NewRecorder()
	h.HandleChatMessages(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", rec.Code)
	}

	h.chats.Session("s2")
	req = httptest.NewRequest(http.MethodGet, "/api/chat/s2/messages", nil)
	req.SetPathValue("session", "s2")
	rec = httptest.NewRecorder()
	h.HandleChatMessages(rec, req)

	var got []models.ChatMessage
	decodeSuccess(t, rec, &got)
	if len(got) != 1 || got[0].Role != models.RoleAssistant {
		t.Errorf("fresh session messages = %+v, want greeting only", got)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var got map[string]string
	decodeSuccess(t, rec, &got)
	if got["status"] != "healthy" {
		t.Errorf("health status = %q", got["status"])
	}
}

func TestHandleStats(t *testing.T) {
	h := newTestHandlers(t)
	h.chats.Session("s1")

	rec := httptest.NewRecorder()
	h.HandleStats(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	var got map[string]any
	decodeSuccess(t, rec, &got)
	if got["chat_sessions"] != float64(1) {
		t.Errorf("chat_sessions = %v, want 1", got["chat_sessions"])
	}
	if got["customers"] != float64(3) {
		t.Errorf("customers = %v, want 3", got["customers"])
	}
}
