package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"techflow-console/internal/errors"
	"techflow-console/internal/models"
	"techflow-console/internal/observability"
	"techflow-console/internal/services/chat"
	"techflow-console/internal/store"
)

const cacheControl = "public, max-age=300"

type APIHandlers struct {
	store  *store.Store
	chats  *chat.Manager
	logger *slog.Logger
}

func NewAPIHandlers(s *store.Store, chats *chat.Manager, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		store:  s,
		chats:  chats,
		logger: logger,
	}
}

func cached() map[string]string {
	return map[string]string{"Cache-Control": cacheControl}
}

func (h *APIHandlers) HandleOverview(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.store.Overview(), cached())
}

// HandleCustomers serves the customer list, optionally narrowed by the
// country, plan, risk or q (free-text search) query parameters.
func (h *APIHandlers) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var data []models.Customer
	switch {
	case q.Get("country") != "":
		data = h.store.CustomersByCountry(q.Get("country"))
	case q.Get("plan") != "":
		data = h.store.CustomersByPlan(q.Get("plan"))
	case q.Get("risk") != "":
		data = h.store.CustomersByRisk(q.Get("risk"))
	case q.Get("q") != "":
		data = h.store.SearchCustomers(q.Get("q"))
	default:
		data = h.store.Customers()
	}

	errors.WriteSuccessWithHeaders(w, data, cached())
}

func (h *APIHandlers) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var data []models.Transaction
	switch {
	case q.Get("status") != "":
		data = h.store.TransactionsByStatus(q.Get("status"))
	case q.Get("customer") != "":
		data = h.store.TransactionsByCustomer(q.Get("customer"))
	default:
		data = h.store.Transactions()
	}

	errors.WriteSuccessWithHeaders(w, data, cached())
}

func (h *APIHandlers) HandleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var data []models.Product
	switch q.Get("sort") {
	case "revenue":
		data = h.store.TopProductsByRevenue(limitParam(q.Get("limit")))
	case "growth":
		data = h.store.TopProductsByGrowth(limitParam(q.Get("limit")))
	default:
		data = h.store.Products()
	}

	errors.WriteSuccessWithHeaders(w, data, cached())
}

func (h *APIHandlers) HandleGeography(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.store.Geography(), cached())
}

func (h *APIHandlers) HandleMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	if months := limitParam(r.URL.Query().Get("months")); months > 0 {
		errors.WriteSuccessWithHeaders(w, h.store.RecentRevenueTrend(months), cached())
		return
	}
	errors.WriteSuccessWithHeaders(w, h.store.MonthlyRevenue(), cached())
}

// HandleInsights serves the four precomputed domain summaries.
func (h *APIHandlers) HandleInsights(w http.ResponseWriter, r *http.Request) {
	insights := struct {
		Revenue    models.RevenueInsights    `json:"revenue"`
		Customers  models.CustomerInsights   `json:"customers"`
		Products   models.ProductInsights    `json:"products"`
		Geographic models.GeographicInsights `json:"geographic"`
	}{
		Revenue:    h.store.RevenueInsights(),
		Customers:  h.store.CustomerInsights(),
		Products:   h.store.ProductInsights(),
		Geographic: h.store.GeographicInsights(),
	}

	errors.WriteSuccessWithHeaders(w, insights, cached())
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HandleChatSubmit runs one conversation turn. A submit while the session is
// already processing is rejected with a conflict, mirroring the disabled
// input affordance of the console UI.
func (h *APIHandlers) HandleChatSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Invalid request body"), requestID)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		errors.WriteError(w, h.logger, errors.Validation("Message cannot be empty"), requestID)
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	session := h.chats.Session(req.SessionID)
	msg, err := session.Submit(r.Context(), req.Message)
	if err == chat.ErrBusy {
		errors.WriteError(w, h.logger, errors.Conflict("A submission is already in progress for this session"), requestID)
		return
	}
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "Chat turn failed"), requestID)
		return
	}

	errors.WriteSuccess(w, msg)
}

func (h *APIHandlers) HandleChatMessages(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	session, ok := h.chats.Lookup(r.PathValue("session"))
	if !ok {
		errors.WriteError(w, h.logger, errors.NotFound("Unknown chat session"), requestID)
		return
	}

	errors.WriteSuccess(w, session.Messages())
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	stats["chat_sessions"] = h.chats.Count()

	errors.WriteSuccess(w, stats)
}

func limitParam(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
