package server

import (
	"log/slog"
	"net/http"

	"techflow-console/internal/handlers"
	"techflow-console/internal/services/chat"
	"techflow-console/internal/store"
)

type Server struct {
	store       *store.Store
	chats       *chat.Manager
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(s *store.Store, chats *chat.Manager, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	srv := &Server{
		store:       s,
		chats:       chats,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(s, chats, logger),
		sseHandlers: handlers.NewSSEHandlers(s, chats, logger),
	}
	srv.setupRoutes(templateHandlers)
	return srv
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Console page
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/overview", s.apiHandlers.HandleOverview)
	s.mux.HandleFunc("GET /api/customers", s.apiHandlers.HandleCustomers)
	s.mux.HandleFunc("GET /api/transactions", s.apiHandlers.HandleTransactions)
	s.mux.HandleFunc("GET /api/products", s.apiHandlers.HandleProducts)
	s.mux.HandleFunc("GET /api/geography", s.apiHandlers.HandleGeography)
	s.mux.HandleFunc("GET /api/monthly-revenue", s.apiHandlers.HandleMonthlyRevenue)
	s.mux.HandleFunc("GET /api/insights", s.apiHandlers.HandleInsights)

	// Chat endpoints
	s.mux.HandleFunc("POST /api/chat", s.apiHandlers.HandleChatSubmit)
	s.mux.HandleFunc("GET /api/chat/{session}/messages", s.apiHandlers.HandleChatMessages)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/overview", s.sseHandlers.HandleOverview)
	s.mux.HandleFunc("GET /sse/customers", s.sseHandlers.HandleCustomers)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
	s.mux.HandleFunc("GET /sse/chat", s.sseHandlers.HandleChat)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
