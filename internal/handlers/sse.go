package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"techflow-console/internal/services/chat"
	"techflow-console/internal/store"
)

const maxTableRows = 50

var customerTableTemplate = template.Must(template.New("customerTable").Parse(`
<div id="customers-content">
<table class="modern-table">
<thead><tr><th>Customer</th><th>Country</th><th>Plan</th><th>Lifetime Value</th><th>Risk</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Name}}</td>
<td>{{.Country}}</td>
<td><span class="plan-badge">{{.CurrentPlan}}</span></td>
<td><strong>{{.LifetimeValueFormatted}}</strong></td>
<td><span class="risk-{{.RiskScore}}">{{.RiskScore}}</span></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var chatMessageTemplate = template.Must(template.New("chatMessage").Parse(`
<div id="chat-latest">
<div class="chat-message chat-{{.Role}}">
<p>{{range .Lines}}{{.}}<br>{{end}}</p>
</div>
</div>`))

type SSEHandlers struct {
	store  *store.Store
	chats  *chat.Manager
	logger *slog.Logger
}

func NewSSEHandlers(s *store.Store, chats *chat.Manager, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		store:  s,
		chats:  chats,
		logger: logger,
	}
}

type customerRow struct {
	Name                   string
	Country                string
	CurrentPlan            string
	LifetimeValueFormatted string
	RiskScore              string
}

func (h *SSEHandlers) renderCustomerTable() (string, error) {
	customers := h.store.Customers()
	if len(customers) > maxTableRows {
		customers = customers[:maxTableRows]
	}

	rows := make([]customerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, customerRow{
			Name:                   c.Name,
			Country:                c.Country,
			CurrentPlan:            c.CurrentPlan,
			LifetimeValueFormatted: store.FormatCurrency(c.LifetimeValue),
			RiskScore:              c.RiskScore,
		})
	}

	var buf strings.Builder
	err := customerTableTemplate.Execute(&buf, rows)
	return buf.String(), err
}

func (h *SSEHandlers) HandleOverview(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"overviewData": h.store.Overview(),
		"monthlyData":  h.store.MonthlyRevenue(),
	})
	if err != nil {
		h.logger.Error("marshal overview data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCustomerTable()
	if err != nil {
		h.logger.Error("render customer table", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll pushes every dashboard section in one SSE response.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCustomerTable()
	if err != nil {
		h.logger.Error("render customer table", "error", err)
		return
	}
	sse.PatchElements(html)

	allSignals, err := json.Marshal(map[string]any{
		"overviewData": h.store.Overview(),
		"productsData": h.store.Products(),
		"geoData":      h.store.Geography(),
		"monthlyData":  h.store.MonthlyRevenue(),
		"segmentsData": h.store.Segments(),
	})
	if err != nil {
		h.logger.Error("marshal dashboard signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleChat runs one chat turn and streams the assistant message plus its
// chart specs back as datastar patches.
func (h *SSEHandlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	q := r.URL.Query()
	sessionID := q.Get("session")
	if sessionID == "" {
		sessionID = "default"
	}
	message := q.Get("message")
	if strings.TrimSpace(message) == "" {
		return
	}

	session := h.chats.Session(sessionID)
	msg, err := session.Submit(r.Context(), message)
	if err != nil {
		// Busy session: the prior turn is still streaming, drop this one.
		h.logger.Warn("chat turn rejected", "session", sessionID, "error", err)
		return
	}

	var buf strings.Builder
	if err := chatMessageTemplate.Execute(&buf, struct {
		Role  string
		Lines []string
	}{
		Role:  msg.Role,
		Lines: strings.Split(msg.Content, "\n"),
	}); err != nil {
		h.logger.Error("render chat message", "error", err)
		return
	}
	sse.PatchElements(buf.String())

	if len(msg.Charts) > 0 {
		signals, err := json.Marshal(map[string]any{"chartsData": msg.Charts})
		if err != nil {
			h.logger.Error("marshal chart signals", "error", err)
			return
		}
		sse.PatchSignals(signals)
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
