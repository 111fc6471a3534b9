// Package templates holds the server-rendered console pages as templ
// components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Dashboard renders the console shell: headline metrics, the customer table
// and chart containers fed over SSE, and the analytics chat panel.
func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardPage)
		return err
	})
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>TechFlow Console</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@latest/bundles/datastar.js"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f6f8fb; color: #1a1f36; }
.shell { display: grid; grid-template-columns: 220px 1fr; min-height: 100vh; }
.sidebar { background: #1a1f36; color: #fff; padding: 24px 16px; }
.sidebar h1 { font-size: 18px; margin: 0 0 24px; }
.sidebar a { display: block; color: #a5acc4; padding: 8px 10px; border-radius: 6px; text-decoration: none; }
.sidebar a.active, .sidebar a:hover { background: #2a3152; color: #fff; }
.main { padding: 24px 32px; }
.cards { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; margin-bottom: 24px; }
.card { background: #fff; border-radius: 10px; padding: 16px 20px; box-shadow: 0 1px 3px rgba(26,31,54,.08); }
.card .label { color: #697386; font-size: 13px; }
.card .value { font-size: 24px; font-weight: 600; margin-top: 4px; }
.panel { background: #fff; border-radius: 10px; padding: 20px; box-shadow: 0 1px 3px rgba(26,31,54,.08); margin-bottom: 24px; }
.modern-table { width: 100%; border-collapse: collapse; font-size: 14px; }
.modern-table th { text-align: left; color: #697386; border-bottom: 1px solid #e3e8ee; padding: 8px; }
.modern-table td { border-bottom: 1px solid #f0f2f6; padding: 8px; }
.plan-badge { background: #e8eaf6; border-radius: 10px; padding: 2px 8px; font-size: 12px; }
.risk-low { color: #0e9f6e; } .risk-medium { color: #c27803; } .risk-high { color: #e02424; }
.chat-message { border-radius: 10px; padding: 12px 16px; margin: 8px 0; max-width: 75%; white-space: pre-wrap; }
.chat-user { background: #6366f1; color: #fff; margin-left: auto; }
.chat-assistant { background: #f0f2f6; }
#chat-input { width: 100%; padding: 10px 12px; border: 1px solid #e3e8ee; border-radius: 8px; }
</style>
</head>
<body data-on-load="@get('/sse/refresh-all')">
<div class="shell">
  <nav class="sidebar">
    <h1>TechFlow Console</h1>
    <a class="active" href="/">Dashboard</a>
    <a href="/api/customers">Customers</a>
    <a href="/api/transactions">Transactions</a>
    <a href="/api/products">Products</a>
  </nav>
  <main class="main">
    <div class="cards" data-signals="{overviewData: {}, productsData: [], geoData: [], monthlyData: [], segmentsData: [], chartsData: []}">
      <div class="card"><div class="label">Total Revenue</div><div class="value" data-text="'$' + ($overviewData.total_revenue ?? 0).toLocaleString()"></div></div>
      <div class="card"><div class="label">Customers</div><div class="value" data-text="($overviewData.total_customers ?? 0).toLocaleString()"></div></div>
      <div class="card"><div class="label">MRR</div><div class="value" data-text="'$' + ($overviewData.mrr ?? 0).toLocaleString()"></div></div>
      <div class="card"><div class="label">Churn Rate</div><div class="value" data-text="($overviewData.churn_rate ?? 0) + '%'"></div></div>
    </div>
    <div class="panel" id="customers-content">Loading customers…</div>
    <div class="panel">
      <h2>Analytics Assistant</h2>
      <div id="chat-latest"></div>
      <form data-on-submit="@get('/sse/chat?session=default&message=' + encodeURIComponent($chatDraft)); $chatDraft = ''">
        <input id="chat-input" data-bind-chatDraft placeholder="Ask about revenue, customers, products, geography…">
      </form>
    </div>
    <div class="panel" id="charts-panel"></div>
  </main>
</div>
</body>
</html>
`
