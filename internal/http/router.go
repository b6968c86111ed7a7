package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartpark/internal/http/handlers"
	"smartpark/internal/http/middleware"
	"smartpark/internal/models"
)

// RouterDeps collects everything the router wires together.
type RouterDeps struct {
	Auth      *handlers.AuthHandlers
	Tickets   *handlers.TicketsHandlers
	Payments  *handlers.PaymentsHandlers
	Bills     *handlers.BillsHandlers
	Reports   *handlers.ReportsHandlers
	Inventory *handlers.InventoryHandlers

	Customers *handlers.ResourceHandlers[models.Customer]
	Vehicles  *handlers.ResourceHandlers[models.Vehicle]
	Rates     *handlers.ResourceHandlers[models.Rate]
	Points    *handlers.ResourceHandlers[models.ServicePoint]
	Tasks     *handlers.ResourceHandlers[models.Task]

	EventsFeed http.HandlerFunc
	Health     http.HandlerFunc
}

// NewRouter registers all routes. Everything under /api except the register
// and login endpoints sits behind the auth middleware; metrics are recorded
// per logical route so path parameters stay out of label values.
func NewRouter(deps RouterDeps, auth func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	public := func(pattern, route string, handler http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(handler, middleware.Metrics(route)))
	}
	protected := func(pattern, route string, handler http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(handler, middleware.Metrics(route), auth))
	}

	public("GET /health", "/health", deps.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	public("POST /api/auth/register", "/api/auth/register", deps.Auth.Register)
	public("POST /api/auth/login", "/api/auth/login", deps.Auth.Login)
	protected("POST /api/auth/logout", "/api/auth/logout", deps.Auth.Logout)
	protected("GET /api/auth/check", "/api/auth/check", deps.Auth.Check)

	protected("POST /api/tickets", "/api/tickets", deps.Tickets.Open)
	protected("GET /api/tickets", "/api/tickets", deps.Tickets.List)
	protected("GET /api/tickets/active", "/api/tickets/active", deps.Tickets.ListActive)
	protected("GET /api/tickets/{id}", "/api/tickets/{id}", deps.Tickets.Get)
	protected("PUT /api/tickets/{id}/complete", "/api/tickets/{id}/complete", deps.Tickets.Complete)

	protected("POST /api/payments", "/api/payments", deps.Payments.Record)
	protected("GET /api/payments", "/api/payments", deps.Payments.List)
	protected("GET /api/payments/{id}", "/api/payments/{id}", deps.Payments.Get)

	protected("GET /api/bills/{paymentId}", "/api/bills/{paymentId}", deps.Bills.Get)
	protected("GET /api/bills/{paymentId}/pdf", "/api/bills/{paymentId}/pdf", deps.Bills.PDF)

	protected("GET /api/reports/daily", "/api/reports/daily", deps.Reports.Daily)
	protected("GET /api/reports/monthly/{year}/{month}", "/api/reports/monthly", deps.Reports.Monthly)
	protected("GET /api/reports/monthly/{year}/{month}/export", "/api/reports/monthly/export", deps.Reports.MonthlyExport)
	protected("GET /api/reports/summary", "/api/reports/summary", deps.Reports.Summary)
	protected("GET /api/reports/trends", "/api/reports/trends", deps.Reports.Trends)

	registerResource(mux, "customers", deps.Customers, auth)
	registerResource(mux, "vehicles", deps.Vehicles, auth)
	registerResource(mux, "rates", deps.Rates, auth)
	registerResource(mux, "points", deps.Points, auth)
	registerResource(mux, "tasks", deps.Tasks, auth)

	protected("GET /api/inventory", "/api/inventory", deps.Inventory.List)
	protected("PUT /api/inventory/{id}", "/api/inventory/{id}", deps.Inventory.SetStock)

	// The websocket upgrade needs the raw ResponseWriter, so no metrics
	// wrapper here.
	mux.Handle("GET /ws/events", middleware.Chain(deps.EventsFeed, auth))

	return mux
}

func registerResource[T any](mux *http.ServeMux, name string, h *handlers.ResourceHandlers[T], auth func(http.Handler) http.Handler) {
	base := "/api/" + name
	protected := func(pattern, route string, handler http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(handler, middleware.Metrics(route), auth))
	}

	protected("GET "+base, base, h.List)
	protected("POST "+base, base, h.Create)
	protected("GET "+base+"/{id}", base+"/{id}", h.Get)
	protected("PUT "+base+"/{id}", base+"/{id}", h.Update)
	protected("DELETE "+base+"/{id}", base+"/{id}", h.Delete)
}
