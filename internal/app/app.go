package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	libdb "smartpark/libs/db"
	libredis "smartpark/libs/redis"

	"smartpark/internal/config"
	httpserver "smartpark/internal/http"
	"smartpark/internal/http/handlers"
	"smartpark/internal/http/middleware"
	"smartpark/internal/metrics"
	"smartpark/internal/models"
	"smartpark/internal/password"
	"smartpark/internal/redisstore"
	"smartpark/internal/repository"
	"smartpark/internal/service"
	"smartpark/internal/sessions"
	"smartpark/internal/ws"
)

// App wires the full dependency graph.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	metrics.Init()

	db, err := libdb.NewPostgresDB(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	redisClient, err := libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionStore := sessions.NewStore(redisClient, cfg.Auth.SessionTTL)
	activeStore := redisstore.NewStore(redisClient, 0)

	hub := ws.NewHub(logger)

	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(repository.NewUserRepository(db), hasher, tokens, sessionStore, logger)

	ticketsService := service.NewTicketsService(
		repository.NewTicketRepository(db),
		activeStore,
		hub,
		cfg.NegativePolicy(),
		logger,
	)

	company := models.BillCompany{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	}
	paymentsService := service.NewPaymentsService(repository.NewPaymentRepository(db), hub, company, logger)
	reportsService := service.NewReportsService(repository.NewReportRepository(db), ticketsService)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Auth:      handlers.NewAuthHandlers(authService, cfg.Auth.SessionTTL, logger),
		Tickets:   handlers.NewTicketsHandlers(ticketsService, logger),
		Payments:  handlers.NewPaymentsHandlers(paymentsService, logger),
		Bills:     handlers.NewBillsHandlers(paymentsService, logger),
		Reports:   handlers.NewReportsHandlers(reportsService, logger),
		Inventory: handlers.NewInventoryHandlers(repository.NewInventoryRepository(db), logger),

		Customers: handlers.NewResourceHandlers[models.Customer](repository.NewCustomerRepository(db), "customers", logger),
		Vehicles:  handlers.NewResourceHandlers[models.Vehicle](repository.NewVehicleRepository(db), "vehicles", logger),
		Rates:     handlers.NewResourceHandlers[models.Rate](repository.NewRateRepository(db), "rates", logger),
		Points:    handlers.NewResourceHandlers[models.ServicePoint](repository.NewServicePointRepository(db), "points", logger),
		Tasks:     handlers.NewResourceHandlers[models.Task](repository.NewTaskRepository(db), "tasks", logger),

		EventsFeed: hub.Handler(),
		Health:     handlers.NewHealthHandler(),
	}, middleware.Auth(tokens, sessionStore))

	server := httpserver.NewServer(
		cfg.HTTPAddress(),
		router,
		logger,
		middleware.Recovery(logger),
		middleware.Logging(logger),
	)

	return &App{server: server, db: db, logger: logger}, nil
}

// Run starts serving HTTP traffic.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases held resources.
func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("closing database", zap.Error(err))
	}
}
