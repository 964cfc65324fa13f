// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/finance-tracker/dashboard/config"
	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
	"github.com/finance-tracker/dashboard/internal/application/usecase/category"
	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
	"github.com/finance-tracker/dashboard/internal/infra/cache"
	"github.com/finance-tracker/dashboard/internal/infra/server/router"
	"github.com/finance-tracker/dashboard/internal/integration/adapters"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/dashboard/internal/integration/guard"
	"github.com/finance-tracker/dashboard/internal/integration/ledgerapi"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
	"github.com/finance-tracker/dashboard/internal/integration/worker"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Store       adapter.LedgerStore
	Router      *router.Router
	SyncWorker  *worker.SyncWorker
	RateLimiter *middleware.RateLimiter
}

// Options overrides infrastructure pieces, mainly for tests.
type Options struct {
	Clock      adapter.Clock
	Registerer prometheus.Registerer
	LedgerAPI  adapter.LedgerAPI
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redis keeps the in-flight mutation guard in process memory.
func NewInjector(cfg *config.Config, redis *cache.Redis) *Injector {
	return NewInjectorWithOptions(cfg, redis, Options{})
}

// NewInjectorWithOptions is NewInjector with overridable infrastructure.
func NewInjectorWithOptions(cfg *config.Config, redis *cache.Redis, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock(cfg.Ledger.Location)
	}
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// Create adapters/services
	store := persistence.NewLedgerStore(clock)
	metrics := adapters.NewPrometheusMetrics(registerer)

	ledgerAPI := opts.LedgerAPI
	if ledgerAPI == nil {
		var tokenService adapter.TokenService
		if cfg.LedgerAPI.Secret != "" {
			tokenService = adapters.NewTokenService(cfg.LedgerAPI.Secret, cfg.LedgerAPI.TokenTTL, clock)
		} else {
			slog.Warn("LEDGER_API_SECRET not set, ledger requests are sent without a service token")
		}
		ledgerAPI = ledgerapi.NewClient(&cfg.LedgerAPI, tokenService, metrics)
	}

	var mutationGuard adapter.MutationGuard
	var redisHealthChecker func() bool
	if redis != nil {
		mutationGuard = guard.NewRedisGuard(redis.Client(), cfg.Redis.GuardTTL)
		redisHealthChecker = redis.HealthCheck
	} else {
		mutationGuard = guard.NewMemoryGuard(cfg.Redis.GuardTTL)
	}

	window := valueobject.NewEditWindow(cfg.Ledger.EditWindowHours)

	// Create dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(store, clock, cfg.Ledger.RecentCount)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(store, clock)
	getTrendsUseCase := dashboard.NewGetTrendsUseCase(store, clock)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(store, clock, window)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(ledgerAPI, store, mutationGuard, clock, window, metrics)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(ledgerAPI, store, mutationGuard, clock, window, metrics)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(ledgerAPI, store, mutationGuard, clock, window, metrics)
	getEditabilityUseCase := transaction.NewGetEditabilityUseCase(store, clock, window)
	syncLedgerUseCase := transaction.NewSyncLedgerUseCase(ledgerAPI, store, clock, metrics)

	// Create account and category use cases
	listAccountsUseCase := account.NewListAccountsUseCase(store)
	getAccountStatsUseCase := account.NewGetAccountStatsUseCase(ledgerAPI)
	listCategoriesUseCase := category.NewListCategoriesUseCase(store, clock)

	// Create controllers
	healthController := controller.NewHealthController(redisHealthChecker, store.LastSyncedAt)

	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		getCategoryBreakdownUseCase,
		getTrendsUseCase,
		cfg.Ledger.Location,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		getEditabilityUseCase,
		cfg.Ledger.Location,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		getAccountStatsUseCase,
	)

	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	syncController := controller.NewSyncController(syncLedgerUseCase, cfg.Ledger.Location)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Create background worker
	syncWorker := worker.NewSyncWorker(syncLedgerUseCase, worker.SyncWorkerConfig{
		RefreshInterval: cfg.Ledger.RefreshInterval,
		SyncOnStart:     cfg.Ledger.SyncOnStartup,
	})

	// Create router
	r := router.NewRouter(
		healthController,
		dashboardController,
		transactionController,
		accountController,
		categoryController,
		syncController,
		rateLimiter,
	)

	return &Injector{
		Config:      cfg,
		Store:       store,
		Router:      r,
		SyncWorker:  syncWorker,
		RateLimiter: rateLimiter,
	}
}
