package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/vkravets/budget-cloud/internal/converter"
	"github.com/vkravets/budget-cloud/internal/facades"
	"github.com/vkravets/budget-cloud/internal/handlers"
	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/middlewares"
	"github.com/vkravets/budget-cloud/internal/repositories"
	"github.com/vkravets/budget-cloud/internal/services"
	"github.com/vkravets/budget-cloud/internal/view"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title budget-cloud API
// @version 1.0.0
// @description Personal finance tracker: banks, accounts, transactions, reports, and currency conversion
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, basePath, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, autoMigrate,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		ratesURL, ratesRefreshSecond, ratesCacheTTLSecond,
		logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, basePath,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, autoMigrate,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		ratesURL, ratesRefreshSecond, ratesCacheTTLSecond,
		logLevel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, rate-provider, and logging
// configuration.
func parseConfig(path string) (
	appHost, appPort, basePath string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, autoMigrate bool,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	ratesURL string, ratesRefreshSecond, ratesCacheTTLSecond int,
	logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	basePath = getEnv("APP_BASE_PATH", "")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	autoMigrate = getEnv("APP_AUTO_MIGRATE", "true") == "true"

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "budget")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "budget.transactions")

	// Exchange-rate provider config
	ratesURL = getEnv("RATES_API_URL", "https://open.er-api.com/v6")
	if ratesRefreshSecond, err = strconv.Atoi(getEnv("RATES_REFRESH_SECOND", "3600")); err != nil {
		return
	}
	if ratesCacheTTLSecond, err = strconv.Atoi(getEnv("RATES_CACHE_TTL_SECOND", "900")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, converter,
// and HTTP server. It sets up routes, applies middleware, starts the
// background rate refresher, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, basePath string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, autoMigrate bool,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	ratesURL string, ratesRefreshSecond, ratesCacheTTLSecond int,
	logLevel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if autoMigrate {
		if err := repositories.EnsureSchema(ctx, db); err != nil {
			logger.Log.Fatal("schema migration failed:", err)
		}
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for transaction events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize converter: hardcoded fallback table, refreshed through
	// the Redis snapshot cache and the external provider
	ratesFacade := facades.NewExchangeRatesHTTPFacade(ratesURL, 10*time.Second)
	ratesCache := repositories.NewRatesCacheRepository(rdb, time.Duration(ratesCacheTTLSecond)*time.Second)
	ratesService := services.NewRatesService(ratesFacade, ratesCache)

	conv, err := converter.New(converter.BaseCurrency, converter.DefaultTable(), ratesService)
	if err != nil {
		logger.Log.Fatal("converter initialization failed:", err)
	}
	if err := conv.Refresh(ctx); err != nil {
		logger.Log.Warnw("initial rate refresh failed, using fallback table", "error", err)
	}

	// Initialize repositories
	bankReadRepo := repositories.NewBankReadRepository(db)
	bankWriteRepo := repositories.NewBankWriteRepository(db, middlewares.GetTxFromContext)
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, middlewares.GetTxFromContext)
	transactionReadRepo := repositories.NewTransactionReadRepository(db)
	transactionWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize services
	bankService := services.NewBankService(bankReadRepo, bankWriteRepo)
	accountService := services.NewAccountService(accountReadRepo, accountWriteRepo)
	transactionService := services.NewTransactionService(transactionReadRepo, transactionWriteRepo, kafkaWriter)
	reportService := services.NewReportService(reportRepo, conv)

	// Route table for the tab shell
	routes := view.NewRoutes(basePath)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware())

	r.Get("/health", handlers.NewHealthHandler(
		func(ctx context.Context) error { return db.PingContext(ctx) },
		func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/banks", handlers.NewListBanksHandler(bankService))
		r.Get("/accounts", handlers.NewListAccountsHandler(accountService))
		r.Get("/transactions", handlers.NewListTransactionsHandler(transactionService))
		r.Get("/reports/balance", handlers.NewBalanceReportHandler(reportService))
		r.Get("/reports/transactions", handlers.NewTransactionsReportHandler(reportService))
		r.Get("/categories", handlers.NewListCategoriesHandler(reportService))
		r.Get("/stats/summary", handlers.NewSummaryStatsHandler(reportService))
		r.Get("/rates", handlers.NewGetRatesHandler(conv))
		r.Get("/convert", handlers.NewConvertHandler(conv))

		// Writes run inside a database transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/banks", handlers.NewCreateBankHandler(bankService))
			r.Post("/accounts", handlers.NewCreateAccountHandler(accountService))
			r.Post("/transactions", handlers.NewCreateTransactionHandler(transactionService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Tab shell: every registered view path serves the UI with the
	// resolved tab active; unknown paths land on the default view
	r.NotFound(handlers.NewUIHandler(routes))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Background rate refresher; a failed refresh keeps the last good table
	go func() {
		ticker := time.NewTicker(time.Duration(ratesRefreshSecond) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctxShutdown.Done():
				return
			case <-ticker.C:
				if err := conv.Refresh(ctxShutdown); err != nil {
					logger.Log.Warnw("rate refresh failed", "error", err)
				}
			}
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
