package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-donation-wallet/internal/handlers"
	"github.com/sbilibin2017/gw-donation-wallet/internal/health"
	"github.com/sbilibin2017/gw-donation-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	driverPostgres = "postgres"
	driverRedis    = "redis"
	driverMemory   = "memory"

	healthRefreshInterval = 10 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// @title gw-donation-wallet API
// @version 1.0.0
// @description Donation wallet: balances, project donations and top-ups from approved linked accounts
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

type postgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool
}

// DSN returns a URL accepted by both pgx and golang-migrate.
func (c postgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type redisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// appConfig is resolved once at startup and passed down.
type appConfig struct {
	AppHost  string
	AppPort  string
	LogLevel string
	GRPCPort string

	StorageDriver string
	Postgres      postgresConfig
	Redis         redisConfig

	LockDriver        string
	LockExpiry        time.Duration
	LockTries         int
	IdempotencyDriver string
	IdempotencyTTL    time.Duration

	KafkaBrokers   []string
	KafkaTopic     string
	EventsPoolSize int

	JWTSecret string
	JWTExp    time.Duration

	AdminEmail    string
	AdminPassword string
}

// needsRedis reports whether any component is backed by Redis.
func (c appConfig) needsRedis() bool {
	return c.LockDriver == driverRedis || c.IdempotencyDriver == driverRedis
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (appConfig, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var errs []error
	getInt := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	getBool := func(key, defaultValue string) bool {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	getDriver := func(key, defaultValue string, allowed ...string) string {
		v := strings.ToLower(getEnv(key, defaultValue))
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
		errs = append(errs, fmt.Errorf("%s: unsupported driver %q", key, v))
		return v
	}

	cfg := appConfig{
		// Application config
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		GRPCPort: getEnv("GRPC_PORT", "50051"),

		// PostgreSQL config
		StorageDriver: getDriver("STORAGE_DRIVER", driverPostgres, driverPostgres, driverMemory),
		Postgres: postgresConfig{
			Host:         getEnv("POSTGRES_HOST", "localhost"),
			Port:         getInt("POSTGRES_PORT", "5432"),
			User:         getEnv("POSTGRES_USER", "user"),
			Password:     getEnv("POSTGRES_PASSWORD", "password"),
			DB:           getEnv("POSTGRES_DB", "database"),
			MaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
			MaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),
			Migrate:      getBool("POSTGRES_MIGRATE", "true"),
		},

		// Redis config
		Redis: redisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getInt("REDIS_PORT", "6379"),
			DB:           getInt("REDIS_DB", "0"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			PoolSize:     getInt("REDIS_POOL_SIZE", "10"),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		},

		// Concurrency config
		LockDriver:        getDriver("LOCK_DRIVER", driverRedis, driverRedis, driverMemory),
		LockExpiry:        time.Duration(getInt("LOCK_EXPIRY_SECOND", "10")) * time.Second,
		LockTries:         getInt("LOCK_TRIES", "50"),
		IdempotencyDriver: getDriver("IDEMPOTENCY_DRIVER", driverRedis, driverRedis, driverMemory),
		IdempotencyTTL:    time.Duration(getInt("IDEMPOTENCY_TTL_SECOND", "600")) * time.Second,

		// Kafka config
		KafkaTopic:     getEnv("KAFKA_TOPIC", "wallet.transactions"),
		EventsPoolSize: getInt("EVENTS_POOL_SIZE", "8"),

		// JWT config
		JWTSecret: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:    time.Duration(getInt("JWT_EXP_SECOND", "3600")) * time.Second,

		// Admin bootstrap
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	if len(errs) > 0 {
		return appConfig{}, errors.Join(errs...)
	}
	return cfg, nil
}

// app holds the services the HTTP layer is built from.
type app struct {
	auth        *services.AuthService
	ledger      *services.WalletLedger
	projects    *services.ProjectFundingTracker
	links       *services.LinkedAccountService
	coordinator *services.TransactionCoordinator
	tokens      *jwt.JWT
}

// run initializes the logger, storage, Redis, Kafka, and the HTTP and gRPC
// servers, then blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg appConfig) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	a := newApp(cfg, deps)
	if err := a.auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, a),
		ReadHeaderTimeout: 5 * time.Second,
	}

	healthSrv := health.NewServer(deps.checks)
	grpcLis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go healthSrv.Watch(ctxShutdown, healthRefreshInterval)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		if err := healthSrv.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	healthSrv.Stop()

	if serveErr != nil {
		return serveErr
	}
	logger.Log.Info("Servers stopped gracefully")
	return nil
}

func newApp(cfg appConfig, deps *dependencies) app {
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTExp)

	ledger := services.NewWalletLedger(deps.wallets, deps.locker, deps.tx)
	projects := services.NewProjectFundingTracker(deps.projects)
	links := services.NewLinkedAccountService(deps.links, deps.locker, deps.tx)

	return app{
		auth:     services.NewAuthService(deps.users, deps.wallets, deps.tx, tokens),
		ledger:   ledger,
		projects: projects,
		links:    links,
		coordinator: services.NewTransactionCoordinator(
			ledger, projects, links,
			deps.donations, deps.topUps,
			deps.idempotency, deps.events,
			deps.locker, deps.tx,
		),
		tokens: tokens,
	}
}

func newRouter(cfg appConfig, a app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(a.auth))
		r.Post("/login", handlers.NewLoginHandler(a.auth))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(a.tokens))

			r.Get("/me", handlers.NewProfileHandler(a.auth, a.ledger))
			r.Get("/wallet/balance", handlers.NewGetBalanceHandler(a.ledger))
			r.Get("/wallet/entries", handlers.NewListEntriesHandler(a.ledger))
			r.Post("/wallet/topup", handlers.NewTopUpHandler(a.coordinator))
			r.Get("/wallet/topups", handlers.NewListTopUpsHandler(a.coordinator))
			r.Post("/donations", handlers.NewDonateHandler(a.coordinator))
			r.Get("/donations", handlers.NewListDonationsHandler(a.coordinator))
			r.Get("/projects", handlers.NewListProjectsHandler(a.projects))
			r.Get("/linked-accounts", handlers.NewListLinkStatusesHandler(a.links))
			r.Post("/linked-accounts", handlers.NewSubmitLinkedAccountHandler(a.links))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.AdminOnly)
				r.Post("/projects", handlers.NewCreateProjectHandler(a.projects))
				r.Put("/linked-accounts/{userID}/{provider}/status", handlers.NewSetLinkStatusHandler(a.links))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", net.JoinHostPort(cfg.AppHost, cfg.AppPort))),
	))

	return r
}
