package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-currency-swap/docs"
	"github.com/sbilibin2017/gw-currency-swap/internal/facades"
	"github.com/sbilibin2017/gw-currency-swap/internal/handlers"
	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
	"github.com/sbilibin2017/gw-currency-swap/internal/repositories"
	"github.com/sbilibin2017/gw-currency-swap/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Price feed sources
const (
	feedSourceHTTP = "http"
	feedSourceGRPC = "grpc"
)

// config is the service configuration read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PriceFeedSource string
	PriceFeedURL    string
	IconBaseURL     string
	RefreshInterval time.Duration
	PriceCacheTTL   time.Duration

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	GWHost string
	GWPort string

	KafkaBrokers []string
	KafkaTopic   string

	SettlementDelay      time.Duration
	SuccessDisplayWindow time.Duration
	SessionIdleTTL       time.Duration
}

// @title gw-currency-swap API
// @version 1.0.0
// @description Token swap service: price catalog, swap form validation and submission flow
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
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

// parseConfig loads environment variables from a file and returns
// the application, price feed, storage, messaging and settlement configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getDuration := func(key, defaultValue string, unit time.Duration) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * unit, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Price feed config
	cfg.PriceFeedSource = getEnv("PRICE_FEED_SOURCE", feedSourceHTTP)
	if cfg.PriceFeedSource != feedSourceHTTP && cfg.PriceFeedSource != feedSourceGRPC {
		err = fmt.Errorf("PRICE_FEED_SOURCE: unknown source %q", cfg.PriceFeedSource)
		return
	}
	cfg.PriceFeedURL = getEnv("PRICE_FEED_URL", facades.DefaultPriceFeedURL)
	cfg.IconBaseURL = getEnv("TOKEN_ICON_BASE_URL", services.DefaultIconBaseURL)
	if cfg.RefreshInterval, err = getDuration("PRICE_REFRESH_INTERVAL_SECOND", "60", time.Second); err != nil {
		return
	}
	if cfg.PriceCacheTTL, err = getDuration("PRICE_CACHE_TTL_SECOND", "30", time.Second); err != nil {
		return
	}

	// PostgreSQL config, an empty host serves demo balances
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "database")
	if cfg.PostgresPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PostgresMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PostgresMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config, an empty host disables the quote cache
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Kafka config, no brokers selects simulated settlement
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "swap-transactions")

	// Settlement config
	if cfg.SettlementDelay, err = getDuration("SETTLEMENT_DELAY_MS", "2000", time.Millisecond); err != nil {
		return
	}
	if cfg.SuccessDisplayWindow, err = getDuration("SUCCESS_DISPLAY_MS", "3000", time.Millisecond); err != nil {
		return
	}
	if cfg.SessionIdleTTL, err = getDuration("SESSION_IDLE_TTL_MS", "1800000", time.Millisecond); err != nil {
		return
	}

	return
}

// run initializes the logger, price feed, storage, settlement and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Price feed
	var feed services.PriceFeed
	switch cfg.PriceFeedSource {
	case feedSourceGRPC:
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		feed = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		logger.Log.Infof("Using gRPC price feed at %s", grpcAddr)
	default:
		feed = facades.NewPriceFeedHTTPFacade(cfg.PriceFeedURL)
		logger.Log.Infof("Using HTTP price feed at %s", cfg.PriceFeedURL)
	}

	// Connect to Redis
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		feed = services.NewCachedPriceFeed(feed, repositories.NewQuoteCacheRepository(rdb, cfg.PriceCacheTTL))
	}

	// Connect to PostgreSQL
	var wallets services.WalletReader = services.NewStaticWalletReader(services.DemoBalances)
	if cfg.PostgresHost != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("postgres connection: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
		db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping: %w", err)
		}
		wallets = repositories.NewWalletReaderRepository(db)
	} else {
		logger.Log.Info("No wallet store configured, serving demo balances")
	}

	// Settlement
	var settler services.Settler = services.NewSimulatedSettler(cfg.SettlementDelay)
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}
		defer writer.Close()
		settler = services.NewKafkaSettler(writer)
		logger.Log.Infof("Publishing swap transactions to Kafka topic %s", cfg.KafkaTopic)
	}

	// Initialize services
	catalog := services.NewPriceCatalog(cfg.IconBaseURL)
	ledger := services.NewBalanceLedger()
	registry := services.NewSessionRegistry(catalog, ledger, wallets, settler, services.TimerScheduler, cfg.SuccessDisplayWindow)
	defer registry.CloseAll()

	refresher := services.NewCatalogRefresher(catalog, feed, cfg.RefreshInterval)
	refresher.OnRefresh(func([]models.Instrument) { registry.RevalidateAll() })
	if err := refresher.Start(ctx); err != nil {
		logger.Log.Warnw("starting without instruments, will retry on the next poll", "error", err)
	}
	defer refresher.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, catalog, refresher, registry),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go registry.RunEviction(ctxShutdown, cfg.SessionIdleTTL)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// newRouter mounts the swap API under /api/v1.
func newRouter(
	cfg config,
	catalog handlers.InstrumentLister,
	refresher handlers.InstrumentRefresher,
	registry *services.SessionRegistry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/instruments", handlers.NewListInstrumentsHandler(catalog))
		r.Post("/instruments/refresh", handlers.NewRefreshInstrumentsHandler(refresher))

		r.Route("/holders/{holder}", func(r chi.Router) {
			r.Get("/balances", handlers.NewGetBalancesHandler(registry))
			r.Post("/balances/refresh", handlers.NewRefreshBalancesHandler(registry))

			r.Get("/swap", handlers.NewGetSwapStateHandler(registry))
			r.Patch("/swap/form", handlers.NewUpdateSwapFormHandler(registry))
			r.Post("/swap/direction", handlers.NewSwapDirectionHandler(registry))
			r.Post("/swap/max", handlers.NewUseMaxBalanceHandler(registry))
			r.Post("/swap/preview", handlers.NewPreviewSwapHandler(registry))
			r.Post("/swap/confirm", handlers.NewConfirmSwapHandler(registry))
			r.Post("/swap/cancel", handlers.NewCancelSwapHandler(registry))
			r.Post("/swap/dismiss", handlers.NewDismissSwapHandler(registry))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
