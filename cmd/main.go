package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
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

	"github.com/sbilibin2017/gw-purchase-transactions/internal/facades"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/handlers"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/middlewares"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/migrations"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/repositories"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-purchase-transactions/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything the service reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisExpSecond    int

	kafkaBrokers []string // empty disables publishing
	kafkaTopic   string

	treasuryBaseURL       string
	treasuryTimeoutSecond int

	grpcHost string
	grpcPort string
}

// @title gw-purchase-transactions API
// @version 1.0.0
// @description Microservice for recording purchase transactions and converting them into foreign currencies using Treasury exchange rates
// @host localhost:8080
// @BasePath /api
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
// the application, database, Redis, Kafka, Treasury and gRPC configuration.
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

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "purchase-transactions")

	// Treasury config
	cfg.treasuryBaseURL = getEnv("TREASURY_BASE_URL", facades.DefaultTreasuryBaseURL)
	if cfg.treasuryTimeoutSecond, err = getInt("TREASURY_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	// gRPC config
	cfg.grpcHost = getEnv("GRPC_HOST", "localhost")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	return
}

// run initializes the logger, database, Redis, Kafka, the HTTP server and the gRPC
// health server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations on a dedicated handle; the migrator closes it
	migrateDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	applied, err := migrations.Up(migrateDB)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	logger.Log.Infow("Database schema ready", "migrations_applied", applied)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	// Initialize repositories and facades
	transactionWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	transactionReadRepo := repositories.NewTransactionReadRepository(db)
	transactionCacheRepo := repositories.NewTransactionCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)

	transactionReader := facades.NewTransactionReaderFacade(transactionReadRepo, transactionCacheRepo)
	treasury := facades.NewTreasuryRatesFacade(cfg.treasuryBaseURL, time.Duration(cfg.treasuryTimeoutSecond)*time.Second)

	// Initialize services
	transactionService := services.NewTransactionService(transactionWriteRepo, kafkaWriter, middlewares.OnCommit)
	conversionService := services.NewConversionService(transactionReader, treasury)

	// Initialize handlers
	createTransactionHandler := handlers.NewCreateTransactionHandler(transactionService)
	convertTransactionHandler := handlers.NewConvertTransactionHandler(conversionService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			handlers.RegisterCreateTransactionHandler(r, createTransactionHandler)
		})
		handlers.RegisterConvertTransactionHandler(r, convertTransactionHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// gRPC health server
	grpcAddr := fmt.Sprintf("%s:%s", cfg.grpcHost, cfg.grpcPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", grpcAddr, err)
	}
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcAddr)
		if err := grpcSrv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed, shutting down", "error", serveErr)
	}

	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}
