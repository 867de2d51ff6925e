package main

import (
	"context"
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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-health-portal/internal/facades"
	"github.com/sbilibin2017/gw-health-portal/internal/handlers"
	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/repositories"
	"github.com/sbilibin2017/gw-health-portal/internal/services"

	"github.com/sbilibin2017/gw-health-portal/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-health-portal/docs"
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

// @title gw-health-portal API
// @version 1.0.0
// @description Patient portal: health summary, service catalog and service selection
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name sb-access-token
func main() {
	printBuildInfo()
	configPath, migrate := parseFlags()

	appHost, appPort, publicURL, logLevel,
		dsMaxOpenConns, dsMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		grpcHealthPort,
		authSecret, authCookieName, authCookieSecure, authLoginURL,
		csrfAuthKey,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, publicURL, logLevel,
		dsMaxOpenConns, dsMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		grpcHealthPort,
		authSecret, authCookieName, authCookieSecure, authLoginURL,
		csrfAuthKey,
		migrate,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and whether the schema should be applied on start.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	m := flag.Bool("migrate", false, "Apply schema and seed the service catalog on start")
	flag.Parse()
	return *c, *m
}

// parseConfig loads environment variables from a file and returns the
// application, datastore, Redis, Kafka, gRPC, auth and CSRF configuration.
// DATASTORE_URL and DATASTORE_ANON_KEY are read by facades.DatastoreConfigFromEnv.
func parseConfig(path string) (
	appHost, appPort, publicURL, logLevel string,
	dsMaxOpenConns, dsMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic string,
	grpcHealthPort string,
	authSecret, authCookieName string, authCookieSecure bool, authLoginURL string,
	csrfAuthKey string,
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
	publicURL = getEnv("APP_PUBLIC_URL", "http://"+appHost+":"+appPort)
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Datastore pool config
	if dsMaxOpenConns, err = strconv.Atoi(getEnv("DATASTORE_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dsMaxIdleConns, err = strconv.Atoi(getEnv("DATASTORE_MAX_IDLE_CONNS", "8")); err != nil {
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, publishing is off when no brokers are set
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "service-selections")

	// gRPC health config
	grpcHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	// Auth config
	authSecret = getEnv("AUTH_JWT_SECRET", "super-secret-jwt-token-with-at-least-32-characters")
	authCookieName = getEnv("AUTH_COOKIE_NAME", identity.DefaultCookieName)
	if authCookieSecure, err = strconv.ParseBool(getEnv("AUTH_COOKIE_SECURE", "false")); err != nil {
		return
	}
	authLoginURL = getEnv("AUTH_LOGIN_URL", "http://localhost:54321/auth/v1/authorize")

	// CSRF config
	csrfAuthKey = getEnv("CSRF_AUTH_KEY", "0123456789abcdef0123456789abcdef")
	if len(csrfAuthKey) != 32 {
		err = fmt.Errorf("CSRF_AUTH_KEY must be 32 bytes, got %d", len(csrfAuthKey))
		return
	}

	return
}

// run initializes the logger, datastore, Redis, Kafka and the HTTP and gRPC
// health servers. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, publicURL, logLevel string,
	dsMaxOpenConns, dsMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic string,
	grpcHealthPort string,
	authSecret, authCookieName string, authCookieSecure bool, authLoginURL string,
	csrfAuthKey string,
	migrate bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to the datastore; the portal starts even when it is unreachable
	dsCfg := facades.DatastoreConfigFromEnv()
	dsCfg.MaxOpenConns = dsMaxOpenConns
	dsCfg.MaxIdleConns = dsMaxIdleConns
	dsCfg.ConnMaxLifetime = 30 * time.Minute

	db, err := facades.NewServerClient(ctx, dsCfg)
	if err != nil {
		return fmt.Errorf("datastore client: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Warnw("Datastore ping failed, pages will show their error states", "error", err)
	} else if migrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for selection events
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer kw.Close()
		kafkaWriter = kw
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, selection events will not be published")
	}

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	serviceRepo := repositories.NewServiceReadRepository(db, txGetter)
	patientRepo := repositories.NewPatientInfoReadRepository(db, txGetter)
	userRepo := repositories.NewUserReadRepository(db, txGetter)
	userServiceWriteRepo := repositories.NewUserServiceWriteRepository(db, txGetter)
	userServiceReadRepo := repositories.NewUserServiceReadRepository(db, txGetter)
	revocationRepo := repositories.NewSessionRevocationRepository(rdb)

	// Initialize identity provider
	provider := identity.New(
		identity.WithSecretKey(authSecret),
		identity.WithCookieName(authCookieName),
		identity.WithSecureCookie(authCookieSecure),
		identity.WithRevocations(revocationRepo),
	)

	// Initialize services
	patientService := services.NewPatientService(patientRepo, userRepo, serviceRepo)
	catalogService := services.NewCatalogService(serviceRepo)
	myServicesService := services.NewMyServicesService(userServiceReadRepo)
	selectionService := services.NewSelectionService(serviceRepo, userServiceWriteRepo, kafkaWriter)
	sessionService := services.NewSessionService(provider, revocationRepo)

	// Initialize handlers
	rd, err := handlers.NewRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	patientSummaryHandler := handlers.NewPatientSummaryHandler(patientService, provider)
	selectServiceHandler := handlers.NewSelectServiceHandler(selectionService)
	dashboardPage := handlers.NewDashboardPage(patientService, rd)
	servicesPage := handlers.NewServicesPage(catalogService, rd)
	serviceDetailPage := handlers.NewServiceDetailPage(catalogService, rd)
	bookServicePage := handlers.NewBookServicePage(catalogService, selectionService, rd)
	myServicesPage := handlers.NewMyServicesPage(myServicesService, rd)
	loginPage := handlers.NewLoginPage(handlers.LoginURL(authLoginURL, publicURL), rd)
	authCallbackHandler := handlers.NewAuthCallbackHandler(sessionService, provider)
	logoutHandler := handlers.NewLogoutHandler(sessionService, provider)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SessionGuard(provider, middlewares.DefaultGuardOptions))

	r.Handle("/static/*", handlers.StaticHandler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(strings.TrimRight(publicURL, "/")+"/swagger/doc.json"),
	))

	// JSON API, sessions are checked by the handlers
	r.Route("/api", func(r chi.Router) {
		r.Get("/patient/summary", patientSummaryHandler)
		r.Post("/services/select", selectServiceHandler)
	})

	// Pages run inside the session transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.CSRFProtect([]byte(csrfAuthKey), authCookieSecure))
		r.Use(middlewares.SessionTx(db))

		r.Get("/", dashboardPage)
		r.Get("/services", servicesPage)
		r.Get("/services/{id}", serviceDetailPage)
		r.Post("/services/{id}/book", bookServicePage)
		r.Get("/my-services", myServicesPage)

		r.Get("/auth/login", loginPage)
		r.Get("/auth/callback", authCallbackHandler)
		r.Post("/auth/logout", logoutHandler)
	})

	r.NotFound(rd.NotFound)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// gRPC health server
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	grpcLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", appHost, grpcHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listener: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		if err := grpcServer.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// newKafkaWriter builds the selection event writer. Selections are published
// one at a time, so batches are flushed almost immediately.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
