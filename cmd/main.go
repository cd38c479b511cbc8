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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/sbilibin2017/paperplane-redeem/docs"
	"github.com/sbilibin2017/paperplane-redeem/internal/facades"
	"github.com/sbilibin2017/paperplane-redeem/internal/handlers"
	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
	"github.com/sbilibin2017/paperplane-redeem/internal/middlewares"
	"github.com/sbilibin2017/paperplane-redeem/internal/repositories"
	"github.com/sbilibin2017/paperplane-redeem/internal/services"
	"github.com/sbilibin2017/paperplane-redeem/internal/templates"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// templateCacheSize bounds the number of parsed email templates kept in memory.
const templateCacheSize = 16

// @title paperplane-redeem API
// @version 1.0.0
// @description Paper plane coin redemption records and redeem notifications
// @host localhost:5000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoDB, mongoCollection,
		redisHost, redisPort, redisDB, redisPassword, redisExp,
		smtpHost, smtpPort, smtpUsername, smtpPassword, smtpTLS, mailFrom,
		templateDir, redeemURL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoDB, mongoCollection,
		redisHost, redisPort, redisDB, redisPassword, redisExp,
		smtpHost, smtpPort, smtpUsername, smtpPassword, smtpTLS, mailFrom,
		templateDir, redeemURL,
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

// parseConfig loads environment variables from a file and returns
// the application, MongoDB, Redis, SMTP and template configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI, mongoDB, mongoCollection string,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	smtpHost string, smtpPort int, smtpUsername, smtpPassword, smtpTLS, mailFrom string,
	templateDir, redeemURL string,
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
	appPort = getEnv("PORT", "5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "paperplane")
	mongoCollection = getEnv("MONGO_COLLECTION", "paperplanes")

	// Redis config, empty host disables the contact cache
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// SMTP config
	smtpHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	if smtpPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	smtpUsername = getEnv("SMTP_USERNAME", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	smtpTLS = getEnv("SMTP_TLS", "mandatory")
	mailFrom = getEnv("MAIL_FROM", "")

	// Notification config
	templateDir = getEnv("TEMPLATE_DIR", "templates")
	redeemURL = getEnv("REDEEM_URL", "https://redeem.paperplane.com/login")

	return
}

// run initializes the logger, MongoDB, Redis, the mail transport and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI, mongoDB, mongoCollection string,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	smtpHost string, smtpPort int, smtpUsername, smtpPassword, smtpTLS, mailFrom string,
	templateDir, redeemURL string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURI)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	coll := client.Database(mongoDB).Collection(mongoCollection)

	// Connect to Redis
	var cache services.ContactCacher
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		cache = repositories.NewContactCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	} else {
		logger.Log.Info("REDIS_HOST not set, contact cache disabled")
	}

	// Initialize templates and mail transport
	renderer, err := templates.NewRenderer(templateDir, templateCacheSize)
	if err != nil {
		return err
	}
	mailer, err := facades.NewMailFacade(facades.MailConfig{
		Host:     smtpHost,
		Port:     smtpPort,
		Username: smtpUsername,
		Password: smtpPassword,
		From:     mailFrom,
		TLS:      smtpTLS,
	})
	if err != nil {
		return err
	}
	defer mailer.Close()

	// Initialize repositories and services
	contactReadRepo := repositories.NewContactReadRepository(coll)
	contactWriteRepo := repositories.NewContactWriteRepository(coll)

	contactService := services.NewContactService(contactReadRepo, contactWriteRepo, cache)
	notificationService := services.NewNotificationService(renderer, mailer)

	r := newRouter(contactService, notificationService, redeemURL)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the contact endpoints behind the recovery and logging middleware.
func newRouter(contacts *services.ContactService, notifier handlers.RedeemNotifier, redeemURL string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Post("/redeem_coins", handlers.NewRedeemCoinsHandler(contacts, notifier, redeemURL))
	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", handlers.NewListContactsHandler(contacts))
		r.Get("/{id}", handlers.NewGetContactHandler(contacts))
		r.Put("/{id}", handlers.NewUpdateContactHandler(contacts))
		r.Delete("/{id}", handlers.NewDeleteContactHandler(contacts))
	})

	return r
}
