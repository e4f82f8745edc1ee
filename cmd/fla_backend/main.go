package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/freightbooks/freight_ledger_app/internal/adapters/lock"
	"github.com/freightbooks/freight_ledger_app/internal/adapters/storage/drive"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/core/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/handlers"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
	"github.com/freightbooks/freight_ledger_app/internal/platform/config"
	"github.com/freightbooks/freight_ledger_app/internal/repositories/database/pgsql"
	"github.com/freightbooks/freight_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title FLA Backend API
// @version 1.0
// @description Freight ledger backend for trip bookkeeping.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	storage := buildDocStorage(cfg, logger)
	locker := buildTripLocker(cfg, logger)
	serviceContainer := services.NewServiceContainer(cfg, repos, storage, locker)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCustomValidations(logger)

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
	}))

	// Global rate limit: 300 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("300-M")
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations directory.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations,
	// using the pgx/v5/stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildDocStorage wires Google Drive storage for POD images when credentials
// are configured. Without it POD uploads are rejected but everything else works.
func buildDocStorage(cfg *config.Config, logger *slog.Logger) portssvc.DocStorageSvc {
	if cfg.DriveUploadsDisabled || cfg.GoogleRefreshToken == "" {
		logger.Warn("Drive storage not configured, POD uploads are disabled")
		return nil
	}
	storage, err := drive.NewStorage(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize Drive storage, POD uploads are disabled", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("Drive storage initialized")
	return storage
}

// buildTripLocker wires the Redis-backed per-trip mutation lock when a Redis
// URL is configured. Without it ledger mutations run unserialized.
func buildTripLocker(cfg *config.Config, logger *slog.Logger) portssvc.TripLockerSvc {
	if cfg.RedisURL == "" {
		logger.Warn("Redis not configured, ledger mutations run without per-trip locks")
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to parse Redis URL, ledger mutations run without per-trip locks", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("Redis trip locker initialized")
	return lock.NewRedisTripLocker(redis.NewClient(opts))
}

// registerCustomValidations adds binding validations for the ledger enums so
// bad values fail at the request boundary.
func registerCustomValidations(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Could not access validator engine, custom validations skipped")
		return
	}
	if err := dto.RegisterBindingValidations(v); err != nil {
		logger.Warn("Failed to register custom validations", slog.String("error", err.Error()))
	}
}
