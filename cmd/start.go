package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grimoire/core/cache"
	"grimoire/core/config"
	"grimoire/core/database"
	"grimoire/core/loader"
	"grimoire/core/logger"
	"grimoire/core/middleware/auth"
	"grimoire/core/middleware/cors"
	"grimoire/core/middleware/metrics"
	"grimoire/core/middleware/ratelimit"
	"grimoire/core/middleware/rayid"
	"grimoire/core/storage"

	"grimoire/feature/health"
	"grimoire/feature/integrity"
	"grimoire/feature/words"
	"grimoire/feature/words/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "grimoire/docs/swagger"
)

// @title Grimoire API
// @version 1.0
// @description English word lookup for language learners.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the word lookup server",
	Long:  `Connects the database, cache and dataset bucket, then serves the word API.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// 1. Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := repository.AutoMigrate(db); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Cache
		store, err := cache.New(cfg.Cache)
		if err != nil {
			logg.Fatal("Failed to create cache", zap.Error(err))
		}
		defer store.Close()
		if err := store.Ping(ctx); err != nil {
			logg.Warn("Cache is unreachable, lookups will bypass it", zap.Error(err))
		}

		// 5. Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Word service
		m := metrics.New()
		svc, err := newWordService(ctx, cfg, logg, db, store, client, m)
		if err != nil {
			logg.Fatal("Failed to create word service", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// Middleware, in order: CORS answers preflights before anything else,
		// then every request gets a ray id, a log line and its metrics.
		app.Use(cors.New(cfg.Server.Origins()))
		app.Use(rayid.New())
		app.Use(logger.Requests(logg))
		app.Use(m.Middleware())

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", m.Handler())

		// Lookups are public and rate limited; mutating and operational routes need the API key.
		protect := auth.New(auth.Config{ApiKey: cfg.Server.ApiKey})
		var limits []fiber.Handler
		if cfg.Server.RatePerMinute > 0 {
			limits = append(limits, ratelimit.New(cfg.Server.RatePerMinute, time.Minute))
		}
		if cfg.Server.RatePerHour > 0 {
			limits = append(limits, ratelimit.New(cfg.Server.RatePerHour, time.Hour))
		}
		if !cfg.Server.RateLimited() {
			logg.Warn("Lookup rate limiting is disabled")
		}

		mgr := loader.NewManager()
		mgr.Register(health.NewFeature(db, store))
		mgr.Register(words.NewFeature(svc, logg, m, protect, limits...))
		mgr.Register(integrity.NewFeature(client, cfg.Storage.Bucket, logg, db, protect))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
