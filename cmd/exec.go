package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"

	"campus-pop/config"
	"campus-pop/internal/animation"
	"campus-pop/internal/handlers"
	"campus-pop/internal/services"
	"campus-pop/monitoring"
	"campus-pop/security"
	"campus-pop/utils"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	// Initialize PubNub (optional: without keys the notifier is a no-op)
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey
		pn = pubnub.NewPubNub(pnConfig)
	}
	notifier := services.NewNotifier(pn, cfg.FeedChannel)

	// Initialize services
	monitor := monitoring.NewMonitor(app)
	participationService := services.NewParticipationService(app)
	feedService := services.NewFeedService(app, cfg.FeedWindow)
	eventService := services.NewEventService(app, cfg.ScheduleWindow)

	// Initialize handlers
	feedHandler := handlers.NewFeedHandler(feedService, monitor)
	participationHandler := handlers.NewParticipationHandler(participationService, monitor)
	eventHandler := handlers.NewEventHandler(eventService)

	limiter := security.NewRateLimiter(redisClient, cfg.ToggleRateLimit, cfg.ToggleRateWindow)

	// Landing page backdrop, stepped by its own goroutine
	field := animation.NewField(1920, 1080, 50)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background tasks
	go monitor.Start(ctx, 30*time.Second)
	go field.Start(ctx, 50*time.Millisecond)

	// Setup graceful shutdown
	go handleShutdown(cancel)

	// Record hooks: signup policy, counter triggers, feed fanout
	setupAuthHooks(app, cfg)
	setupParticipationHooks(app, notifier)
	setupEventHooks(app, notifier, monitor)

	// Metrics sidecar
	if cfg.EnableMetrics {
		go startMetricsServer(cfg.MetricsPort, redisClient)
	}

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Student feed
		e.Router.GET("/api/campus/feed", feedHandler.Feed).BindFunc(limiter.AntiBot())

		// Participation endpoints
		e.Router.GET("/api/campus/participation", participationHandler.Get)
		e.Router.POST("/api/campus/participation/toggle", participationHandler.Toggle).
			BindFunc(limiter.LimitToggles())

		// Organizer endpoints
		e.Router.POST("/api/campus/events", eventHandler.Create)
		e.Router.PATCH("/api/campus/events/{eventId}", eventHandler.Update)
		e.Router.DELETE("/api/campus/events/{eventId}", eventHandler.Delete)
		e.Router.GET("/api/campus/events/mine", eventHandler.Mine)

		// Decorative backdrop frames for the landing page
		e.Router.GET("/api/campus/ambient", func(e *core.RequestEvent) error {
			return e.JSON(http.StatusOK, map[string]any{"particles": field.Snapshot()})
		})

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(http.StatusOK, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	// Start server
	return app.Start()
}

// startMetricsServer exposes Prometheus metrics and a liveness probe on a
// separate port so the main API surface stays clean.
func startMetricsServer(port string, redisClient *redis.Client) {
	e := echo.New()

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		if err := utils.RedisHealthCheck(redisClient); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	if err := e.Start(":" + port); err != nil {
		log.Printf("metrics server stopped: %v", err)
	}
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
