// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-ease/config"
	"event-ease/data"
	"event-ease/handlers"
	"event-ease/notify"
	"event-ease/pdf"
	"event-ease/security"
	"event-ease/services"
	"event-ease/store"
	"event-ease/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the profile store
	var profileStore store.Store
	var redisClient *redis.Client
	if cfg.StoreBackend == "memory" {
		log.Println("Using in-memory store; nothing survives a restart")
		profileStore = store.NewMemoryStore()
	} else {
		redisClient = utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		defer redisClient.Close()
		profileStore = store.NewRedisStore(redisClient)
	}

	// Initialize notifications
	var notifier notify.Notifier = notify.Noop{}
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		notifier = notify.NewPubNubNotifier(pubnub.NewPubNub(pnConfig))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the catalog exactly once per profile
	if err := profileStore.SeedCatalogIfAbsent(ctx, data.SampleConcerts()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Initialize services
	bookingService := services.NewBookingService()
	processor := services.NewMockProcessor(cfg.PaymentDelay)
	issuanceService := services.NewIssuanceService(profileStore, notifier)
	session := services.NewSession(profileStore, bookingService, processor, issuanceService, cfg.LoginDelay)

	if err := session.Restore(ctx); err != nil {
		log.Printf("Could not restore session: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(session)
	concertHandler := handlers.NewConcertHandler(profileStore, bookingService)
	bookingHandler := handlers.NewBookingHandler(session, bookingService)
	paymentHandler := handlers.NewPaymentHandler(session)
	ticketHandler := handlers.NewTicketHandler(session, profileStore, pdf.NewTracker())

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// The delayed endpoints get a submission throttle on top of the
	// session's in-flight guard.
	var guarded gin.IRoutes = router
	if redisClient != nil {
		throttle := security.NewThrottle(redisClient)
		guarded = router.Group("", throttle.LimitSubmissions(int64(cfg.SubmitLimit), cfg.SubmitWindow))
	}

	// Auth endpoints
	guarded.POST("/api/login", authHandler.Login)
	router.POST("/api/logout", authHandler.Logout)
	router.GET("/api/account", authHandler.Current)

	// Catalog endpoints
	router.GET("/api/concerts", concertHandler.List)
	router.GET("/api/concerts/:id", concertHandler.Get)

	// Booking endpoints
	router.POST("/api/booking/select", bookingHandler.Select)
	router.POST("/api/booking/submit", bookingHandler.Submit)
	router.POST("/api/booking/back", bookingHandler.Back)

	// Payment endpoint
	guarded.POST("/api/payment/confirm", paymentHandler.Confirm)

	// Ticket endpoints
	router.GET("/api/tickets", ticketHandler.List)
	router.GET("/api/tickets/pdf", ticketHandler.ExportAll)
	router.GET("/api/tickets/:id/pdf", ticketHandler.Export)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if redisClient != nil {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	log.Println("Server routes registered")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()
	log.Printf("Listening on :%s", cfg.Port)

	waitForShutdown(srv, cancel)
}

// waitForShutdown handles graceful shutdown
func waitForShutdown(srv *http.Server, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()

	ctx, cancelTimeout := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelTimeout()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
