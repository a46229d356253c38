package main

import (
	"context"
	"errors"
	"go-gin-cinema-booking/config"
	"go-gin-cinema-booking/internal/cache"
	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/events"
	"go-gin-cinema-booking/internal/handler"
	"go-gin-cinema-booking/internal/middleware"
	"go-gin-cinema-booking/internal/queue"
	"go-gin-cinema-booking/internal/repository"
	"go-gin-cinema-booking/internal/service"
	"go-gin-cinema-booking/internal/worker"
	"go-gin-cinema-booking/pkg/logger"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("main")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Repositories
	txManager := repository.NewTxManager(pool)
	showtimeRepo := repository.NewShowtimeRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)
	layoutRepo := repository.NewSeatLayoutRepository(pool)
	seatStatusRepo := repository.NewSeatStatusRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	voucherRepo := repository.NewVoucherRepository(pool)

	// Payment queue
	var paymentQueue queue.PaymentQueue
	if cfg.Payment.UseRedisStream {
		consumerID := cfg.Payment.ConsumerID
		if consumerID == "" {
			consumerID = uuid.NewString()
		}
		paymentQueue, err = queue.NewRedisStreamPaymentQueue(ctx, rdb, consumerID, nil)
		if err != nil {
			log.Fatal("Failed to initialize payment queue", zap.Error(err))
		}
	} else {
		paymentQueue = queue.NewMemoryPaymentQueue(1024)
	}

	// Broker：連不上時不發送事件，訂位流程照常運作
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Broker.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Warn("RabbitMQ unavailable, booking events disabled", zap.Error(err))
		} else {
			publisher = amqpPublisher
		}
	}
	defer publisher.Close()

	// Services
	opts := []service.Option{
		service.WithHoldDuration(cfg.Booking.HoldDuration),
		service.WithMaxSeats(cfg.Booking.MaxSeatsPerRequest),
	}
	catalogService := service.NewSeatCatalogService(seatRepo, layoutRepo,
		cache.NewRedisSeatCatalogCache(rdb, cfg.Booking.CatalogCacheTTL))
	ledgerService := service.NewSeatLedgerService(showtimeRepo, seatRepo, seatStatusRepo, catalogService, opts...)
	showtimeService := service.NewShowtimeService(showtimeRepo)
	paymentService := service.NewPaymentService(cfg.Payment.WebhookSecret, paymentQueue, txManager,
		bookingRepo, seatStatusRepo, publisher)
	bookingService := service.NewBookingService(txManager, showtimeRepo, seatRepo, seatStatusRepo,
		bookingRepo, voucherRepo, ledgerService, paymentService, publisher, opts...)

	// Workers
	if err := worker.NewPaymentWorker(paymentService, paymentQueue).Start(ctx); err != nil {
		log.Fatal("Failed to start payment worker", zap.Error(err))
	}
	sweeper := worker.NewHoldSweeper(ledgerService, cfg.Booking.SweepInterval)
	if err := sweeper.Start(); err != nil {
		log.Fatal("Failed to start hold sweeper", zap.Error(err))
	}
	defer sweeper.Stop()
	showtimeJob := worker.NewShowtimeJob(showtimeService, cfg.Booking.ShowtimeJobSchedule)
	if err := showtimeJob.Start(); err != nil {
		log.Fatal("Failed to start showtime job", zap.Error(err))
	}
	defer showtimeJob.Stop()

	// Router
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	auth := middleware.JWTAuth(cfg.Auth.JWTSecret)
	var holdLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		holdLimit = middleware.HoldRateLimit(
			cache.NewRedisHoldRateLimiter(rdb, cfg.RateLimit.Capacity, cfg.RateLimit.Refill))
	}

	handler.NewSeatHandler(ledgerService).RegisterRoutes(router, auth, holdLimit)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router, auth)
	handler.NewPaymentHandler(paymentService, cfg.Payment.SignatureHeader).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
