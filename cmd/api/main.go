package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Compras-api/internal/application/auth"
	appevents "github.com/jhoicas/Compras-api/internal/application/events"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	infracache "github.com/jhoicas/Compras-api/internal/infrastructure/cache"
	infraevents "github.com/jhoicas/Compras-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	ledgerRepo := postgres.NewInventoryTransactionRepository(pool)
	requestRepo := postgres.NewPurchaseRequestRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de catálogo (opcional: REDIS_ADDR vacío lo deshabilita)
	var productCache usecase.ProductCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		productCache = infracache.NewProductCache(rdb, time.Duration(cfg.Redis.TTLSec)*time.Second)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de productos habilitado")
	}

	// Publicador de eventos (opcional: KAFKA_BROKERS vacío lo deshabilita)
	var publisher appevents.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := infraevents.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicador de eventos habilitado")
	}

	ledgerUC := inventory.NewLedgerUseCase(txRunner, ledgerRepo, publisher, log)
	requestUC := procurement.NewRequestUseCase(txRunner, requestRepo, productRepo)
	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	orderUC := procurement.NewOrderUseCase(txRunner, orderRepo, tenantRepo, ledgerUC, pdfGenerator, publisher, log)

	productUC := usecase.NewProductUseCase(productRepo, supplierRepo, productCache)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	tenantUC := usecase.NewTenantUseCase(tenantRepo, userRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, tenantUC)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, userRepo)
	authUC := auth.NewUseCase(userRepo, tenantRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		LedgerUC:       ledgerUC,
		RequestUC:      requestUC,
		OrderUC:        orderUC,
		TenantUC:       tenantUC,
		UserUC:         userUC,
		PaymentUC:      paymentUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
