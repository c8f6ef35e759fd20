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

	"github.com/tu-usuario/tienda-virtual/internal/application/auth"
	"github.com/tu-usuario/tienda-virtual/internal/application/importer"
	"github.com/tu-usuario/tienda-virtual/internal/application/orders"
	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
	infracloudinary "github.com/tu-usuario/tienda-virtual/internal/infrastructure/cloudinary"
	"github.com/tu-usuario/tienda-virtual/internal/infrastructure/fakestore"
	infrapdf "github.com/tu-usuario/tienda-virtual/internal/infrastructure/pdf"
	"github.com/tu-usuario/tienda-virtual/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tienda-virtual/internal/interfaces/http"
	"github.com/tu-usuario/tienda-virtual/pkg/config"
	"github.com/tu-usuario/tienda-virtual/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	uploader := infracloudinary.NewUploader(cfg.Cloudinary)
	feed := fakestore.NewClient(cfg.Importer.FeedURL)
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, uploader)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, receipts)
	importUC := importer.NewImportUseCase(categoryRepo, productRepo, feed)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Virtual API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		UserUC:     userUC,
		OrderUC:    orderUC,
		ImportUC:   importUC,
		JWTSecret:  cfg.JWT.Secret,
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
