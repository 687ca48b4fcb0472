package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fieldforce-api/internal/application/auth"
	"github.com/jhoicas/fieldforce-api/internal/application/fieldmarketing"
	"github.com/jhoicas/fieldforce-api/internal/application/fieldsales"
	"github.com/jhoicas/fieldforce-api/internal/application/report"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/fieldforce-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fieldforce-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/fieldforce-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/fieldforce-api/internal/interfaces/http"
	"github.com/jhoicas/fieldforce-api/pkg/config"
	"github.com/jhoicas/fieldforce-api/pkg/logger"
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

	healthChecks := map[string]httpRouter.HealthChecker{
		"postgres": pool.Ping,
	}

	// Redis es opcional: sin REDIS_URL no hay revocación de tokens ni
	// rate limit de login, pero la API funciona.
	deps := httpRouter.RouterDeps{JWTSecret: cfg.JWT.Secret}
	if cfg.Redis.Enabled() {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()

		deps.Blacklist = infraredis.NewTokenBlacklist(redisClient)
		deps.LoginLimiter = infraredis.NewLoginRateLimiter(
			redisClient,
			cfg.RateLimit.LoginMax,
			time.Duration(cfg.RateLimit.LoginWindow)*time.Second,
		)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		log.Info().Msg("redis habilitado: blacklist de tokens y rate limit de login")
	} else {
		log.Warn().Msg("redis no configurado: logout sin revocación y login sin rate limit")
	}
	deps.HealthChecks = healthChecks

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	territoryRepo := postgres.NewTerritoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	deps.AuthUC = auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	deps.CompanyUC = usecase.NewCompanyUseCase(companyRepo)
	deps.UserUC = usecase.NewUserUseCase(userRepo, territoryRepo)
	deps.TerritoryUC = usecase.NewTerritoryUseCase(territoryRepo)
	deps.CustomerUC = usecase.NewCustomerUseCase(customerRepo, territoryRepo)
	deps.ProductUC = usecase.NewProductUseCase(productRepo)
	deps.VisitUC = fieldmarketing.NewVisitUseCase(visitRepo, customerRepo, userRepo)
	deps.OrderUC = fieldsales.NewOrderUseCase(txRunner, orderRepo, customerRepo, productRepo, campaignRepo, visitRepo)
	deps.CampaignUC = usecase.NewCampaignUseCase(campaignRepo)
	deps.DashboardUC = report.NewDashboardUseCase(reportRepo)
	deps.OrderPDFUC = report.NewOrderPDFUseCase(
		orderRepo, companyRepo, customerRepo, productRepo,
		infrapdf.NewOrderPDFGenerator(),
	)
	deps.Modules = usecase.NewModuleService(companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs. El middleware lee el
	// archivo al registrarse y entra en pánico si falta, así que solo se monta
	// cuando el spec existe (p. ej. al ejecutar desde otro directorio).
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "FieldForce API",
		}))
	} else {
		log.Warn().Str("file", swaggerSpec).Msg("spec de swagger no encontrado: UI de docs deshabilitada")
	}

	httpRouter.Router(app, deps)

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
