package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Hamdhan7/design-fabric-backend/config"
	"github.com/Hamdhan7/design-fabric-backend/internal/controller"
	"github.com/Hamdhan7/design-fabric-backend/internal/infrastructure/imagestore"
	"github.com/Hamdhan7/design-fabric-backend/internal/infrastructure/tracing"
	localmiddleware "github.com/Hamdhan7/design-fabric-backend/internal/middleware"
	"github.com/Hamdhan7/design-fabric-backend/internal/repository"
	"github.com/Hamdhan7/design-fabric-backend/internal/service"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB         *sqlx.DB
	Config     *config.Config
	ImageStore imagestore.ImageStore
	Server     *echo.Echo

	ProductService service.ProductService
	OrderService   service.OrderService
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("catalog-admin-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	e.Static("/images", app.Config.ImageConfig.Dir)

	g := e.Group("")

	repo := repository.CreateCatalogRepository(app.DB)
	app.ProductService = service.CreateProductService(repo, app.ImageStore, app.Config)
	app.OrderService = service.CreateOrderService(repo)
	controller.CreateController(g, app.ProductService, app.OrderService)

	g.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			app.Config.ImageConfig.SweepInterval,
		),
		gocron.NewTask(func() {
			if err := app.ProductService.SweepOrphanedImages(context.Background()); err != nil {
				log.Error().Err(err).Msg("Image sweep failed")
			}
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule image sweep job")
	}

	s.Start()
	defer s.Shutdown()

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
