package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"arribaeats/cmd"
	adapter "arribaeats/internal/adapters/in/http"
	"arribaeats/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	app := cmd.NewCompositionRoot(configs)

	jobManager := jobs.NewJobManager(app.CreateMarketplaceStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort: goDotEnvVariable("HTTP_PORT"),
		LogLevel: goDotEnvVariable("LOG_LEVEL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapter.NewServer(adapter.Handlers{
		RegisterCustomer: app.CreateRegisterCustomerCommandHandler(),
		RegisterCourier:  app.CreateRegisterCourierCommandHandler(),
		RegisterOperator: app.CreateRegisterOperatorCommandHandler(),
		AddMenuItem:      app.CreateAddMenuItemCommandHandler(),
		CreateOrder:      app.CreateCreateOrderCommandHandler(),
		AddOrderItem:     app.CreateAddOrderItemCommandHandler(),
		FinalizeOrder:    app.CreateFinalizeOrderCommandHandler(),
		CancelOrder:      app.CreateCancelOrderCommandHandler(),
		AdvanceOrder:     app.CreateAdvanceOrderCommandHandler(),
		AcceptOrder:      app.CreateAcceptOrderCommandHandler(),
		AddReview:        app.CreateAddReviewCommandHandler(),

		Login:             app.CreateLoginQueryHandler(),
		SortedRestaurants: app.CreateSortedRestaurantsQueryHandler(),
		AvailableOrders:   app.CreateAvailableOrdersQueryHandler(),
		CustomerOrders:    app.CreateCustomerOrdersQueryHandler(),
		MarketplaceStats:  app.CreateMarketplaceStatsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
