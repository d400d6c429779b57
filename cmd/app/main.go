package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"vastrakala/cmd"
	httpin "vastrakala/internal/adapters/in/http"
	"vastrakala/internal/adapters/out/postgres/cartrepo"
	"vastrakala/internal/adapters/out/postgres/orderrepo"
	"vastrakala/internal/adapters/out/postgres/trackingrepo"
	"vastrakala/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := startJobs(&app, configs, logger)
	if jobManager != nil {
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		DemoMode:                goDotEnvVariable("DEMO_MODE"),
		DemoProgressionSchedule: goDotEnvVariable("DEMO_PROGRESSION_SCHEDULE"),
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

// mustConnectDB opens the database through database/sql first so the pq
// driver owns the connection; GORM wraps it. Constraint violations then
// surface as *pq.Error values the repositories can inspect.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &trackingrepo.TrackingEventDTO{}, &cartrepo.CartItemDTO{})
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

// startJobs launches the fulfillment progression job when demo mode is on.
// Outside demo mode order progression is driven by the tracking endpoints.
func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	if configs.DemoMode != "true" {
		return nil
	}

	schedule := configs.DemoProgressionSchedule
	if schedule == "" {
		schedule = "*/30 * * * * *"
	}

	jobManager := jobs.NewJobManager(app.CreateAdvanceFulfillmentsCommandHandler(), schedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateVerifyPaymentCommandHandler(),
		app.CreateAddTrackingEventCommandHandler(),
		app.CreateSimulateDeliveryCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersByUserQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderTrackingQueryHandler(),
		app.PaymentGateway(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
