package main

import (
	"fmt"
	"log/slog"
	"os"

	"supplychain/cmd"
	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres/catalogrepo"
	"supplychain/internal/adapters/out/postgres/draftrepo"
	"supplychain/internal/adapters/out/postgres/driverrepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateReleaseOrphanedDriversCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&catalogrepo.AgencyDTO{},
		&draftrepo.DraftDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&driverrepo.DriverDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateAddDraftCommandHandler(),
		app.CreateAdjustDraftQuantityCommandHandler(),
		app.CreateDeleteDraftsCommandHandler(),
		app.CreatePromoteDraftsCommandHandler(),
		app.CreateApproveOrdersCommandHandler(),
		app.CreateChangeReserveDateCommandHandler(),
		app.CreateDeleteOrdersCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateListDraftsQueryHandler(),
		app.CreateSearchOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListFreeDriversQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
