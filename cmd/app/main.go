package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"labflow/cmd"
	labhttp "labflow/internal/adapters/in/http"
	"labflow/internal/adapters/out/postgres/analysisrepo"
	"labflow/internal/adapters/out/postgres/orderrepo"
	"labflow/internal/adapters/out/postgres/patientrepo"
	"labflow/internal/adapters/out/postgres/samplerepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := root.CreateJobManager(configs.OrderReviewAfterDays, slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		IdentityTokenSecret:  goDotEnvVariable("IDENTITY_TOKEN_SECRET"),
		OrderReviewAfterDays: goDotEnvIntVariable("ORDER_REVIEW_AFTER_DAYS"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&analysisrepo.AnalysisDTO{},
		&patientrepo.PatientDTO{},
		&orderrepo.OrderDTO{},
		&samplerepo.SampleDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	server := labhttp.NewServer(
		root.CreateCreateAnalysisCommandHandler(),
		root.CreateUpdateAnalysisCommandHandler(),
		root.CreateDeactivateAnalysisCommandHandler(),
		root.CreateCreatePatientCommandHandler(),
		root.CreateDeactivatePatientCommandHandler(),
		root.CreateChangePasswordCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateDeactivateOrderCommandHandler(),
		root.CreateTakeSampleCommandHandler(),
		root.CreateRegisterResultsCommandHandler(),
		root.CreateEditResultsCommandHandler(),
		root.CreateUpdateSampleInfoCommandHandler(),
		root.CreateDeactivateSampleCommandHandler(),
		root.CreateGetOrderSnapshotQueryHandler(),
		root.CreateGetSampleSnapshotQueryHandler(),
		root.CreateGetPendingOrdersQueryHandler(),
		root.CreateGetSamplesQueryHandler(),
		root.CreateListActiveAnalysesQueryHandler(),
		root.CreateGetAnalysisQueryHandler(),
		root.CreateListPatientsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server.RegisterRoutes(e, labhttp.IdentityMiddleware([]byte(configs.IdentityTokenSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
