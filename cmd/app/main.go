package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"invoicing/cmd"
	"invoicing/internal/adapters/out/postgres/invoicerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	startJobs(app, configs)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                    goDotEnvVariable("HTTP_PORT"),
		DBHost:                      goDotEnvVariable("DB_HOST"),
		DBPort:                      goDotEnvVariable("DB_PORT"),
		DBUser:                      goDotEnvVariable("DB_USER"),
		DBPassword:                  goDotEnvVariable("DB_PASSWORD"),
		DBName:                      goDotEnvVariable("DB_NAME"),
		DBSslMode:                   goDotEnvVariable("DB_SSLMODE"),
		NotificationWebhookURL:      goDotEnvVariable("NOTIFICATION_WEBHOOK_URL"),
		DefaultNotificationProvider: goDotEnvVariable("DEFAULT_NOTIFICATION_PROVIDER"),
		SendingMonitorThreshold:     goDotEnvVariable("SENDING_MONITOR_THRESHOLD"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(&invoicerepo.InvoiceDTO{}, &invoicerepo.InvoiceLineDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	threshold, err := time.ParseDuration(configs.SendingMonitorThreshold)
	if err != nil {
		log.Fatalf("Error parsing SENDING_MONITOR_THRESHOLD: %v", err)
	}

	jobManager := app.CreateJobManager(threshold)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	if err := server.RegisterRoutes(e); err != nil {
		log.Fatalf("Error registering routes: %v", err)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
