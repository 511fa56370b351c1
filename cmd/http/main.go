package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/delivery/http/routers"
	"clinicore-service/internal/app/drivers/database"
	"clinicore-service/internal/app/drivers/logger"
	"clinicore-service/internal/app/drivers/messaging"
	"clinicore-service/internal/app/drivers/storage"
	"clinicore-service/internal/app/services/core/auth"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/app/services/core/dashboard"
	"clinicore-service/internal/app/services/core/labresults"
	"clinicore-service/internal/app/services/core/medicalrecords"
	"clinicore-service/internal/app/services/core/patients"
	"clinicore-service/internal/app/services/core/prescriptions"
	"clinicore-service/internal/app/services/core/session"
	"clinicore-service/internal/app/services/core/users"
	"clinicore-service/internal/app/services/shared/audit"
	"clinicore-service/internal/app/services/shared/redis"
	sharedstorage "clinicore-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mysqlDB := database.NewMySQLClient(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MySQL:          mysqlDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(redisClient)
	auditPublisher, err := audit.NewAuditPublisher(
		rabbitMQConnection,
		internalConfig.App.RabbitMQAuditQueue,
		internalConfig.App.AuditPublishPerSecond,
	)
	if err != nil {
		bootLog.Fatalf("Failed to initialize audit publisher: %v", err)
	}
	minioStorage := sharedstorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)

	// Session
	sessionService := session.NewSessionService(redisRepository, internalConfig)

	// Middlewares
	httpMiddlewares := middlewares.New(zapLogger, sessionService, internalConfig)

	// Authorization
	patientLookupRepository := authorization.NewAuthorizationMySQLRepository(mysqlDB)
	ownershipService := authorization.NewOwnershipService(patientLookupRepository, auditPublisher, internalConfig, zapLogger)

	// Auth
	authRepository := auth.NewAuthMySQLRepository(mysqlDB)
	authUsecase := auth.NewAuthUsecase(authRepository, sessionService, zapLogger)
	authController := auth.NewAuthController(authUsecase, internalConfig, zapLogger)

	// Users
	userRepository := users.NewUserMySQLRepository(mysqlDB)
	userUsecase := users.NewUserUsecase(userRepository, internalConfig, zapLogger)
	userController := users.NewUserController(userUsecase, zapLogger)

	// Patients
	patientRepository := patients.NewPatientMySQLRepository(mysqlDB)
	patientUsecase := patients.NewPatientUsecase(patientRepository, ownershipService, auditPublisher, zapLogger)
	patientController := patients.NewPatientController(patientUsecase, zapLogger)

	// Medical records
	medicalRecordRepository := medicalrecords.NewMedicalRecordMySQLRepository(mysqlDB)
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(medicalRecordRepository, ownershipService, auditPublisher, zapLogger)
	medicalRecordController := medicalrecords.NewMedicalRecordController(medicalRecordUsecase, zapLogger)

	// Prescriptions
	prescriptionRepository := prescriptions.NewPrescriptionMySQLRepository(mysqlDB)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, ownershipService, auditPublisher, zapLogger)
	prescriptionController := prescriptions.NewPrescriptionController(prescriptionUsecase, zapLogger)

	// Lab results
	labResultRepository := labresults.NewLabResultMySQLRepository(mysqlDB)
	labResultUsecase := labresults.NewLabResultUsecase(labResultRepository, ownershipService, minioStorage, auditPublisher, zapLogger)
	labResultController := labresults.NewLabResultController(labResultUsecase, internalConfig, zapLogger)

	// Dashboard
	dashboardRepository := dashboard.NewDashboardMySQLRepository(mysqlDB)
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardRepository, ownershipService, zapLogger)
	dashboardController := dashboard.NewDashboardController(dashboardUsecase, zapLogger)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		httpMiddlewares,
		authController,
		userController,
		patientController,
		medicalRecordController,
		prescriptionController,
		labResultController,
		dashboardController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootLog.Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Errorf("Error during shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}
