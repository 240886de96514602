package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/delivery/http/routers"
	"caremind-service/internal/app/delivery/realtime"
	"caremind-service/internal/app/drivers/database"
	"caremind-service/internal/app/drivers/logger"
	"caremind-service/internal/app/drivers/mailer"
	"caremind-service/internal/app/drivers/messaging"
	"caremind-service/internal/app/services/core/auth"
	"caremind-service/internal/app/services/core/discharges"
	"caremind-service/internal/app/services/core/notifications"
	"caremind-service/internal/app/services/core/patients"
	"caremind-service/internal/app/services/core/users"
	"caremind-service/internal/app/services/shared/fanout"
	"caremind-service/internal/app/services/shared/locker"
	"caremind-service/internal/app/services/shared/mailqueue"
	sharedredis "caremind-service/internal/app/services/shared/redis"
	"caremind-service/internal/app/services/shared/scheduler"
	"caremind-service/internal/app/services/shared/smtp"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewAccessLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap, accessLogger)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, accessLogger *logrus.Logger) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	smtpService := smtp.NewSmtpService(smtpClient)

	mailQueueService, err := mailqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		log.Fatalf("Failed to set up mail queue: %v", err)
	}
	mailWorker := mailqueue.NewWorker(bootstrap.RabbitMQ, smtpService, bootstrap.Logger, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	err = mailWorker.Start()
	if err != nil {
		log.Fatalf("Failed to start mail worker: %v", err)
	}

	// Realtime
	hub := realtime.NewHub(bootstrap.Logger)
	realtimeHandler := realtime.NewHandler(bootstrap.Logger, hub, redisRepository, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Fan-out
	fanoutService := fanout.NewFanoutService(notificationMongoRepository, userMongoRepository, hub, mailQueueService, bootstrap.Logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	dischargeUsecase := discharges.NewDischargeUsecase(
		patientMongoRepository,
		userMongoRepository,
		fanoutService,
		lockerService,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, bootstrap.Logger)

	// Controllers
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)
	dischargeController := discharges.NewDischargeController(bootstrap.Logger, dischargeUsecase)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase)

	// Scheduler
	cronScheduler := scheduler.NewScheduler(patientMongoRepository, fanoutService, bootstrap.InternalConfig, bootstrap.Logger)
	err = cronScheduler.Start()
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	bootstrap.WorkerStop = func() {
		cronScheduler.Stop()
		mailWorker.Stop()
	}

	// Middlewares and routes
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		accessLogger,
		appMiddlewares,
		authController,
		userController,
		patientController,
		dischargeController,
		notificationController,
		realtimeHandler,
	)
}
