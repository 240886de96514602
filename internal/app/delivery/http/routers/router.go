package routers

import (
	"fmt"
	"time"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/delivery/realtime"
	"caremind-service/internal/app/services/core/auth"
	"caremind-service/internal/app/services/core/discharges"
	"caremind-service/internal/app/services/core/notifications"
	"caremind-service/internal/app/services/core/patients"
	"caremind-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	patientController *patients.PatientController,
	dischargeController *discharges.DischargeController,
	notificationController *notifications.NotificationController,
	realtimeHandler *realtime.Handler,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger(accessLogger))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, dischargeController)
			})

			r.Route("/discharge-requests", func(r chi.Router) {
				attachDischargeRoutes(r, middlewares, dischargeController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			// Websocket clients authenticate via token query param; the
			// Authorization header is not available during the upgrade.
			r.Get("/ws", realtimeHandler.HandleConnect)
		})
	})
}
