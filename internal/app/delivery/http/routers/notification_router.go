package routers

import (
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", notificationController.ListNotifications)
	router.Put("/read-all", notificationController.MarkAllNotificationsRead)
	router.Put("/{notificationID}/read", notificationController.MarkNotificationRead)
	router.Delete("/{notificationID}", notificationController.DeleteNotification)
}
