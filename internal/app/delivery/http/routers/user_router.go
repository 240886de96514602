package routers

import (
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)
	router.Get("/profile", userController.GetProfile)
	router.Put("/profile", userController.UpdateProfile)
}
