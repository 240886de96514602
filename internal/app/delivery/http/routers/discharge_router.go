package routers

import (
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/services/core/discharges"

	"github.com/go-chi/chi/v5"
)

func attachDischargeRoutes(router chi.Router, middlewares *middlewares.Middlewares, dischargeController *discharges.DischargeController) {
	router.Use(middlewares.Authenticate)
	router.Get("/pending", dischargeController.ListPendingDischargeRequests)
}
