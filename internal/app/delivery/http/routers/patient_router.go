package routers

import (
	"caremind-service/internal/app/delivery/http/middlewares"
	"caremind-service/internal/app/services/core/discharges"
	"caremind-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	dischargeController *discharges.DischargeController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.ListPatients)
	router.Get("/{patientID}", patientController.GetPatientByID)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Post("/{patientID}/restore", patientController.RestorePatient)

	router.Post("/{patientID}/discharge-requests", dischargeController.CreateDischargeRequest)
	router.Patch("/{patientID}/discharge-requests/{requestID}", dischargeController.ReviewDischargeRequest)
}
