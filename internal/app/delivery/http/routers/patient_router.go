package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/labresults"
	"clinicore-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	labResultController *labresults.LabResultController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindAllPatients)
	router.Post("/search", patientController.SearchPatients)
	router.Get("/{patientID}", patientController.FindPatientByID)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Delete("/{patientID}", patientController.DeletePatient)
	router.Get("/{patientID}/lab-results", labResultController.FindPatientLabResults)
}
