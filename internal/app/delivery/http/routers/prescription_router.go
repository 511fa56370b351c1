package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", prescriptionController.CreatePrescription)
	router.Get("/", prescriptionController.FindAllPrescriptions)
	router.Get("/mine", prescriptionController.FindMyPrescriptions)
	router.Get("/{prescriptionID}", prescriptionController.FindPrescriptionByID)
	router.Put("/{prescriptionID}", prescriptionController.UpdatePrescription)
	router.Delete("/{prescriptionID}", prescriptionController.DeletePrescription)
}
