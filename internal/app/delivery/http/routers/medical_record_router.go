package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/medicalrecords"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *medicalrecords.MedicalRecordController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", medicalRecordController.CreateMedicalRecord)
	router.Get("/", medicalRecordController.FindAllMedicalRecords)
	router.Get("/mine", medicalRecordController.FindMyMedicalRecords)
	router.Get("/{recordID}", medicalRecordController.FindMedicalRecordByID)
	router.Put("/{recordID}", medicalRecordController.UpdateMedicalRecord)
	router.Delete("/{recordID}", medicalRecordController.DeleteMedicalRecord)
}
