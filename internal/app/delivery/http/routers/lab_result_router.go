package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/labresults"

	"github.com/go-chi/chi/v5"
)

func attachLabResultRoutes(router chi.Router, middlewares *middlewares.Middlewares, labResultController *labresults.LabResultController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", labResultController.CreateLabResult)
	router.Get("/", labResultController.FindAllLabResults)
	router.Get("/mine", labResultController.FindMyLabResults)
	router.Get("/{labResultID}", labResultController.FindLabResultByID)
	router.Put("/{labResultID}", labResultController.UpdateLabResult)
	router.Delete("/{labResultID}", labResultController.DeleteLabResult)
	router.Post("/{labResultID}/report", labResultController.UploadLabReport)
	router.Get("/{labResultID}/report", labResultController.GetLabReport)
}
