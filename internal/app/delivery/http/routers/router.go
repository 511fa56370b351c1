package routers

import (
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/auth"
	"clinicore-service/internal/app/services/core/dashboard"
	"clinicore-service/internal/app/services/core/labresults"
	"clinicore-service/internal/app/services/core/medicalrecords"
	"clinicore-service/internal/app/services/core/patients"
	"clinicore-service/internal/app/services/core/prescriptions"
	"clinicore-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	patientController *patients.PatientController,
	medicalRecordController *medicalrecords.MedicalRecordController,
	prescriptionController *prescriptions.PrescriptionController,
	labResultController *labresults.LabResultController,
	dashboardController *dashboard.DashboardController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.Recover)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, userController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController, labResultController)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, middlewares, medicalRecordController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, middlewares, prescriptionController)
		})

		r.Route("/lab-results", func(r chi.Router) {
			attachLabResultRoutes(r, middlewares, labResultController)
		})

		r.With(middlewares.Authenticate).Get("/dashboard", dashboardController.Summary)
	})
}
