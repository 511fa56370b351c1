package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	// Registration stays open so the first account can exist at all; every
	// other management route is admin-only.
	router.Post("/", userController.CreateUser)

	router.Group(func(router chi.Router) {
		router.Use(middlewares.Authenticate)
		router.Use(middlewares.RequireRole(models.RoleAdmin))

		router.Get("/", userController.FindAllUsers)
		router.Get("/{userID}", userController.FindUserByID)
		router.Put("/{userID}", userController.UpdateUser)
		router.Delete("/{userID}", userController.DeleteUser)
		router.Post("/{userID}/patients", userController.AttachPatient)
	})
}

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(models.RoleAdmin))

	router.Get("/", userController.FindAllDoctors)
	router.Put("/{doctorID}", userController.UpdateDoctor)
	router.Delete("/{doctorID}", userController.DeleteDoctor)
	router.Get("/{doctorID}/patients", userController.FindDoctorPatients)
}
