package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	// Logout and check-auth tolerate anonymous callers: logout stays
	// idempotent and check-auth answers 401 itself.
	router.With(middlewares.SessionOptional).Get("/logout", authController.Logout)
	router.With(middlewares.SessionOptional).Post("/check-auth", authController.CheckAuth)
}
