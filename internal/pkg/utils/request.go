package utils

import (
	"net/http"
	"strconv"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ParseURLParamID reads a numeric chi URL parameter.
func ParseURLParamID(r *http.Request, paramName string) (uint64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}

// SessionFromContext returns the session placed by the Authenticate guard.
// Handlers behind the guard can rely on a non-nil, authenticated session.
func SessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}

// CallerID converts the session user id to the database key type.
func CallerID(session *models.Session) uint64 {
	id, _ := strconv.ParseUint(session.User.ID, 10, 64)
	return id
}

func GenerateRequestID() string {
	return uuid.New().String()
}
