package middlewares

import (
	"context"
	"net/http"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// SessionOptional resolves the session cookie when present and attaches the
// session to the context. It never rejects: routes that tolerate anonymous
// callers (logout, check-auth) sit behind this one.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(constvars.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		userSession, err := m.SessionService.Resolve(r.Context(), cookie.Value)
		if err != nil || userSession == nil {
			// A bad or stale cookie degrades to anonymous here; the strict
			// guard is the one that says no.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, userSession)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate rejects any request whose session lacks a user id before the
// handler runs. It deliberately does not check roles or ownership.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(constvars.SessionCookieName)
		if err != nil || cookie.Value == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnauthorized(err, constvars.ErrDevAuthSessionMissing))
			return
		}

		userSession, err := m.SessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !userSession.Authenticated() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnauthorized(nil, constvars.ErrDevAuthSessionAnonymous))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, userSession)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route subtree to one role. It assumes Authenticate
// already ran.
func (m *Middlewares) RequireRole(role models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userSession := utils.SessionFromContext(r)
			if !userSession.Authenticated() {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnauthorized(nil, constvars.ErrDevAuthSessionAnonymous))
				return
			}
			if userSession.User.Role != role {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Warn("role gate rejected request",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingActorKey, userSession.User.ID),
					zap.String(constvars.LoggingRoleKey, string(userSession.User.Role)),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleUnknown(string(userSession.User.Role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
