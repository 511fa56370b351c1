package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, user *models.User) (*models.Session, string, error) {
	args := m.Called(ctx, user)
	if session, ok := args.Get(0).(*models.Session); ok {
		return session, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if session, ok := args.Get(0).(*models.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestMiddlewares(sessions *MockSessionService) *Middlewares {
	return New(zap.NewNop(), sessions, &config.InternalConfig{})
}

func sessionEchoHandler(t *testing.T, captured **models.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = utils.SessionFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("request without a cookie is unauthorized", func(t *testing.T) {
		sessions := new(MockSessionService)
		var captured *models.Session
		handler := newTestMiddlewares(sessions).Authenticate(sessionEchoHandler(t, &captured))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/patients", nil))

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
		sessions.AssertNotCalled(t, "Resolve")
	})

	t.Run("tampered or expired token is unauthorized", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Resolve", mock.Anything, "bad-token").
			Return(nil, exceptions.ErrUnauthorized(assert.AnError, constvars.ErrDevAuthTokenInvalid))
		var captured *models.Session
		handler := newTestMiddlewares(sessions).Authenticate(sessionEchoHandler(t, &captured))

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "bad-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid token but vanished session is unauthorized", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Resolve", mock.Anything, "stale-token").Return(nil, nil)
		var captured *models.Session
		handler := newTestMiddlewares(sessions).Authenticate(sessionEchoHandler(t, &captured))

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "stale-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid session reaches the handler", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Resolve", mock.Anything, "good-token").Return(&models.Session{
			SessionID: "sid",
			User:      models.SessionUser{ID: "7", Role: models.RoleDoctor},
		}, nil)
		var captured *models.Session
		handler := newTestMiddlewares(sessions).Authenticate(sessionEchoHandler(t, &captured))

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "good-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		if assert.NotNil(t, captured) {
			assert.Equal(t, "7", captured.User.ID)
			assert.Equal(t, models.RoleDoctor, captured.User.Role)
		}
	})
}

func TestSessionOptional(t *testing.T) {
	t.Run("anonymous request passes through", func(t *testing.T) {
		sessions := new(MockSessionService)
		var captured *models.Session
		handler := newTestMiddlewares(sessions).SessionOptional(sessionEchoHandler(t, &captured))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("stale cookie degrades to anonymous instead of rejecting", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Resolve", mock.Anything, "stale-token").
			Return(nil, exceptions.ErrUnauthorized(assert.AnError, constvars.ErrDevAuthTokenInvalid))
		var captured *models.Session
		handler := newTestMiddlewares(sessions).SessionOptional(sessionEchoHandler(t, &captured))

		request := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "stale-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid cookie attaches the session", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Resolve", mock.Anything, "good-token").Return(&models.Session{
			SessionID: "sid",
			User:      models.SessionUser{ID: "7", Role: models.RoleDoctor},
		}, nil)
		var captured *models.Session
		handler := newTestMiddlewares(sessions).SessionOptional(sessionEchoHandler(t, &captured))

		request := httptest.NewRequest(http.MethodGet, "/auth/check-auth", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "good-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.NotNil(t, captured)
	})
}

func TestRequireRole(t *testing.T) {
	withSession := func(r *http.Request, session *models.Session) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session))
	}

	t.Run("matching role passes", func(t *testing.T) {
		var captured *models.Session
		handler := newTestMiddlewares(new(MockSessionService)).
			RequireRole(models.RoleAdmin)(sessionEchoHandler(t, &captured))

		request := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), &models.Session{
			SessionID: "sid",
			User:      models.SessionUser{ID: "1", Role: models.RoleAdmin},
		})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		var captured *models.Session
		handler := newTestMiddlewares(new(MockSessionService)).
			RequireRole(models.RoleAdmin)(sessionEchoHandler(t, &captured))

		request := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), &models.Session{
			SessionID: "sid",
			User:      models.SessionUser{ID: "7", Role: models.RoleDoctor},
		})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusForbidden, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("missing session is unauthorized", func(t *testing.T) {
		var captured *models.Session
		handler := newTestMiddlewares(new(MockSessionService)).
			RequireRole(models.RoleAdmin)(sessionEchoHandler(t, &captured))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
	})
}
