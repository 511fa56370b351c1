package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/auth"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.SessionIdentity, error) {
	args := m.Called(ctx, request)
	if identity, ok := args.Get(0).(*responses.SessionIdentity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthUsecase) CheckAuth(ctx context.Context, session *models.Session) (*responses.CheckAuth, error) {
	args := m.Called(ctx, session)
	if identity, ok := args.Get(0).(*responses.CheckAuth); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

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

func newAuthRouter(usecase auth.AuthUsecase, sessions *MockSessionService) chi.Router {
	internalConfig := &config.InternalConfig{
		Session: config.Session{MaxAgeInMinute: 60},
	}
	router := chi.NewRouter()
	attachAuthRoutes(
		router,
		middlewares.New(zap.NewNop(), sessions, internalConfig),
		auth.NewAuthController(usecase, internalConfig, zap.NewNop()),
	)
	return router
}

func sessionCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constvars.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("successful login sets the session cookie", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		usecase.On("Login", mock.Anything, mock.MatchedBy(func(request *requests.Login) bool {
			return request.User == "drsmith" && request.Password == "correct-horse"
		})).Return(&responses.SessionIdentity{UserID: "42", Role: models.RoleDoctor, Token: "signed-token"}, nil)
		router := newAuthRouter(usecase, new(MockSessionService))

		request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":"drsmith","password":"correct-horse"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"login":"success"}`, recorder.Body.String())
		cookie := sessionCookie(recorder)
		if assert.NotNil(t, cookie) {
			assert.Equal(t, "signed-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, 3600, cookie.MaxAge)
		}
	})

	t.Run("missing credentials report the literal contract message", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		usecase.On("Login", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrMissingCredentials())
		router := newAuthRouter(usecase, new(MockSessionService))

		request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":"","password":""}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"error":"Username and password required"`)
		assert.Nil(t, sessionCookie(recorder))
	})

	t.Run("bad credentials never set a cookie", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		usecase.On("Login", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrInvalidCredentials())
		router := newAuthRouter(usecase, new(MockSessionService))

		request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":"ghost","password":"nope"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"error":"Invalid credentials"`)
		assert.Nil(t, sessionCookie(recorder))
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		router := newAuthRouter(new(MockAuthUsecase), new(MockSessionService))

		request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
	})
}

func TestAuthRouter_Logout(t *testing.T) {
	t.Run("logout clears the cookie", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		sessions := new(MockSessionService)
		userSession := &models.Session{SessionID: "sid", User: models.SessionUser{ID: "42", Role: models.RoleDoctor}}
		sessions.On("Resolve", mock.Anything, "signed-token").Return(userSession, nil)
		usecase.On("Logout", mock.Anything, userSession).Return(nil)
		router := newAuthRouter(usecase, sessions)

		request := httptest.NewRequest(http.MethodGet, "/logout", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "signed-token"})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"logout":"success"}`, recorder.Body.String())
		cookie := sessionCookie(recorder)
		if assert.NotNil(t, cookie) {
			assert.Equal(t, "", cookie.Value)
			assert.Equal(t, -1, cookie.MaxAge)
		}
	})

	t.Run("logout without a session still succeeds", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		usecase.On("Logout", mock.Anything, mock.Anything).Return(nil)
		router := newAuthRouter(usecase, new(MockSessionService))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/logout", nil))

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"logout":"success"}`, recorder.Body.String())
	})

	t.Run("store failure reports could-not-log-out", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		sessions := new(MockSessionService)
		userSession := &models.Session{SessionID: "sid", User: models.SessionUser{ID: "42", Role: models.RoleDoctor}}
		sessions.On("Resolve", mock.Anything, "signed-token").Return(userSession, nil)
		usecase.On("Logout", mock.Anything, userSession).Return(exceptions.ErrLogout(assert.AnError))
		router := newAuthRouter(usecase, sessions)

		request := httptest.NewRequest(http.MethodGet, "/logout", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "signed-token"})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"error":"Could not log out"`)
	})
}

func TestAuthRouter_CheckAuth(t *testing.T) {
	t.Run("anonymous caller gets the literal unauthorized body", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		usecase.On("CheckAuth", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUnauthorized(nil, constvars.ErrDevAuthSessionMissing))
		router := newAuthRouter(usecase, new(MockSessionService))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/check-auth", nil))

		assert.Equal(t, constvars.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"error":"Unauthorized"`)
	})

	t.Run("authenticated caller sees id and role", func(t *testing.T) {
		usecase := new(MockAuthUsecase)
		sessions := new(MockSessionService)
		userSession := &models.Session{SessionID: "sid", User: models.SessionUser{ID: "42", Role: models.RoleAdmin}}
		sessions.On("Resolve", mock.Anything, "signed-token").Return(userSession, nil)
		usecase.On("CheckAuth", mock.Anything, userSession).
			Return(&responses.CheckAuth{UserID: "42", Role: models.RoleAdmin}, nil)
		router := newAuthRouter(usecase, sessions)

		request := httptest.NewRequest(http.MethodPost, "/check-auth", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "signed-token"})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"userId":"42","role":"ADMIN"}`, recorder.Body.String())
	})
}
