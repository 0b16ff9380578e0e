package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
	"github.com/allisson/tenantvault/internal/auth/usecase/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupRouter builds a router with the authentication middleware and a
// probe endpoint that reports the authenticated client id.
func setupRouter(clientUseCase *mocks.MockClientUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthenticationMiddleware(clientUseCase, testLogger()))
	router.GET("/probe", func(c *gin.Context) {
		client, ok := GetClient(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"client_id": client.ID.String()})
	})
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("valid credential reaches the handler", func(t *testing.T) {
		clientUseCase := &mocks.MockClientUseCase{}
		client := authDomain.NewClient("glue-service")
		credential := client.ID.String() + ".the-secret"

		clientUseCase.On("Authenticate", mock.Anything, credential).Return(client, nil)

		router := setupRouter(clientUseCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+credential)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), client.ID.String())
	})

	t.Run("bearer keyword is case-insensitive", func(t *testing.T) {
		clientUseCase := &mocks.MockClientUseCase{}
		client := authDomain.NewClient("glue-service")
		credential := client.ID.String() + ".the-secret"

		clientUseCase.On("Authenticate", mock.Anything, credential).Return(client, nil)

		router := setupRouter(clientUseCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "bEaReR "+credential)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		clientUseCase := &mocks.MockClientUseCase{}

		router := setupRouter(clientUseCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		clientUseCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("non-bearer scheme is unauthorized", func(t *testing.T) {
		clientUseCase := &mocks.MockClientUseCase{}

		router := setupRouter(clientUseCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid credential is unauthorized", func(t *testing.T) {
		clientUseCase := &mocks.MockClientUseCase{}
		clientUseCase.On("Authenticate", mock.Anything, "bad-credential").
			Return(nil, authDomain.ErrInvalidCredentials)

		router := setupRouter(clientUseCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer bad-credential")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("inactive client is forbidden", func(t *testing.T) {
		clientUseCase := &mocks.MockClientUseCase{}
		clientUseCase.On("Authenticate", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrClientInactive)

		router := setupRouter(clientUseCase)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer some.credential")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
