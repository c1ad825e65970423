package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	coremocks "github.com/fintrackhq/fintrack-api/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	t.Run("should recover from a panic with a 500 response", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		router := gin.New()
		router.Use(ErrorHandler(mockLogger))
		router.GET("/boom", func(c *gin.Context) {
			panic("something broke")
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})

	t.Run("should not interfere with normal requests", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		router := gin.New()
		router.Use(ErrorHandler(mockLogger))
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogger(t *testing.T) {
	t.Run("should log every processed request", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.On("Info", "Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["method"] == http.MethodGet &&
				fields["path"] == "/ok" &&
				fields["status"] == http.StatusOK
		})).Once()

		router := gin.New()
		router.Use(Logger(mockLogger))
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	t.Run("should set the CORS headers on responses", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS())
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should short-circuit preflight requests", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS())
		router.OPTIONS("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	t.Run("should set conservative browser headers", func(t *testing.T) {
		router := gin.New()
		router.Use(SecurityHeaders())
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	})
}
