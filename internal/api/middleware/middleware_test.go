package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"test-manager-backend/internal/api/middleware"
	"test-manager-backend/internal/config"
	"test-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(logger.RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestLogger_WritesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("info", &buf)
	defer logger.Setup("info", nil)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger())
	router.GET("/projects/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/projects/9", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-9")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/projects/9", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "warning", entry["level"])
	assert.Contains(t, entry, "latency_ms")
}

func TestRecovery_ReturnsInternalServerError(t *testing.T) {
	logger.Setup("error", &bytes.Buffer{})
	defer logger.Setup("info", nil)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := gin.New()
	router.Use(middleware.CORS(cfg))
	router.GET("/projects", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name         string
		method       string
		origin       string
		expectedCode int
		expectAllow  bool
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "http://localhost:3000", expectedCode: http.StatusOK, expectAllow: true},
		{name: "unknown origin", method: http.MethodGet, origin: "http://evil.example", expectedCode: http.StatusOK, expectAllow: false},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:3000", expectedCode: http.StatusNoContent, expectAllow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/projects", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectAllow {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
