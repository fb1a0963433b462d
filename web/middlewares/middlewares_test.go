package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/security"
)

var secret = []byte("middleware-test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://attendance.example.com"}))

	api := r.Group("/api", Authentication(secret))
	api.GET("/me", func(c *gin.Context) {
		identity, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, identity)
	})
	api.GET("/managers", RequireRole(model.RoleManager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func token(t *testing.T, role model.Role) string {
	t.Helper()
	tok, err := security.CreateIdentityToken(security.Identity{UserID: "u1", Role: role}, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthentication(t *testing.T) {
	r := newRouter()
	employee := token(t, model.RoleEmployee)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{name: "No token", status: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + employee, status: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "Bearer token", header: "Bearer " + employee, status: http.StatusOK},
		{name: "Cookie token", cookie: employee, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				var identity security.Identity
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
				assert.Equal(t, "u1", identity.UserID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := newRouter()

	tests := []struct {
		role   model.Role
		status int
	}{
		{role: model.RoleEmployee, status: http.StatusForbidden},
		{role: model.RoleManager, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/managers", nil)
			req.Header.Set("Authorization", "Bearer "+token(t, tt.role))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	r := newRouter()

	tests := []struct {
		origin  string
		allowed bool
	}{
		{origin: "https://attendance.example.com", allowed: true},
		{origin: "http://localhost:3000", allowed: true},
		{origin: "https://evil.example.com", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			req.Header.Set("Access-Control-Request-Headers", "Authorization")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORSActualRequest(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Origin", "https://attendance.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "https://attendance.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Disposition", w.Header().Get("Access-Control-Expose-Headers"))

	bare := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, bare)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
