package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/auth/middleware"
	"github.com/Developer-Sahil/portfolio-system/internal/auth/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	gate := service.NewGate(service.Options{
		AdminEmail:   "admin@example.com",
		PasswordHash: string(hash),
		Secret:       "0123456789abcdef0123456789abcdef",
		TTL:          time.Hour,
	})

	r := gin.New()
	New(gate).Register(r.Group("/auth"), middleware.RequireAdmin(gate))
	return r
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLoginThenMe(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var sess domain.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sess))
	require.NotEmpty(t, sess.Token)

	rr = do(r, http.MethodGet, "/auth/me", "", sess.Token)
	require.Equal(t, http.StatusOK, rr.Code)

	var id domain.Identity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &id))
	assert.Equal(t, "admin@example.com", id.Email)
	assert.Equal(t, domain.MethodPassword, id.Method)
}

func TestLogin_Failures(t *testing.T) {
	r := setupRouter(t)

	rr := do(r, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"kind":"unauthorized"`)

	rr = do(r, http.MethodPost, "/auth/login", `{"email":"admin@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(r, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
