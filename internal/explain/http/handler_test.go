package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/explain"
)

type finder map[string]*domain.Project

func (f finder) Get(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range f {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.NotFound(domain.KindProject)
}

func (f finder) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	if p, ok := f[slug]; ok {
		return p, nil
	}
	return nil, domain.NotFound(domain.KindProject)
}

type echoProvider struct{ fail bool }

func (e echoProvider) Generate(context.Context, string) (string, error) {
	if e.fail {
		return "", explain.ErrUpstream
	}
	return "generated", nil
}

func newRouter(provider explain.Provider, limit ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	projects := finder{"ledger": {ID: "p1", Slug: "ledger", Title: "Ledger"}}
	r := gin.New()
	New(explain.NewGateway(projects, provider, time.Second)).Register(r.Group("/api/v1/projects"), limit...)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestExplainHandler(t *testing.T) {
	r := newRouter(echoProvider{})

	rr := post(r, "/api/v1/projects/ledger/explain", `{"persona":"recruiter"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"projectId":"p1","persona":"recruiter","text":"generated","fallback":false}`, rr.Body.String())

	rr = post(r, "/api/v1/projects/p1/explain", `{"persona":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"kind":"validation_error"`)

	rr = post(r, "/api/v1/projects/p1/explain", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(r, "/api/v1/projects/missing/explain", `{"persona":"engineer"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExplainHandler_FallbackIsStill200(t *testing.T) {
	r := newRouter(echoProvider{fail: true})

	rr := post(r, "/api/v1/projects/ledger/explain", `{"persona":"architect"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"fallback":true`)
	assert.Contains(t, rr.Body.String(), explain.FallbackMessage)
}

func TestExplainHandler_RunsLimiterFirst(t *testing.T) {
	blocked := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }
	r := newRouter(echoProvider{}, blocked)

	rr := post(r, "/api/v1/projects/ledger/explain", `{"persona":"recruiter"}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
