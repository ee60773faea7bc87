package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

func TestError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		kind   string
		detail string
	}{
		{"not found", domain.NotFound(domain.KindProject), http.StatusNotFound, httpapi.KindNotFound, "project not found"},
		{"validation", domain.Invalid("title", "is required"), http.StatusBadRequest, httpapi.KindValidation, "title: is required"},
		{"wrapped validation", fmt.Errorf("create: %w", domain.Invalid("slug", "bad")), http.StatusBadRequest, httpapi.KindValidation, "slug: bad"},
		{"conflict", domain.SlugConflict(domain.KindWriting, "raft"), http.StatusConflict, httpapi.KindConflict, ""},
		{"unauthorized", fmt.Errorf("%w: expired", authdomain.ErrUnauthorized), http.StatusUnauthorized, httpapi.KindUnauthorized, ""},
		{"internal", errors.New("pq: connection reset"), http.StatusInternalServerError, httpapi.KindInternal, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			httpapi.Error(c, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			var body httpapi.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.kind, body.Kind)
			if tc.detail != "" {
				assert.Equal(t, tc.detail, body.Detail)
			}
			assert.NotContains(t, body.Detail, "pq:")
		})
	}
}

func TestUnauthorized_SetsChallenge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	httpapi.Unauthorized(c)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Bearer")
	assert.True(t, c.IsAborted())
}
