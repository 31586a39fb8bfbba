package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector("test")

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/items/:id", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(c.Handler()))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/items/:id", "204")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(w.Body.String(), "test_http_requests_total"))
}

func TestCollector_RecordGeneration(t *testing.T) {
	c := NewCollector("test")
	c.RecordGeneration("role", OutcomeGenerated)
	c.RecordGeneration("role", OutcomeGenerated)
	c.RecordGeneration("job", OutcomeError)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.Generations.WithLabelValues("role", OutcomeGenerated)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Generations.WithLabelValues("job", OutcomeError)))

	var nilCollector *Collector
	assert.NotPanics(t, func() {
		nilCollector.RecordGeneration("role", OutcomeEmpty)
		nilCollector.RecordEmailSynced()
	})
}
