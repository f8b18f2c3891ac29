package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsVerifications(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveVerification("geo", OutcomeSuccess)
	c.ObserveVerification("geo", OutcomeSuccess)
	c.ObserveVerification("fingerprint", OutcomeDenied)
	c.ObserveClassification(2 * time.Millisecond)
	c.SetReferenceSamples(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Verifications.WithLabelValues("geo", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Verifications.WithLabelValues("fingerprint", OutcomeDenied)))
	assert.Equal(t, 42.0, testutil.ToFloat64(c.ReferenceSamples))
	assert.Equal(t, 1, testutil.CollectAndCount(c.ClassificationDuration))
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObserveVerification("ssid", OutcomeSuccess)
		c.ObserveClassification(time.Millisecond)
		c.SetReferenceSamples(3)
	})
}

func TestCollectorHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.ObserveVerification("hotspot", OutcomeDenied)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `roomcheck_verifications_total{check="hotspot",outcome="denied"} 1`), body)
}
