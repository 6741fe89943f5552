package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestObserveRelay(t *testing.T) {
	m := New()

	m.ObserveRelay("search", "", time.Second)
	m.ObserveRelay("search", "solving_challenge", 2*time.Second)
	m.ObserveRelay("file_details", "relaying", time.Second)

	assert.Equal(t, 1.0, value(t, m.RelaysTotal.WithLabelValues("search", ResultSuccess)))
	assert.Equal(t, 1.0, value(t, m.RelaysTotal.WithLabelValues("search", ResultFailure)))
	assert.Equal(t, 1.0, value(t, m.StageFailures.WithLabelValues("search", "solving_challenge")))
	assert.Equal(t, 1.0, value(t, m.StageFailures.WithLabelValues("file_details", "relaying")))
	assert.Equal(t, 0.0, value(t, m.StageFailures.WithLabelValues("search", "relaying")))
}

func TestRelayStarted(t *testing.T) {
	m := New()

	done := m.RelayStarted()
	assert.Equal(t, 1.0, value(t, m.RelaysActive))
	done()
	assert.Equal(t, 0.0, value(t, m.RelaysActive))
}

func TestHandler_ExposesRequestMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/search", http.StatusBadRequest, 10*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), `trademark_relay_http_requests_total{method="POST",route="/search",status="400"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().ObserveRelay("search", "relaying", time.Second) })
}

func value(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()

	var out dto.Metric
	require.NoError(t, c.Write(&out))
	switch {
	case out.Counter != nil:
		return out.Counter.GetValue()
	case out.Gauge != nil:
		return out.Gauge.GetValue()
	}
	t.Fatalf("unexpected metric type")
	return 0
}
