package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveLogin(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveLogin(OutcomeSuccess, 0.01)
	m.ObserveLogin(OutcomeSuccess, 0.02)
	m.ObserveLogin(OutcomeInvalidCredential, 0.001)

	if got := testutil.ToFloat64(m.LoginsTotal.WithLabelValues(OutcomeSuccess)); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.LoginsTotal.WithLabelValues(OutcomeInvalidCredential)); got != 1 {
		t.Errorf("invalid_credential count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.LoginsTotal.WithLabelValues(OutcomeUpstreamFailure)); got != 0 {
		t.Errorf("upstream_failure count = %v, want 0", got)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveLogin(OutcomeUpstreamFailure, 0.5)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(w.Body)
	for _, want := range []string{
		`daytogether_auth_logins_total{outcome="upstream_failure"} 1`,
		"daytogether_auth_login_duration_seconds_count 1",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
