package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("GET", "/mood/history", 200, 15*time.Millisecond)
	c.RecordRequest("GET", "/mood/history", 200, 5*time.Millisecond)
	c.RecordRequest("GET", "/mood/history", 401, time.Millisecond)

	if got := testutil.ToFloat64(c.requests.WithLabelValues("GET", "/mood/history", "200")); got != 2 {
		t.Errorf("requests{200} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requests.WithLabelValues("GET", "/mood/history", "401")); got != 1 {
		t.Errorf("requests{401} = %v, want 1", got)
	}
}

func TestRecordAuthFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthFailure("token_expired")
	c.RecordAuthFailure("token_expired")
	c.RecordAuthFailure("invalid_token")

	if got := testutil.ToFloat64(c.authFailures.WithLabelValues("token_expired")); got != 2 {
		t.Errorf("auth_failures{token_expired} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.authFailures.WithLabelValues("invalid_token")); got != 1 {
		t.Errorf("auth_failures{invalid_token} = %v, want 1", got)
	}
}

func TestRecordSuggestion(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSuggestion("quote", true)
	c.RecordSuggestion("movie", false)

	if got := testutil.ToFloat64(c.suggestions.WithLabelValues("quote", "true")); got != 1 {
		t.Errorf("suggestions{quote,true} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.suggestions.WithLabelValues("movie", "false")); got != 1 {
		t.Errorf("suggestions{movie,false} = %v, want 1", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.RecordRequest("GET", "/", 200, time.Millisecond)
	c.RecordAuthFailure("invalid_token")
	c.RecordSuggestion("quote", true)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordAuthFailure("invalid_credentials")

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `moodwell_auth_failures_total{reason="invalid_credentials"} 1`) {
		t.Errorf("metrics output missing auth failure counter:\n%s", body)
	}
}
