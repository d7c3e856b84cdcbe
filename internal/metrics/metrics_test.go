package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("GET", "/api/juegos/:id", "404")
	before := testutil.ToFloat64(counter)

	RecordRequest("GET", "/api/juegos/:id", "404", 15*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("http_requests_total = %v, want %v", got, before+1)
	}
}

func TestTrackInFlight(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsInFlight)

	TrackInFlight(true)
	if got := testutil.ToFloat64(HTTPRequestsInFlight); got != before+1 {
		t.Errorf("after inc = %v", got)
	}
	TrackInFlight(false)
	if got := testutil.ToFloat64(HTTPRequestsInFlight); got != before {
		t.Errorf("after dec = %v", got)
	}
}
