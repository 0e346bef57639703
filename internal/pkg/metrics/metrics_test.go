package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/modules", "200"))
	RecordHTTPRequest("GET", "/api/v1/modules", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/modules", "200"))
	require.Equal(t, before+1, after)
}

func TestRecordHTTPRequest_Unmatched(t *testing.T) {
	RecordHTTPRequest("GET", "", 404, time.Millisecond)
	require.GreaterOrEqual(t, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")), float64(1))
}

func TestRecordHealthProbe(t *testing.T) {
	before := testutil.ToFloat64(RecommenderHealthProbes.WithLabelValues("unhealthy"))
	RecordHealthProbe(false)
	require.Equal(t, before+1, testutil.ToFloat64(RecommenderHealthProbes.WithLabelValues("unhealthy")))
}

func TestSetBreakerState(t *testing.T) {
	SetBreakerState("recommender", 2)
	require.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("recommender")))
}
