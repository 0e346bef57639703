package recommendations

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/metrics"
)

// HealthCache remembers the last probe result for ttl.
// Concurrent callers share a single in-flight probe. The probe is bounded
// by its own timeout and ignores caller cancellation.
type HealthCache struct {
	url    string
	http   *http.Client
	ttl    time.Duration
	now    func() time.Time
	mu     sync.Mutex
	probed time.Time
	ok     bool
}

func NewHealthCache(baseURL string, probeTimeout, ttl time.Duration) *HealthCache {
	return &HealthCache{
		url:  baseURL + "/health",
		http: &http.Client{Timeout: probeTimeout},
		ttl:  ttl,
		now:  time.Now,
	}
}

func (h *HealthCache) Healthy(ctx context.Context) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.probed.IsZero() && h.now().Sub(h.probed) < h.ttl {
		return h.ok
	}
	if ctx.Err() != nil {
		return false
	}

	h.ok = h.probe(context.WithoutCancel(ctx))
	h.probed = h.now()
	metrics.RecordHealthProbe(h.ok)
	return h.ok
}

// Invalidate forces the next Healthy call to probe
func (h *HealthCache) Invalidate() {
	h.mu.Lock()
	h.probed = time.Time{}
	h.mu.Unlock()
}

func (h *HealthCache) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return false
	}

	resp, err := h.http.Do(req)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("url", h.url).Msg("Recommender health probe failed")
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
