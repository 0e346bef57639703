package recommendations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/metrics"
	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

var errHealthProbe = errors.New("health probe failed")

const (
	breakerName     = "recommender"
	maxErrorBody    = 2048
	breakerFailures = 5
)

type ClientConfig struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	ProbeTimeout time.Duration
	HealthTTL    time.Duration
	BreakerOpen  time.Duration
}

// Client calls the external recommendation service
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	health  *HealthCache
	cb      *gobreaker.CircuitBreaker[[]RecommendationDTO]
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BreakerOpen <= 0 {
		cfg.BreakerOpen = 30 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")

	metrics.SetBreakerState(breakerName, int(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[[]RecommendationDTO](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpen,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		// 4xx responses do not count as failures
		IsSuccessful: func(err error) bool {
			var svcErr *ServiceError
			if errors.As(err, &svcErr) {
				return svcErr.Kind == apperrors.KindValidation
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Circuit breaker state change")
			metrics.SetBreakerState(name, int(to))
		},
	})

	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		health:  NewHealthCache(base, cfg.ProbeTimeout, cfg.HealthTTL),
		cb:      cb,
	}
}

// RecommendCourses returns an empty slice, not an error, when nothing matches
func (c *Client) RecommendCourses(ctx context.Context, q Query) ([]Recommendation, error) {
	recs, err := c.recommend(ctx, q)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			metrics.RecordRecommendation(svcErr.outcome())
		}
		return nil, err
	}
	metrics.RecordRecommendation("ok")
	return recs, nil
}

func (c *Client) recommend(ctx context.Context, q Query) ([]Recommendation, error) {
	url := c.baseURL + "/recommend"

	if !c.health.Healthy(ctx) {
		return nil, &ServiceError{URL: c.baseURL + "/health", Kind: apperrors.KindServiceUnavailable, Err: errHealthProbe}
	}

	dtos, err := c.cb.Execute(func() ([]RecommendationDTO, error) {
		return c.post(ctx, url, q)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &ServiceError{URL: url, Kind: apperrors.KindServiceUnavailable, Err: err}
		}
		return nil, err
	}

	recs, err := ToDomainList(dtos)
	if err != nil {
		return nil, &ServiceError{URL: url, Kind: apperrors.KindBadGateway, Err: err}
	}
	return recs, nil
}

func (c *Client) post(ctx context.Context, url string, q Query) ([]RecommendationDTO, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &ServiceError{URL: url, Kind: apperrors.KindServiceUnavailable, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.health.Invalidate()
		logger.Ctx(ctx).Warn().Err(err).Str("url", url).Msg("Recommender request failed")
		return nil, &ServiceError{URL: url, Kind: apperrors.KindServiceUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		kind := apperrors.KindBadGateway
		if resp.StatusCode < 500 {
			kind = apperrors.KindValidation
		}
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       strings.TrimSpace(string(body)),
			Kind:       kind,
		}
	}

	var dtos []RecommendationDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, &ServiceError{StatusCode: resp.StatusCode, URL: url, Kind: apperrors.KindBadGateway, Err: err}
	}
	return dtos, nil
}
