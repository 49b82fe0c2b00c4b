package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrAnalyticsNotConfigured means no analytics credentials are present.
var ErrAnalyticsNotConfigured = errors.New("analytics is not configured")

const visitorCacheKey = "visitor-count"
const visitorCacheTTL = 5 * time.Minute

type umamiStatsResponse struct {
	Pageviews struct {
		Value int `json:"value"`
	} `json:"pageviews"`
	Visitors struct {
		Value int `json:"value"`
	} `json:"visitors"`
}

// VisitorService proxies the external analytics provider for the public
// visitor-count widget. Results are cached so the provider is not hit on
// every page view.
type VisitorService struct {
	client    *resty.Client
	cache     Cache
	baseURL   string
	websiteID string
	apiKey    string
}

// NewVisitorService creates a VisitorService instance.
func NewVisitorService(cache Cache, websiteID, apiKey string) *VisitorService {
	return &VisitorService{
		client:    resty.New().SetTimeout(10 * time.Second),
		cache:     cache,
		baseURL:   "https://api.umami.is/v1",
		websiteID: strings.TrimSpace(websiteID),
		apiKey:    strings.TrimSpace(apiKey),
	}
}

// SetBaseURL overrides the provider endpoint, mainly for tests.
func (s *VisitorService) SetBaseURL(base string) {
	s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// Count returns total pageviews over the trailing year.
func (s *VisitorService) Count(ctx context.Context) (int, error) {
	if s.websiteID == "" || s.apiKey == "" {
		return 0, ErrAnalyticsNotConfigured
	}

	if cached, ok, err := s.cache.Get(ctx, visitorCacheKey); err == nil && ok {
		if count, convErr := strconv.Atoi(cached); convErr == nil {
			return count, nil
		}
	}

	end := time.Now()
	start := end.AddDate(-1, 0, 0)

	var stats umamiStatsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetQueryParam("startAt", strconv.FormatInt(start.UnixMilli(), 10)).
		SetQueryParam("endAt", strconv.FormatInt(end.UnixMilli(), 10)).
		SetResult(&stats).
		Get(fmt.Sprintf("%s/websites/%s/stats", s.baseURL, s.websiteID))
	if err != nil {
		return 0, fmt.Errorf("fetch visitor stats: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("analytics provider error: %s", resp.Status())
	}

	count := stats.Pageviews.Value
	if count == 0 {
		count = stats.Visitors.Value
	}

	// A cache write failure only costs the next request a provider call.
	_ = s.cache.Set(ctx, visitorCacheKey, strconv.Itoa(count), visitorCacheTTL)

	return count, nil
}
