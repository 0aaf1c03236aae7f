package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/matchplay-data-service/pkg/types"
)

// StatsClient fetches the three PGA Tour match-play feeds. It handles
// transport concerns only (timeouts, retries, rate limiting, response
// caching); all joining and reshaping lives in the matchplay package.
type StatsClient struct {
	httpClient    *http.Client
	cache         types.CacheProvider
	logger        *logrus.Logger
	baseURL       string
	teeTimesURL   string
	tournamentID  string
	seasonYear    string
	rateLimiter   *time.Ticker
	retryAttempts int
	mu            sync.Mutex
}

// NewStatsClient creates a new feed client. cache may be a no-op
// provider in tests.
func NewStatsClient(baseURL, teeTimesURL, tournamentID, seasonYear string, timeout time.Duration, retryAttempts int, cache types.CacheProvider, logger *logrus.Logger) *StatsClient {
	if retryAttempts <= 0 {
		retryAttempts = 3
	}
	return &StatsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:         cache,
		logger:        logger,
		baseURL:       baseURL,
		teeTimesURL:   teeTimesURL,
		tournamentID:  tournamentID,
		seasonYear:    seasonYear,
		rateLimiter:   time.NewTicker(1 * time.Second), // Conservative 1 req/second
		retryAttempts: retryAttempts,
	}
}

// GetTeeTimes fetches the tee-time feed that backs the group-id index.
func (c *StatsClient) GetTeeTimes() (*TeeTimesFeed, error) {
	cacheKey := fmt.Sprintf("pgatour:%s:teetimes", c.tournamentID)

	var cached TeeTimesFeed
	if err := c.cache.GetSimple(cacheKey, &cached); err == nil {
		c.logger.WithField("source", "cache").Debug("Returning cached tee-time feed")
		return &cached, nil
	}

	var feed TeeTimesFeed
	if err := c.makeRequest(c.teeTimesURL, &feed); err != nil {
		return nil, fmt.Errorf("failed to fetch tee times: %w", err)
	}

	c.cache.SetSimple(cacheKey, feed, 12*time.Hour)
	return &feed, nil
}

// GetLeaderboard fetches the match-play leaderboard feed.
func (c *StatsClient) GetLeaderboard() (*LeaderboardFeed, error) {
	cacheKey := fmt.Sprintf("pgatour:%s:leaderboard", c.tournamentID)

	var cached LeaderboardFeed
	if err := c.cache.GetSimple(cacheKey, &cached); err == nil {
		c.logger.WithField("source", "cache").Debug("Returning cached leaderboard feed")
		return &cached, nil
	}

	url := fmt.Sprintf("%s/r/%s/%s/leaderboard_mp.json", c.baseURL, c.tournamentID, c.seasonYear)
	var feed LeaderboardFeed
	if err := c.makeRequest(url, &feed); err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	c.cache.SetSimple(cacheKey, feed, 12*time.Hour)
	return &feed, nil
}

// GetMatchDetail fetches one match's detail feed (course geometry plus
// per-player hole/shot arrays).
func (c *StatsClient) GetMatchDetail(roundNumber, matchNum string) (*MatchDetailFeed, error) {
	cacheKey := fmt.Sprintf("pgatour:%s:match:r%s-m%s", c.tournamentID, roundNumber, matchNum)

	var cached MatchDetailFeed
	if err := c.cache.GetSimple(cacheKey, &cached); err == nil {
		c.logger.WithFields(logrus.Fields{
			"source": "cache",
			"round":  roundNumber,
			"match":  matchNum,
		}).Debug("Returning cached match detail feed")
		return &cached, nil
	}

	url := fmt.Sprintf("%s/r/%s/mp_matches/r%s-m%s.json", c.baseURL, c.tournamentID, roundNumber, matchNum)
	var feed MatchDetailFeed
	if err := c.makeRequest(url, &feed); err != nil {
		return nil, fmt.Errorf("failed to fetch match detail r%s-m%s: %w", roundNumber, matchNum, err)
	}

	c.cache.SetSimple(cacheKey, feed, 12*time.Hour)
	return &feed, nil
}

// makeRequest handles HTTP requests with rate limiting and retries
func (c *StatsClient) makeRequest(url string, target interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Rate limiting
	<-c.rateLimiter.C

	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			time.Sleep(time.Duration(math.Pow(2, float64(attempt))) * time.Second)
		}

		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return err
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "matchplay-data-service/1.0.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("feed request failed with status %d", resp.StatusCode)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if err := json.Unmarshal(body, target); err != nil {
			c.logger.WithFields(logrus.Fields{
				"url":             url,
				"response_length": len(body),
				"error":           err.Error(),
			}).Error("Failed to decode JSON feed response")
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("failed after %d attempts: %w", c.retryAttempts, lastErr)
}
