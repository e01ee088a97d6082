// Package coach talks to the external coaching-text service.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	askPath = "/coach/ask"

	defaultTimeout   = 20 * time.Second
	defaultCacheSize = 4 * 1024 * 1024
	defaultCacheTTL  = 10 * time.Minute
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int // bytes
	CacheTTL  time.Duration
}

// Client asks the coaching service for text. Replies are cached per user
// and question. A Client with no base URL is disabled and always answers
// with empty text.
type Client struct {
	baseURL    string
	timeout    time.Duration
	cacheTTL   int // seconds
	cache      *freecache.Cache
	httpClient *http.Client
}

type askRequest struct {
	UserID  string `json:"user_id,omitempty"`
	Message string `json:"message"`
}

type askResponse struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		cacheTTL:   int(cfg.CacheTTL / time.Second),
		cache:      freecache.NewCache(cfg.CacheSize),
		httpClient: httpClient,
	}
}

// Enabled reports whether a coaching service is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// Ask returns coaching text for the message. Failures are logged and
// reported as empty text; callers never depend on a reply.
func (c *Client) Ask(ctx context.Context, userID, message string) string {
	if !c.Enabled() || strings.TrimSpace(message) == "" {
		return ""
	}
	reply, err := c.ask(ctx, userID, message)
	if err != nil {
		log.WithField("user", userID).Warnf("coaching service unavailable: %s", err)
		return ""
	}
	return reply
}

func (c *Client) ask(ctx context.Context, userID, message string) (string, error) {
	cacheKey := []byte(userID + "::" + message)
	if cached, err := c.cache.Get(cacheKey); err == nil {
		log.Tracef("found coaching reply for %s in cache", userID)
		return string(cached), nil
	}

	body, err := json.Marshal(askRequest{UserID: userID, Message: message})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+askPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read coaching response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("coaching service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}

	var parsed askResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal coaching response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("coaching service: %s", parsed.Error)
	}

	if parsed.Reply != "" {
		if err := c.cache.Set(cacheKey, []byte(parsed.Reply), c.cacheTTL); err != nil {
			log.Debugf("coaching reply not cached: %s", err)
		}
	}
	return parsed.Reply, nil
}
