package dynclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"bitbucket.org/mmdatafocus/dynamics_connector/models"
)

const tokenScope = "https://api.businesscentral.dynamics.com/.default"

// TokenCache is a single bearer-token slot, written once per process.
// GetOrFetch holds the lock across the fetch so a concurrent first
// burst performs exactly one token request.
type TokenCache struct {
	mu    sync.Mutex
	token string
}

func NewTokenCache() *TokenCache {
	return &TokenCache{}
}

func (t *TokenCache) Get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token
}

func (t *TokenCache) Set(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
}

// GetOrFetch returns the cached token, fetching it first when the
// slot is empty. The token never expires within a process lifetime.
func (t *TokenCache) GetOrFetch(fetch func() (string, error)) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.token != "" {
		return t.token, nil
	}
	token, err := fetch()
	if err != nil {
		return "", err
	}
	t.token = token
	return token, nil
}

func (c *Client) fetchBearerToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.settings.ClientID)
	form.Set("client_secret", c.settings.ClientSecret)
	form.Set("scope", tokenScope)

	reply, err := c.doWithRetry(ctx, http.MethodPost, c.settings.TokenURL,
		[]byte(form.Encode()), "application/x-www-form-urlencoded", "")
	if err != nil {
		c.logger.Error("authentication attempt failed: " + err.Error())
		return "", err
	}
	if !reply.success() {
		c.logger.Error("authentication error: " + reply.reason)
		return "", errors.New(reply.reason)
	}

	var token models.TokenResponse
	if err := json.Unmarshal(reply.body, &token); err != nil {
		message := "errors occurred deserializing auth token response: " + err.Error()
		c.logger.Error(message)
		return "", errors.New(message)
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return "", errors.New("got empty token")
	}

	c.logger.Info("authentication succeeded")
	return token.AccessToken, nil
}
