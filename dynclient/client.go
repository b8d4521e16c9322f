package dynclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/config"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	apiVersion = "v2.0"
	// lastModifiedDateTime filter values are rendered in this format.
	dateFormat = "2006-01-02T15:04:05.000Z"
)

// Client talks to the Dynamics 365 Business Central OData API. It
// owns bearer-token acquisition, retry of transient failures, and
// normalization of the envelope / error shapes into Results.
type Client struct {
	settings   config.Settings
	basePath   string
	httpClient *http.Client
	tokens     *TokenCache
	logger     *logrus.Logger
}

func NewClient(settings config.Settings, logger *logrus.Logger) *Client {
	return NewClientWithTokenCache(settings, logger, NewTokenCache())
}

func NewClientWithTokenCache(settings config.Settings, logger *logrus.Logger, tokens *TokenCache) *Client {
	return &Client{
		settings:   settings,
		basePath:   fmt.Sprintf("/%s/api/%s", settings.TenantDomain, apiVersion),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		logger:     logger,
	}
}

// BasePath is the tenant-scoped API prefix all entity paths hang off.
func (c *Client) BasePath() string {
	return c.basePath
}

type httpReply struct {
	status int
	reason string
	body   []byte
}

func (r *httpReply) success() bool {
	return r.status >= 200 && r.status < 300
}

// doWithRetry sends one request, retrying network errors and 5xx
// responses with randomized exponential backoff. When retries are
// exhausted on a 5xx the last reply is returned so the caller can
// still surface the structured API error.
func (c *Client) doWithRetry(ctx context.Context, method string, rawURL string, body []byte, contentType string, bearer string) (*httpReply, error) {
	var reply *httpReply

	operation := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		reply = &httpReply{
			status: resp.StatusCode,
			reason: http.StatusText(resp.StatusCode),
			body:   data,
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("transient http %d: %s", resp.StatusCode, reply.reason)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.settings.RetryCount)),
		ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if reply != nil {
			// exhausted on 5xx; normalize the last response
			return reply, nil
		}
		return nil, err
	}
	return reply, nil
}

// send attaches the cached bearer token (fetching it on first use)
// and dispatches an API request.
func (c *Client) send(ctx context.Context, method string, path string, content []byte) (*httpReply, error) {
	token, err := c.tokens.GetOrFetch(func() (string, error) {
		c.logger.Info("bearer token not present")
		return c.fetchBearerToken(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("authentication error: %s", err.Error())
	}

	contentType := ""
	if content != nil {
		contentType = "application/json"
	}
	return c.doWithRetry(ctx, method, c.settings.DynamicsBaseURL+path, content, contentType, token)
}

// decodeEnvelope parses the OData collection/error wrapper and maps
// it onto a Result per the status and structured error present.
func decodeEnvelope[T any](c *Client, reply *httpReply) result.Result[T] {
	var envelope models.Envelope[T]
	if err := json.Unmarshal(reply.body, &envelope); err != nil {
		message := "error deserializing response: " + err.Error()
		c.logger.Error(message)
		return result.Err[T](message)
	}

	if !reply.success() && envelope.Error == nil {
		return result.Err[T](reply.reason)
	}
	if envelope.Error != nil && strings.TrimSpace(envelope.Error.Message) != "" {
		message := reply.reason + ": " + envelope.Error.Message
		c.logger.Error(message)
		return result.Err[T](message)
	}
	return result.Ok(envelope.Value)
}

// getCollection fetches a collection endpoint; the body always comes
// wrapped in the envelope.
func getCollection[T any](ctx context.Context, c *Client, path string) result.Result[[]T] {
	reply, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return result.Err[[]T](err.Error())
	}
	return decodeEnvelope[[]T](c, reply)
}

// getSingle fetches a single-entity endpoint; success bodies are the
// entity itself, failure bodies still use the envelope.
func getSingle[T any](ctx context.Context, c *Client, path string) result.Result[T] {
	reply, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return result.Err[T](err.Error())
	}
	return decodeSingle[T](c, reply)
}

func postSingle[T any](ctx context.Context, c *Client, path string, content T) result.Result[T] {
	// nulls are omitted from the body via the models' omitempty tags
	body, err := json.Marshal(content)
	if err != nil {
		return result.Err[T]("error serializing request body: " + err.Error())
	}
	reply, sendErr := c.send(ctx, http.MethodPost, path, body)
	if sendErr != nil {
		return result.Err[T](sendErr.Error())
	}
	return decodeSingle[T](c, reply)
}

func decodeSingle[T any](c *Client, reply *httpReply) result.Result[T] {
	if !reply.success() {
		return decodeEnvelope[T](c, reply)
	}
	var value T
	if err := json.Unmarshal(reply.body, &value); err != nil {
		message := "error deserializing response: " + err.Error()
		c.logger.Error(message)
		return result.Err[T](message)
	}
	return result.Ok(value)
}
