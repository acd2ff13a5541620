// Package api implements the REST client for the TeleTrack server.
// All persistence and protocol detail lives server-side; this client
// exposes typed calls over the bearer-token HTTP API and maps
// transport failures onto the package's sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the TeleTrack REST API.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
	token    string
}

// NewClient creates a Client from the given config. A nil observer
// defaults to NoopObserver.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Available checks whether the server is reachable.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

// do performs one API call with the configured timeout and bounded
// retries. Retries apply only to transport failures and 5xx responses;
// client errors and context cancellation end the loop immediately.
// out, when non-nil, receives the decoded envelope data.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	start := time.Now()
	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
	}

	var lastErr error
	var lastStatus int
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		status, err := c.doRequest(ctx, method, path, requestID, payload, out)
		lastStatus = status
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				RequestID: requestID,
				Method:    method, Path: path, Status: status,
				LatencyMs: time.Since(start).Milliseconds(), Success: true,
			})
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		// 4xx outcomes are definitive, and so are 2xx responses the
		// server rejected in the envelope; retrying cannot change them.
		if (status >= 200 && status < 300) || (status >= 400 && status < 500) {
			break
		}
	}

	errCode := errorCode(lastErr)
	c.observer.OnCallComplete(CallEvent{
		RequestID: requestID,
		Method:    method, Path: path, Status: lastStatus,
		LatencyMs: time.Since(start).Milliseconds(), Success: false, ErrorCode: errCode,
	})

	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(lastErr):
		return ErrUnavailable
	case lastStatus >= 200 && lastStatus < 300:
		return lastErr
	case lastStatus >= 400 && lastStatus < 500:
		return lastErr
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
}

func (c *Client) doRequest(ctx context.Context, method, path, requestID string, payload []byte, out any) (int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
			}
			env = envelope{}
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, ErrNotFound
	case resp.StatusCode >= 400:
		msg := env.errorMessage()
		if msg == "" {
			msg = string(respBody)
		}
		return resp.StatusCode, fmt.Errorf("server returned status %d: %s", resp.StatusCode, msg)
	}

	if !env.Success && env.errorMessage() != "" {
		return resp.StatusCode, fmt.Errorf("server rejected request: %s", env.errorMessage())
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}
	return resp.StatusCode, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
