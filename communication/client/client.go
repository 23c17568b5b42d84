package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cubepaint/communication"

	"github.com/rs/zerolog/log"
)

var ErrAPI = errors.New("api error")

// HTTPClient talks to the match server over its GET API. Transport failures
// and 5xx responses are retried; any other non-200 status fails at once.
type HTTPClient struct {
	serverURL  string
	token      string
	retries    int
	retryDelay time.Duration
	http       *http.Client
}

// NewHTTPClient initializes and returns a new HTTPClient.
func NewHTTPClient(serverURL, token string, retries int, retryDelay time.Duration) *HTTPClient {
	if retries < 1 {
		retries = 1
	}
	return &HTTPClient{
		serverURL:  serverURL,
		token:      token,
		retries:    retries,
		retryDelay: retryDelay,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Start(ctx context.Context, mode, delay int) (communication.StartResponse, error) {
	var res communication.StartResponse
	err := c.call(ctx, fmt.Sprintf("/api/start/%s/%d/%d", url.PathEscape(c.token), mode, delay), &res)
	return res, err
}

func (c *HTTPClient) Move(ctx context.Context, gameID int, front, back string) (communication.MoveResponse, error) {
	var res communication.MoveResponse
	err := c.call(ctx, fmt.Sprintf("/api/move/%s/%d/%s/%s", url.PathEscape(c.token), gameID, url.PathEscape(front), url.PathEscape(back)), &res)
	return res, err
}

func (c *HTTPClient) call(ctx context.Context, path string, out any) error {
	u := c.serverURL + path
	for i := 0; i < c.retries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		log.Info().Msg(u)
		body, status, err := c.get(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().Err(err).Msgf("request %d of %d failed", i+1, c.retries)
			continue
		}
		if status == http.StatusOK {
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		}
		if status >= 500 && status < 600 {
			log.Warn().Msgf("request %d of %d got status %d", i+1, c.retries, status)
			continue
		}
		return fmt.Errorf("%w: status %d", ErrAPI, status)
	}
	return fmt.Errorf("%w: no success after %d attempts", ErrAPI, c.retries)
}

func (c *HTTPClient) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
