// Package client talks to the remote simulation execution service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/khushi2704rj-sephora/GameForge/internal/form"
	"github.com/khushi2704rj-sephora/GameForge/internal/result"
	"github.com/khushi2704rj-sephora/GameForge/internal/schema"
)

// ServiceError is a non-success response from the service, carrying the
// human-readable detail from its error payload.
type ServiceError struct {
	Status int
	Detail string
}

func (e *ServiceError) Error() string {
	return e.Detail
}

// Client is an HTTP client for the simulation service.
type Client struct {
	http *http.Client
	base string
}

// New builds a client for the given base URL.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		base: strings.TrimRight(base, "/"),
	}
}

// ListGames fetches the full catalog in display order.
func (c *Client) ListGames(ctx context.Context) ([]schema.GameInfo, error) {
	var games []schema.GameInfo
	if err := c.get(ctx, "/api/games", &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame fetches one game's descriptor.
func (c *Client) GetGame(ctx context.Context, id string) (*schema.GameInfo, error) {
	var game schema.GameInfo
	if err := c.get(ctx, "/api/games/"+id, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

type runRequest struct {
	GameID string             `json:"game_id"`
	Config form.Configuration `json:"config"`
}

// Run executes a simulation and returns its result. The full
// configuration, including untouched defaults, is always submitted.
func (c *Client) Run(ctx context.Context, id string, cfg form.Configuration) (*result.Result, error) {
	body, err := json.Marshal(runRequest{GameID: id, Config: cfg})
	if err != nil {
		return nil, err
	}
	url := c.base + "/api/simulate"
	logrus.Debugf(">> POST %s game=%s", url, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}

	var res result.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	logrus.Debugf("<< %s: %d rounds in %.1fms", id, len(res.Rounds), res.Metadata.ComputeTimeMs)
	return &res, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.base + path
	logrus.Debugf(">> GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError extracts the service's {detail} payload; a missing or
// unparseable body falls back to the transport status text.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
		logrus.Warnf("service error %d: %s", resp.StatusCode, payload.Detail)
		return &ServiceError{Status: resp.StatusCode, Detail: payload.Detail}
	}
	logrus.Warnf("service error %d with no detail", resp.StatusCode)
	return &ServiceError{Status: resp.StatusCode, Detail: "service error: " + resp.Status}
}
