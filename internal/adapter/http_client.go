// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP client used by command-line tooling
// to talk to the clawdock admin API.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/clawdock/clawdock/models"
)

// ErrBadRequest is returned when the admin API rejects the request.
var ErrBadRequest = errors.New("admin api rejected request")

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAdminClient struct {
	client *resty.Client
}

func NewHTTPAdminClient(cfg HTTPClientConfig) AdminClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8888"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAdminClient{client: cli}
}

func (c *httpAdminClient) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	req := c.client.R().SetContext(ctx)
	if filter.User != "" {
		req.SetQueryParam("user", filter.User)
	}
	if filter.Type != "" {
		req.SetQueryParam("type", filter.Type)
	}
	if !filter.Start.IsZero() {
		req.SetQueryParam("start", filter.Start.Format(time.RFC3339))
	}
	if !filter.End.IsZero() {
		req.SetQueryParam("end", filter.End.Format(time.RFC3339))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(filter.Offset))
	}

	resp, err := req.Get("/api/admin/activities")
	if err != nil {
		return nil, fmt.Errorf("list activities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.Activity
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode activities response: %w", err)
	}

	return entries, nil
}

func (c *httpAdminClient) GetStats(ctx context.Context, days int) (models.ActivityStats, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("days", strconv.Itoa(days)).
		Get("/api/admin/stats")
	if err != nil {
		return models.ActivityStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivityStats{}, err
	}

	var stats models.ActivityStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.ActivityStats{}, fmt.Errorf("decode stats response: %w", err)
	}

	return stats, nil
}

func (c *httpAdminClient) RecordActivity(ctx context.Context, user, activityType, source string, details map[string]string) (models.Activity, error) {
	body := map[string]any{
		"user":     user,
		"activity": activityType,
		"source":   source,
		"details":  details,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/admin/activities")
	if err != nil {
		return models.Activity{}, fmt.Errorf("record activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	var entry models.Activity
	if err = json.Unmarshal(resp.Body(), &entry); err != nil {
		return models.Activity{}, fmt.Errorf("decode record activity response: %w", err)
	}

	return entry, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
