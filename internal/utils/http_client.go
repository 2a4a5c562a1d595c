// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8545", 30*time.Second)
//	resp, err := client.R().Get("/api/records")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL that sends and
// accepts JSON. A zero timeout leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// JSON starts a request bound to ctx whose response body is always decoded
// as JSON, whatever Content-Type the peer sends.
func (c *HTTPClient) JSON(ctx context.Context) *resty.Request {
	return c.R().
		SetContext(ctx).
		ForceContentType("application/json")
}
