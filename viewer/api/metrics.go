// CLASSIFICATION: COMMUNITY
// Filename: metrics.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
)

// MetricsSnapshot is a point-in-time copy of the server counters.
type MetricsSnapshot struct {
	RequestsTotal       int64   `json:"requests_total"`
	StartTimeSeconds    int64   `json:"start_time_seconds"`
	RateLimitPerSecond  float64 `json:"rate_limit_per_second"`
	RateBurstTokens     int     `json:"rate_burst_tokens"`
	RateTokensAvailable float64 `json:"rate_tokens_available"`
	RateAllowedTotal    int64   `json:"rate_allowed_total"`
	RateDeniedTotal     int64   `json:"rate_denied_total"`
	WatchEventsTotal    int64   `json:"watch_events_total"`
}

// MetricsSource supplies counters to the metrics endpoint.
type MetricsSource interface {
	Snapshot() MetricsSnapshot
}

// Metrics writes the current counters of src as JSON.
func Metrics(src MetricsSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			http.Error(w, "metrics unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(src.Snapshot())
	}
}
