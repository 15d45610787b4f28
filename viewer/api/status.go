// CLASSIFICATION: COMMUNITY
// Filename: status.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// StatusResponse describes the running viewer server.
type StatusResponse struct {
	Uptime          string `json:"uptime"`
	Status          string `json:"status"`
	Root            string `json:"root"`
	DefaultDocument string `json:"default_document"`
	Strict          bool   `json:"strict"`
}

// SiteInfo is the static part of a status response.
type SiteInfo struct {
	Root            string
	DefaultDocument string
	Strict          bool
}

// Status writes the server status as JSON.
func Status(start time.Time, info SiteInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			Uptime:          time.Since(start).Round(time.Second).String(),
			Status:          "ok",
			Root:            info.Root,
			DefaultDocument: info.DefaultDocument,
			Strict:          info.Strict,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
