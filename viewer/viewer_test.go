// CLASSIFICATION: COMMUNITY
// Filename: viewer_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package viewer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	viewerhttp "agentflow/viewer/http"
)

func TestNewServesSandbox(t *testing.T) {
	cfg := viewerhttp.DefaultConfig()
	cfg.Root = t.TempDir()
	if err := os.WriteFile(filepath.Join(cfg.Root, "viewer-standalone.html"), []byte("ok"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status %d body %q", rec.Code, rec.Body.String())
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := viewerhttp.DefaultConfig()
	cfg.Port = -1
	if srv, err := New(cfg, nil); err == nil || srv != nil {
		t.Fatalf("expected error and nil server, got %v %v", srv, err)
	}
}
