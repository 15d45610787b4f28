// CLASSIFICATION: COMMUNITY
// Filename: mime_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

import "testing"

func TestContentType(t *testing.T) {
	cases := map[string]string{
		"/srv/viewer-standalone.html": "text/html",
		"style.CSS":                   "text/css",
		"app.js":                      "application/javascript",
		"trace.json":                  "application/json",
		"flow.yaml":                   "text/yaml",
		"flow.yml":                    "text/yaml",
		"a.png":                       "image/png",
		"a.JPG":                       "image/jpeg",
		"a.gif":                       "image/gif",
		"a.svg":                       "image/svg+xml",
		"favicon.ico":                 "image/x-icon",
		"archive.tar.gz":              DefaultContentType,
		"photo.jpeg":                  DefaultContentType,
		"Makefile":                    DefaultContentType,
		".html":                       DefaultContentType,
		"dir.d/README":                DefaultContentType,
	}
	for name, want := range cases {
		if got := ContentType(name); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", name, got, want)
		}
	}
}
