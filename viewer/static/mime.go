// CLASSIFICATION: COMMUNITY
// Filename: mime.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

import (
	"path/filepath"
	"strings"
)

// DefaultContentType is served for extensions missing from the table.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".yaml": "text/yaml",
	".yml":  "text/yaml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// ContentType maps the extension of name to a MIME type.
func ContentType(name string) string {
	if ct, ok := contentTypes[extension(name)]; ok {
		return ct
	}
	return DefaultContentType
}

// extension returns the lowercased extension of name. A leading dot on the
// base name does not start an extension, so ".env" has none.
func extension(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(ext)
}
