// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package static serves files from a single sandbox directory.
package static

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DefaultDocument is served for requests to "/".
const DefaultDocument = "viewer-standalone.html"

// NotFoundBody is the body of every 404 response.
const NotFoundBody = "<h1>404 - File Not Found</h1>"

// Handler reads the requested file on every request and writes it back.
// The request method is ignored.
type Handler struct {
	resolver   *Resolver
	defaultDoc string
}

// NewHandler returns a handler resolving paths with res. An empty
// defaultDoc selects DefaultDocument.
func NewHandler(res *Resolver, defaultDoc string) *Handler {
	if defaultDoc == "" {
		defaultDoc = DefaultDocument
	}
	return &Handler{resolver: res, defaultDoc: "/" + strings.TrimLeft(defaultDoc, "/")}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := h.resolver.Resolve(h.lookupPath(r))
	if err != nil {
		if errors.Is(err, ErrOutsideRoot) {
			notFound(w)
			return
		}
		serverError(w, err)
		return
	}

	data, err := os.ReadFile(name)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		notFound(w)
		return
	default:
		serverError(w, err)
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", ContentType(name))
	hdr.Set("Access-Control-Allow-Origin", "*")
	hdr.Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// lookupPath returns the request target with the root substituted by the
// default document and the query removed.
func (h *Handler) lookupPath(r *http.Request) string {
	target := r.RequestURI
	if target == "" || r.URL.IsAbs() {
		target = r.URL.RequestURI()
	}
	if target == "/" {
		target = h.defaultDoc
	}
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}
	// Decoded NUL bytes cannot name a file; keep such targets raw.
	if p, err := url.PathUnescape(target); err == nil && !strings.ContainsRune(p, 0) {
		target = p
	}
	return target
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(NotFoundBody))
}

func serverError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Server Error: " + ErrorCode(err)))
}
