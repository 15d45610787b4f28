// CLASSIFICATION: COMMUNITY
// Filename: viewer.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package viewer

import (
	"context"
	"net"
	"net/http"

	viewerhttp "agentflow/viewer/http"
)

// Server defines the methods the sandbox viewer exposes.
type Server interface {
	Listen() (net.Listener, error)
	Serve(context.Context, net.Listener) error
	Start(context.Context) error
	Router() http.Handler
	Root() string
	Close() error
}

// New returns a Server backed by the HTTP server implementation.
func New(cfg viewerhttp.Config, log viewerhttp.Logger) (Server, error) {
	srv, err := viewerhttp.New(cfg, log)
	if err != nil {
		return nil, err
	}
	return srv, nil
}
