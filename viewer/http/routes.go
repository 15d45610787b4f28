// CLASSIFICATION: COMMUNITY
// Filename: routes.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"strings"

	"agentflow/viewer/api"
)

func (s *Server) initRoutes() {
	r := s.router
	r.Use(recoverMiddleware(s.log))
	if s.access != nil {
		r.Use(accessLogger(s.access, s.log))
	}
	r.Use(s.requestCounter)
	if s.limiter != nil {
		r.Use(s.rateLimitMiddleware)
	}

	if prefix := strings.TrimRight(s.cfg.AdminPrefix, "/"); prefix != "" {
		r.Get(prefix+"/status", api.Status(s.start, api.SiteInfo{
			Root:            s.Root(),
			DefaultDocument: s.cfg.DefaultDocument,
			Strict:          s.resolver.Strict(),
		}))
		r.Get(prefix+"/metrics", api.Metrics(s))
	}

	// Every other request, whatever its method, is a file lookup.
	r.Handle("/*", s.files)
	r.NotFound(s.files.ServeHTTP)
	r.MethodNotAllowed(s.files.ServeHTTP)
}
