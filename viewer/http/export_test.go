// CLASSIFICATION: COMMUNITY
// Filename: export_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import "os"

// AccessLog exposes the open access log file to external tests.
func AccessLog(s *Server) *os.File { return s.access }
