// CLASSIFICATION: COMMUNITY
// Filename: errcode_other.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

//go:build !unix

package static

import (
	"errors"
	"io/fs"
)

// ErrorCode returns the underlying error text of err.
func ErrorCode(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
