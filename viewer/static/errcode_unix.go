// CLASSIFICATION: COMMUNITY
// Filename: errcode_unix.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

//go:build unix

package static

import (
	"errors"

	"golang.org/x/sys/unix"
)

// ErrorCode returns the symbolic errno name carried by err, such as
// "EACCES", falling back to the error text.
func ErrorCode(err error) string {
	var errno unix.Errno
	if errors.As(err, &errno) {
		if name := unix.ErrnoName(errno); name != "" {
			return name
		}
		return errno.Error()
	}
	return err.Error()
}
