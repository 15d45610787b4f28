// CLASSIFICATION: COMMUNITY
// Filename: resolver.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned by a strict Resolver when a request would leave
// the sandbox root.
var ErrOutsideRoot = errors.New("path escapes sandbox root")

// Resolver maps request paths onto files below a sandbox root.
//
// The default resolver only strips leading parent-directory segments after
// cleaning the path. It does not reject a cleaned path of ".." nor follow
// symlinks. Strict resolvers additionally verify that the joined path, and
// its symlink-resolved location when it exists, stay inside the root.
type Resolver struct {
	root     string
	realRoot string
	strict   bool
}

// NewResolver returns a resolver rooted at dir. The root is made absolute
// but need not exist yet.
func NewResolver(dir string, strict bool) (*Resolver, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve sandbox root %q: %w", dir, err)
	}
	resolved := root
	if p, err := filepath.EvalSymlinks(root); err == nil {
		resolved = p
	}
	return &Resolver{root: root, realRoot: resolved, strict: strict}, nil
}

// Root returns the absolute sandbox root.
func (r *Resolver) Root() string { return r.root }

// Strict reports whether containment is enforced.
func (r *Resolver) Strict() bool { return r.strict }

// Resolve returns the filesystem path for reqPath.
func (r *Resolver) Resolve(reqPath string) (string, error) {
	clean := Sanitize(reqPath)
	name := filepath.Join(r.root, filepath.FromSlash(clean))
	if strings.HasSuffix(clean, "/") && clean != "/" {
		// A trailing slash demands a directory, so "a.html/" fails to read.
		name += string(filepath.Separator)
	}
	if r.strict {
		if err := r.contain(name); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Sanitize cleans p and drops any run of leading "../" segments. A trailing
// slash survives cleaning.
func Sanitize(p string) string {
	trailing := len(p) > 1 && strings.HasSuffix(p, "/")
	p = path.Clean(p)
	if trailing && p != "/" && p != "." {
		p += "/"
	}
	for {
		switch {
		case strings.HasPrefix(p, "../"), strings.HasPrefix(p, `..\`):
			p = p[3:]
		default:
			return p
		}
	}
}

func (r *Resolver) contain(name string) error {
	if !within(r.root, name) {
		return ErrOutsideRoot
	}
	target, err := filepath.EvalSymlinks(name)
	if err != nil {
		// Missing or unreadable targets surface from the read instead.
		return nil
	}
	if !within(r.realRoot, target) {
		return ErrOutsideRoot
	}
	return nil
}

func within(root, name string) bool {
	rel, err := filepath.Rel(root, name)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
