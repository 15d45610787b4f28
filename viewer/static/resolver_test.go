// CLASSIFICATION: COMMUNITY
// Filename: resolver_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"/index.html":          "/index.html",
		"/../../etc/passwd":    "/etc/passwd",
		"../../etc/passwd":     "etc/passwd",
		"a/../../b":            "b",
		`..\..\windows`:        "windows",
		"/a/./b/../c.json":     "/a/c.json",
		"":                     ".",
		"..":                   "..",
		"a/../../..":           "..",
		"/assets/../../x.html": "/x.html",
		"/a.html/":             "/a.html/",
		"/data//":              "/data/",
		"../":                  "",
		"/../":                 "/",
		"a/../":                ".",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveStaysInRoot(t *testing.T) {
	root := t.TempDir()
	res, err := NewResolver(root, false)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	got, err := res.Resolve("/../../etc/passwd")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join(root, "etc", "passwd"); got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveRelaxedKeepsBareParent(t *testing.T) {
	root := t.TempDir()
	res, err := NewResolver(root, false)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	got, err := res.Resolve("a/../../..")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Dir(root); got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveStrictRejectsParent(t *testing.T) {
	res, err := NewResolver(t.TempDir(), true)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	for _, p := range []string{"..", "a/../../.."} {
		if _, err := res.Resolve(p); !errors.Is(err, ErrOutsideRoot) {
			t.Fatalf("resolve %q: expected ErrOutsideRoot, got %v", p, err)
		}
	}
	if _, err := res.Resolve("/../../etc/passwd"); err != nil {
		t.Fatalf("stripped traversal should resolve: %v", err)
	}
}

func TestResolveStrictRejectsSymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("s"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlink: %v", err)
	}

	relaxed, _ := NewResolver(root, false)
	if _, err := relaxed.Resolve("/link/secret.txt"); err != nil {
		t.Fatalf("relaxed resolve: %v", err)
	}

	strict, _ := NewResolver(root, true)
	if _, err := strict.Resolve("/link/secret.txt"); !errors.Is(err, ErrOutsideRoot) {
		t.Fatalf("expected ErrOutsideRoot, got %v", err)
	}
	if _, err := strict.Resolve("/missing.json"); err != nil {
		t.Fatalf("missing files are left to the read: %v", err)
	}
}

func TestResolveKeepsTrailingSlash(t *testing.T) {
	root := t.TempDir()
	res, err := NewResolver(root, false)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	got, err := res.Resolve("/a.html/")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join(root, "a.html") + string(filepath.Separator); got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}
