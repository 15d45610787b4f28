// CLASSIFICATION: COMMUNITY
// Filename: config.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package config loads viewer server settings from YAML or TOML files.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	viewerhttp "agentflow/viewer/http"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads path over the default configuration. The format is chosen by
// extension: .yaml, .yml or .toml.
func Load(path string) (viewerhttp.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return viewerhttp.Config{}, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".toml":
		return ReadTOML(f)
	default:
		return viewerhttp.Config{}, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
}

// ReadYAML decodes a YAML document over the defaults. Unknown keys are
// rejected.
func ReadYAML(r io.Reader) (viewerhttp.Config, error) {
	c := viewerhttp.DefaultConfig()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return viewerhttp.Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	return c, nil
}

// ReadTOML decodes a TOML document over the defaults. Unknown keys are
// rejected.
func ReadTOML(r io.Reader) (viewerhttp.Config, error) {
	c := viewerhttp.DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return viewerhttp.Config{}, fmt.Errorf("decode toml config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return viewerhttp.Config{}, fmt.Errorf("decode toml config: unknown keys %s", strings.Join(keys, ", "))
	}
	return c, nil
}
