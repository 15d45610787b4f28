// CLASSIFICATION: COMMUNITY
// Filename: config.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"errors"
	"fmt"
	"strings"

	"agentflow/viewer/static"
)

// Config holds server configuration.
type Config struct {
	Bind              string  `yaml:"bind" toml:"bind"`
	Port              int     `yaml:"port" toml:"port"`
	Root              string  `yaml:"root" toml:"root"`
	DefaultDocument   string  `yaml:"default_document" toml:"default_document"`
	StrictContainment bool    `yaml:"strict" toml:"strict"`
	LogFile           string  `yaml:"log_file" toml:"log_file"`
	AdminPrefix       string  `yaml:"admin_prefix" toml:"admin_prefix"`
	RateLimit         float64 `yaml:"rate_limit" toml:"rate_limit"`
	RateBurst         int     `yaml:"rate_burst" toml:"rate_burst"`
	Watch             bool    `yaml:"watch" toml:"watch"`
}

// DefaultConfig serves ./sandbox on 127.0.0.1:5050.
func DefaultConfig() Config {
	return Config{
		Bind:            "127.0.0.1",
		Port:            5050,
		Root:            "sandbox",
		DefaultDocument: static.DefaultDocument,
	}
}

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("sandbox root required")
	}
	if c.AdminPrefix != "" {
		if !strings.HasPrefix(c.AdminPrefix, "/") || strings.TrimRight(c.AdminPrefix, "/") == "" {
			return fmt.Errorf("admin prefix %q must be a non-root absolute path", c.AdminPrefix)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit %v must not be negative", c.RateLimit)
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("rate burst %d must not be negative", c.RateBurst)
	}
	return nil
}
