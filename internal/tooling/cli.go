// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-10-19
// Author: Lukas Bower
//
// ─────────────────────────────────────────────────────────────
// AgentFlow · Viewer CLI
//
// Builds the cobra command behind `viewer-server`. Flags default to
// the fixed local setup (127.0.0.1:5050 serving ./sandbox); a YAML
// or TOML file given with --config is applied first and any flag
// set explicitly on the command line wins over it.
//
// Example:
//
//   cmd := tooling.NewRootCommand("v0.1.0", func(ctx context.Context, cfg viewerhttp.Config) error {
//           return serve(ctx, cfg)
//   })
//   cmd.ExecuteContext(ctx)
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"context"
	"fmt"

	"agentflow/internal/config"
	viewerhttp "agentflow/viewer/http"
	"github.com/spf13/cobra"
)

// RunFunc starts the server with the resolved configuration.
type RunFunc func(ctx context.Context, cfg viewerhttp.Config) error

// NewRootCommand returns the viewer-server command with its version
// sub-command.
func NewRootCommand(version string, run RunFunc) *cobra.Command {
	var (
		configPath string
		flagCfg    = viewerhttp.DefaultConfig()
	)

	rootCmd := &cobra.Command{
		Use:   "viewer-server",
		Short: "Serve the AgentFlow sandbox directory over HTTP",
		Long: `Serve the AgentFlow sandbox directory for the local artifact viewer.

Requests to "/" return the default document. Every other path is read
from the sandbox root; missing files answer 404.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := viewerhttp.DefaultConfig()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			overlay(cmd, &cfg, flagCfg)
			return run(cmd.Context(), cfg)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML or TOML configuration file")
	f.StringVar(&flagCfg.Bind, "bind", flagCfg.Bind, "bind address")
	f.IntVarP(&flagCfg.Port, "port", "p", flagCfg.Port, "listen port")
	f.StringVarP(&flagCfg.Root, "root", "r", flagCfg.Root, "sandbox directory to serve")
	f.StringVar(&flagCfg.DefaultDocument, "default-document", flagCfg.DefaultDocument, "document served for /")
	f.BoolVar(&flagCfg.StrictContainment, "strict", false, "reject paths that resolve outside the sandbox root")
	f.StringVar(&flagCfg.LogFile, "log-file", "", "append an access log to this file")
	f.StringVar(&flagCfg.AdminPrefix, "admin-prefix", "", "mount status and metrics endpoints under this path")
	f.Float64Var(&flagCfg.RateLimit, "rate-limit", 0, "requests per second, 0 disables limiting")
	f.IntVar(&flagCfg.RateBurst, "rate-burst", 0, "rate limit burst size")
	f.BoolVar(&flagCfg.Watch, "watch", false, "log changes below the sandbox root")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print viewer-server version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewer-server %s\n", version)
		},
	})
	return rootCmd
}

// overlay copies every explicitly set flag from src into dst.
func overlay(cmd *cobra.Command, dst *viewerhttp.Config, src viewerhttp.Config) {
	changed := cmd.Flags().Changed
	if changed("bind") {
		dst.Bind = src.Bind
	}
	if changed("port") {
		dst.Port = src.Port
	}
	if changed("root") {
		dst.Root = src.Root
	}
	if changed("default-document") {
		dst.DefaultDocument = src.DefaultDocument
	}
	if changed("strict") {
		dst.StrictContainment = src.StrictContainment
	}
	if changed("log-file") {
		dst.LogFile = src.LogFile
	}
	if changed("admin-prefix") {
		dst.AdminPrefix = src.AdminPrefix
	}
	if changed("rate-limit") {
		dst.RateLimit = src.RateLimit
	}
	if changed("rate-burst") {
		dst.RateBurst = src.RateBurst
	}
	if changed("watch") {
		dst.Watch = src.Watch
	}
}
