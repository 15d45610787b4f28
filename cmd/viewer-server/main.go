// CLASSIFICATION: COMMUNITY
// Filename: main.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"agentflow/internal/tooling"
	"agentflow/viewer"
	viewerhttp "agentflow/viewer/http"
	"github.com/fatih/color"
)

var version = "v0.1.0"

func main() {
	ctx, cancel := newSignalContext(context.Background())
	cmd := tooling.NewRootCommand(version, func(ctx context.Context, cfg viewerhttp.Config) error {
		return run(ctx, cfg, os.Stdout, log.Default())
	})
	err := cmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg viewerhttp.Config, out io.Writer, logger viewerhttp.Logger) error {
	srv, err := viewer.New(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()
	return serve(ctx, srv, out)
}

// serve prints the banner once srv is bound and the stop notice only after
// a clean shutdown.
func serve(ctx context.Context, srv viewer.Server, out io.Writer) error {
	ln, err := srv.Listen()
	if err != nil {
		return err
	}
	printBanner(out, srv.Root(), "http://"+ln.Addr().String())
	if err := srv.Serve(ctx, ln); err != nil {
		return err
	}
	fmt.Fprintln(out)
	color.New(color.FgYellow).Fprintln(out, "🛑 Server stopped.")
	return nil
}

func printBanner(w io.Writer, root, url string) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintln(w, "╔═══════════════════════════════════════════════════════════╗")
	title.Fprintln(w, "║  🚀 AgentFlow Viewer - Live Server                        ║")
	title.Fprintln(w, "╚═══════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  📂 Serving: %s\n", root)
	fmt.Fprintf(w, "  🌐 URL:     %s\n", url)
	fmt.Fprintln(w)
	color.New(color.FgGreen).Fprintf(w, "  ✨ Server is running! Open %s in your browser\n", url)
	fmt.Fprintln(w, "  ⛔ Press Ctrl+C to stop the server")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 61))
}

func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	var inUse *viewerhttp.AddrInUseError
	if errors.As(err, &inUse) {
		red.Fprintf(w, "\n❌ Port %d is already in use. Try a different port or stop the other server.\n\n", inUse.Port)
		return
	}
	red.Fprintf(w, "\n❌ Server error: %v\n\n", err)
}
