// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-19
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"agentflow/viewer/api"
	"agentflow/viewer/static"
	"agentflow/viewer/watch"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrAddrInUse is returned by Listen when the configured port is taken.
var ErrAddrInUse = errors.New("address already in use")

// AddrInUseError reports the port Listen could not bind. It matches
// ErrAddrInUse with errors.Is.
type AddrInUseError struct {
	Port int
	Err  error
}

func (e *AddrInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use", e.Port)
}

func (e *AddrInUseError) Unwrap() error { return e.Err }

func (e *AddrInUseError) Is(target error) bool { return target == ErrAddrInUse }

// Server wraps the HTTP server and router.
type Server struct {
	cfg      Config
	log      Logger
	router   *chi.Mux
	files    *static.Handler
	resolver *static.Resolver
	start    time.Time
	limiter  *rate.Limiter
	access   *os.File
	closeLog sync.Once
	watcher  atomic.Pointer[watch.Watcher]

	requests atomic.Int64
	allowed  atomic.Int64
	denied   atomic.Int64
}

// New returns an initialized server. A nil log writes to the standard logger.
func New(cfg Config, logger Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	res, err := static.NewResolver(cfg.Root, cfg.StrictContainment)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		log:      logger,
		router:   chi.NewRouter(),
		files:    static.NewHandler(res, cfg.DefaultDocument),
		resolver: res,
		start:    time.Now(),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst == 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open access log: %w", err)
		}
		s.access = f
	}
	s.initRoutes()
	return s, nil
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Root returns the absolute sandbox root.
func (s *Server) Root() string {
	return s.resolver.Root()
}

// Addr returns the configured listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, strconv.Itoa(s.cfg.Port))
}

// Listen binds the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		if isAddrInUse(err) {
			return nil, &AddrInUseError{Port: s.cfg.Port, Err: err}
		}
		return nil, fmt.Errorf("listen %s: %w", s.Addr(), err)
	}
	return ln, nil
}

// Serve handles connections on ln until ctx is done. A server shut down
// through ctx returns nil. The caller still owns Close.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.router}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		ctxTo, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxTo); err != nil {
			s.log.Printf("shutdown: %v", err)
		}
		return nil
	})

	if s.cfg.Watch {
		w, err := watch.New(s.Root(), s.log)
		if err != nil {
			s.log.Printf("sandbox watch disabled: %v", err)
		} else {
			s.watcher.Store(w)
			g.Go(func() error { return w.Run(ctx) })
		}
	}

	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	return g.Wait()
}

// Close releases the access log. It is safe to call more than once.
func (s *Server) Close() error {
	var err error
	s.closeLog.Do(func() {
		if s.access != nil {
			err = s.access.Close()
		}
	})
	return err
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	s.log.Printf("viewer listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}

// Snapshot implements api.MetricsSource.
func (s *Server) Snapshot() api.MetricsSnapshot {
	m := api.MetricsSnapshot{
		RequestsTotal:    s.requests.Load(),
		StartTimeSeconds: s.start.Unix(),
		RateAllowedTotal: s.allowed.Load(),
		RateDeniedTotal:  s.denied.Load(),
	}
	if s.limiter != nil {
		m.RateLimitPerSecond = float64(s.limiter.Limit())
		m.RateBurstTokens = s.limiter.Burst()
		m.RateTokensAvailable = s.limiter.Tokens()
	}
	if w := s.watcher.Load(); w != nil {
		m.WatchEventsTotal = w.Events()
	}
	return m
}
