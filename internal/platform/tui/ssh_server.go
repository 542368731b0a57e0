package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/turnbounce/internal/core"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH front end.
type SSHServerConfig struct {
	Address string // host:port; port 0 picks a free one

	// HostKeyPath defaults to ~/.turnbounce/host_key. A missing key is generated.
	HostKeyPath string

	DBPath     string
	Difficulty string // Preset every session starts with

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger

	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns the settings used by `turnbounce serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.turnbounce/scores.db",
		Difficulty:  "normal",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer gives every SSH connection its own menu/game session.
// All sessions share one runs database, so the scoreboard is server-wide.
type SSHServer struct {
	config    SSHServerConfig
	server    *ssh.Server
	store     *storage.Store
	logger    *log.Logger
	sessions  atomic.Int64
	listener  atomic.Pointer[net.Listener]
	closeOnce sync.Once
}

// NewSSHServer prepares the server. A database that cannot be opened is
// logged and sessions run without saving.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "turnbounce-ssh",
		})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("could not open runs database", "error", err)
	}

	// Middleware runs last to first: sessions are counted, then checked
	// for a terminal, then handed to Bubble Tea.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			activeterm.Middleware(),
			srv.trackSessions,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".turnbounce", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea program for one connection.
// activeterm has already rejected sessions without a PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: core.DefaultTickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, SessionOptions{
		Username:   sess.User(),
		Difficulty: s.config.Difficulty,
		Logger:     s.logger,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		user, remote := sess.User(), sess.RemoteAddr().String()
		s.logger.Info("session started", "user", user, "remote", remote, "active", s.sessions.Add(1))

		start := time.Now()
		next(sess)

		s.logger.Info("session ended", "user", user, "remote", remote,
			"duration", time.Since(start).Round(time.Second), "active", s.sessions.Add(-1))
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.sessions.Load()
}

// ListenAndServe serves until ctx is done, SIGINT or SIGTERM arrives, or
// the listener fails. A requested stop returns nil.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.closeStore()
		return fmt.Errorf("ssh: %w", err)
	}
	s.listener.Store(&ln)
	s.logger.Info("starting SSH server", "address", ln.Addr().String())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.server.Serve(ln); !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", "active", s.sessions.Load())
		err := s.Shutdown()
		// Serve may not have registered the listener with the server yet.
		ln.Close()
		return err
	})

	err = g.Wait()
	if err != nil {
		s.logger.Error("server stopped", "error", err)
	}
	return err
}

// Shutdown stops accepting connections, waits up to shutdownGrace for open
// sessions, then closes the runs database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	if errors.Is(err, context.DeadlineExceeded) {
		return s.server.Close()
	}
	return err
}

func (s *SSHServer) closeStore() {
	s.closeOnce.Do(func() {
		if s.store != nil {
			s.store.Close()
		}
	})
}

// Addr returns the bound address while listening, otherwise the configured one.
func (s *SSHServer) Addr() string {
	if ln := s.listener.Load(); ln != nil {
		return (*ln).Addr().String()
	}
	return s.config.Address
}
