package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/drift/internal/config"
	"github.com/tomz197/drift/internal/draw"
	"github.com/tomz197/drift/internal/loop"
	loopconfig "github.com/tomz197/drift/internal/loop/config"
	"github.com/tomz197/drift/internal/random"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger, err := config.NewLogger(os.Stderr, "drift-ssh")
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}

	game, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	// Cancelled on shutdown; every session shows a notice and disconnects.
	shutdownCtx, shutdown := context.WithCancel(context.Background())
	defer shutdown()
	h := &gameHandler{
		game:     game,
		seeds:    random.NewSeeder(game.Seed),
		logger:   logger,
		shutdown: shutdownCtx,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	shutdown()
	if !h.wait(loopconfig.ShutdownWait) {
		logger.Warn("sessions still open after shutdown wait")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	game     config.Game
	seeds    *random.Seeder // Process-wide, seeded once
	logger   *log.Logger
	shutdown context.Context
	sessions sync.WaitGroup
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		logger := h.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("New game session", "term", pty.Term, "cols", pty.Window.Width, "rows", pty.Window.Height)

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.shutdown, cancel)
		defer stop()

		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			Tuning:   h.game.Tuning,
			Keymap:   h.game.Keymap,
			Seed:     h.seeds.Next(),
			Logger:   logger,
			TermSize: size.getSize,
		})
		if err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// wait blocks until every session has ended or the timeout passes.
// Returns false on timeout.
func (h *gameHandler) wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu   sync.RWMutex
	cols int
	rows int
}

func newSizeTracker(cols, rows int) *sizeTracker {
	return &sizeTracker{cols: cols, rows: rows}
}

func (s *sizeTracker) update(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols = cols
	s.rows = rows
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols, s.rows, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
