// Package server offers games over SSH. Every connection gets its own
// session and board; two players share one connection.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"sort"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// ErrServerClosed is returned by Serve after Shutdown.
var ErrServerClosed = ssh.ErrServerClosed

// Server accepts SSH connections and runs a game on each.
type Server struct {
	cfg *config.Config
	srv *ssh.Server

	mu      sync.Mutex
	active  map[string]context.CancelFunc
	closing bool
}

// New creates a server from cfg. The host key is read from
// cfg.Server.HostKeyFile when set; otherwise one is generated per run.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		active: make(map[string]context.CancelFunc),
	}
	s.srv = &ssh.Server{
		Addr:        cfg.Server.Addr,
		IdleTimeout: cfg.Server.IdleTimeout,
		Handler:     s.handle,
	}

	if cfg.Server.HostKeyFile != "" {
		if err := s.srv.SetOption(ssh.HostKeyFile(cfg.Server.HostKeyFile)); err != nil {
			return nil, errors.Wrapf(err, "loading host key %s", cfg.Server.HostKeyFile)
		}
	}
	return s, nil
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	s.cfg.Logf("listening on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	s.cfg.Logf("listening on %s", l.Addr())
	return s.srv.Serve(l)
}

// Active returns the names of running sessions in sorted order.
func (s *Server) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.active))
	for name := range s.active {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shutdown stops accepting connections, ends running games and waits for
// connections to close. When ctx expires first the remaining connections
// are dropped.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	for _, cancel := range s.active {
		cancel()
	}
	s.mu.Unlock()

	s.cfg.Logf("shutting down")
	err := s.srv.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return s.srv.Close()
	}
	return err
}

// Close drops every connection immediately.
func (s *Server) Close() error {
	return s.srv.Close()
}

// register claims a session slot under a fresh name. It fails when the
// server is full or closing.
func (s *Server) register(cancel context.CancelFunc) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return "", false
	}
	if limit := s.cfg.Server.MaxSessions; limit > 0 && len(s.active) >= limit {
		return "", false
	}

	name := petname.Generate(2, "-")
	for i := 2; s.active[name] != nil; i++ {
		name = fmt.Sprintf("%s-%d", petname.Generate(2, "-"), i)
	}
	s.active[name] = cancel
	return name, true
}

func (s *Server) isClosing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closing
}

func (s *Server) unregister(name string) {
	s.mu.Lock()
	delete(s.active, name)
	s.mu.Unlock()
}

func (s *Server) handle(sess ssh.Session) {
	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	name, ok := s.register(cancel)
	if !ok {
		io.WriteString(sess, "The server is full, try again later.\n")
		s.cfg.Logf("refused %s@%s: no free slot", sess.User(), sess.RemoteAddr())
		sess.Exit(1)
		return
	}
	defer s.unregister(name)
	s.cfg.Logf("[%s] connected: %s@%s", name, sess.User(), sess.RemoteAddr())

	cfg := *s.cfg
	var in io.Reader = sess
	var out io.Writer = sess
	if _, _, isPty := sess.Pty(); isPty {
		t := newTerminal(sess)
		in, out = &terminalReader{t: t}, t
	} else {
		cfg.Display.Colour = false
		cfg.Display.Unicode = false
	}

	err := session.New(name, &cfg, in, out).Run(ctx)
	switch {
	case err == nil:
		sess.Exit(0)
	case ctx.Err() != nil:
		if s.isClosing() {
			io.WriteString(out, "\nServer shutting down.\n")
		}
		sess.Exit(0)
	default:
		s.cfg.Logf("[%s] %v", name, err)
		sess.Exit(1)
	}
}

// newTerminal wraps rw with echo and line editing. The session prints its
// own prompt.
func newTerminal(rw io.ReadWriter) *term.Terminal {
	return term.NewTerminal(rw, "")
}

// terminalReader turns a line-editing terminal into a stream of
// newline-terminated lines.
type terminalReader struct {
	t   *term.Terminal
	buf []byte
}

func (r *terminalReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		line, err := r.t.ReadLine()
		if err != nil {
			return 0, err
		}
		r.buf = []byte(line + "\n")
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
