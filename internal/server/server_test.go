package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	gossh "golang.org/x/crypto/ssh"

	"github.com/lgbarn/chess-rules-go/internal/config"
	cerrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func testConfig(maxSessions int) *config.Config {
	return config.NewConfigBuilder().
		WithAddr("127.0.0.1:0").
		WithMaxSessions(maxSessions).
		WithIdleTimeout(0).
		Build()
}

// startServer serves cfg on a loopback port and returns the address and a
// channel that receives Serve's result.
func startServer(t *testing.T, srv *Server) (string, <-chan error) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- srv.Serve(l) }()
	t.Cleanup(func() { srv.Close() })
	return l.Addr().String(), done
}

func dial(t *testing.T, addr string, hostKey gossh.HostKeyCallback) *gossh.Client {
	t.Helper()
	if hostKey == nil {
		hostKey = gossh.InsecureIgnoreHostKey()
	}
	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            "tester",
		HostKeyCallback: hostKey,
		Timeout:         5 * time.Second,
	})
	if err != nil {
		t.Fatalf("ssh.Dial() error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// play runs one session with the given input and returns its output.
func play(t *testing.T, client *gossh.Client, input string) (string, error) {
	t.Helper()
	sess, err := client.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	defer sess.Close()

	var out bytes.Buffer
	sess.Stdin = strings.NewReader(input)
	sess.Stdout = &out
	if err := sess.Shell(); err != nil {
		t.Fatalf("Shell() error: %v", err)
	}
	err = sess.Wait()
	return out.String(), err
}

func TestServer_PlaysGame(t *testing.T) {
	log := &bytes.Buffer{}
	cfg := testConfig(4)
	cfg.SetLog(&lockedWriter{w: log})
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	addr, _ := startServer(t, srv)

	out, err := play(t, dial(t, addr, nil), "e2e4\ne7e5\nquit\n")
	if err != nil {
		t.Fatalf("session error: %v", err)
	}

	testutil.AssertContains(t, out, "Welcome, ")
	testutil.AssertContains(t, out, "4 . . . . P . . .")
	testutil.AssertContains(t, out, "Goodbye.")
	testutil.AssertNotContains(t, out, "\x1b[", "colour on a session without a terminal")
	testutil.AssertNotContains(t, out, "♙", "glyphs on a session without a terminal")

	name := regexp.MustCompile(`Welcome, ([a-z0-9-]+)\.`).FindStringSubmatch(out)
	if name == nil {
		t.Fatalf("no session name in greeting:\n%s", out)
	}
	waitFor(t, "session to end", func() bool { return len(srv.Active()) == 0 })
	testutil.AssertContains(t, log.String(), "["+name[1]+"] connected: tester@")
	testutil.AssertContains(t, log.String(), "["+name[1]+"] session ended after 2 plies")
}

func TestServer_IllegalMoveReported(t *testing.T) {
	srv, err := New(testConfig(0))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	addr, _ := startServer(t, srv)

	out, err := play(t, dial(t, addr, nil), "e2e5\n")
	if err != nil {
		t.Fatalf("session error: %v", err)
	}
	testutil.AssertContains(t, out, "error: ply 1, White, move e2e5: illegal move")
}

func TestServer_RefusesWhenFull(t *testing.T) {
	srv, err := New(testConfig(1))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	addr, _ := startServer(t, srv)
	client := dial(t, addr, nil)

	first, err := client.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	pr, pw := io.Pipe()
	first.Stdin = pr
	first.Stdout = io.Discard
	if err := first.Shell(); err != nil {
		t.Fatalf("Shell() error: %v", err)
	}
	waitFor(t, "first session", func() bool { return len(srv.Active()) == 1 })

	out, err := play(t, client, "e2e4\n")
	var exitErr *gossh.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitStatus() != 1 {
		t.Fatalf("second session error = %v, want exit status 1", err)
	}
	testutil.AssertContains(t, out, "server is full")

	pw.Close()
	if err := first.Wait(); err != nil {
		t.Errorf("first session error: %v", err)
	}
	waitFor(t, "slot to free", func() bool { return len(srv.Active()) == 0 })
}

func TestServer_Shutdown(t *testing.T) {
	srv, err := New(testConfig(0))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	addr, served := startServer(t, srv)
	client := dial(t, addr, nil)

	sess, err := client.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	pr, pw := io.Pipe()
	defer pw.Close()
	var out lockedBuffer
	sess.Stdin = pr
	sess.Stdout = &out
	if err := sess.Shell(); err != nil {
		t.Fatalf("Shell() error: %v", err)
	}
	waitFor(t, "session", func() bool { return len(srv.Active()) == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	srv.Shutdown(ctx)

	if err := sess.Wait(); err != nil {
		t.Errorf("session error after shutdown: %v", err)
	}
	testutil.AssertContains(t, out.String(), "Server shutting down.")

	select {
	case err := <-served:
		testutil.AssertErrorIs(t, err, ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after Shutdown")
	}
}

func TestServer_HostKeyFile(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "host_key")
	data := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	signer, err := gossh.NewSignerFromKey(key)
	if err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(0)
	cfg.Server.HostKeyFile = path
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	addr, _ := startServer(t, srv)

	out, err := play(t, dial(t, addr, gossh.FixedHostKey(signer.PublicKey())), "quit\n")
	if err != nil {
		t.Fatalf("session error: %v", err)
	}
	testutil.AssertContains(t, out, "Goodbye.")
}

func TestNew_Errors(t *testing.T) {
	t.Run("missing host key", func(t *testing.T) {
		cfg := testConfig(0)
		cfg.Server.HostKeyFile = filepath.Join(t.TempDir(), "absent")
		if _, err := New(cfg); err == nil {
			t.Error("New() error = nil, want error")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		if _, err := New(testConfig(-1)); !errors.Is(err, cerrors.ErrInvalidConfig) {
			t.Errorf("New() error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestTerminalReader(t *testing.T) {
	var sink bytes.Buffer
	rw := struct {
		io.Reader
		io.Writer
	}{strings.NewReader("e2e4\rmoves g1\r"), &sink}

	r := &terminalReader{t: newTerminal(rw)}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	testutil.AssertEqual(t, string(got), "e2e4\nmoves g1\n")
}
