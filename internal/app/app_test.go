package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/ghactivity/internal/github"
)

// peer simulates the remote end: it consumes one request and replies with response.
func peer(response string, dials *int) github.DialFunc {
	return func(ctx context.Context) (net.Conn, error) {
		*dials++
		client, server := net.Pipe()
		go func() {
			defer server.Close()
			reader := bufio.NewReader(server)
			for {
				line, err := reader.ReadString('\n')
				if err != nil || line == "\r\n" {
					break
				}
			}
			_, _ = io.WriteString(server, response)
		}()
		return client, nil
	}
}

func testOptions(t *testing.T, response string, dials *int) (Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return Options{
		Username:   "octocat",
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Stdout:     &stdout,
		Stderr:     &stderr,
		Dial:       peer(response, dials),
	}, &stdout, &stderr
}

func TestRun_PrintsEvents(t *testing.T) {
	var dials int
	opts, stdout, _ := testOptions(t,
		"HTTP/1.1 200 OK\r\nX:1\r\n\r\n[{\"type\":\"T\",\"repo\":{\"name\":\"N\",\"url\":\"U\"}}]", &dials)

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := strings.TrimSuffix(stdout.String(), "\n"); got != "- T\n on N\n url U" {
		t.Fatalf("output = %q, want %q", got, "- T\n on N\n url U")
	}
	if dials != 1 {
		t.Fatalf("dials = %d, want 1", dials)
	}
}

func TestRun_NotFoundPrintsNothing(t *testing.T) {
	var dials int
	opts, stdout, _ := testOptions(t, "HTTP/1.1 404 Not Found\r\n\r\n", &dials)

	err := Run(context.Background(), opts)
	if !errors.Is(err, github.ErrNotFound) {
		t.Fatalf("Run error = %v, want ErrNotFound", err)
	}
	if err.Error() != "GitHub user not found" {
		t.Fatalf("Run error message = %q", err.Error())
	}
	if stdout.Len() != 0 {
		t.Fatalf("output = %q, want none", stdout.String())
	}
}

func TestRun_InvalidUsernameSkipsNetwork(t *testing.T) {
	var dials int
	opts, _, _ := testOptions(t, "HTTP/1.1 200 OK\r\n\r\n[]", &dials)
	opts.Username = "bad/name"

	if err := Run(context.Background(), opts); err == nil {
		t.Fatalf("Run returned nil error, want validation error")
	}
	if dials != 0 {
		t.Fatalf("dials = %d, want 0", dials)
	}
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	var dials int
	opts, stdout, stderr := testOptions(t, "HTTP/1.1 200 OK\r\n\r\n[]", &dials)
	opts.LogLevel = "debug"

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("output = %q, want none for empty array", stdout.String())
	}
	if !strings.Contains(stderr.String(), "fetching events") {
		t.Fatalf("stderr = %q, want debug log", stderr.String())
	}
}

func TestRun_BadConfigFails(t *testing.T) {
	var dials int
	opts, _, _ := testOptions(t, "", &dials)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("port = ["), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	opts.ConfigPath = path

	err := Run(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config error", err)
	}
	if dials != 0 {
		t.Fatalf("dials = %d, want 0", dials)
	}
}
