package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer smoke-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/assistant/message":
			_, _ = w.Write([]byte(`{"content":"Start with the smallest step.","focus_tips":["set a 5 minute timer"]}`))
		case "/api/assistant/history":
			_, _ = w.Write([]byte(`[{"content":"hi","type":"user","timestamp":"2026-08-30T10:00:00Z"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	_, stderr, err := runFA(t, binaryPath, home,
		"login",
		"--token", "smoke-token",
		"--base-url", server.URL,
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runFA(t, binaryPath, home, "send", "--json", "help me get started")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Start with the smallest step.")

	stdout, stderr, err = runFA(t, binaryPath, home, "history", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "hi")

	_, stderr, err = runFA(t, binaryPath, home, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = runFA(t, binaryPath, home, "send", "--json", "still there?")
	require.Error(t, err, "sending after logout must fail")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "fa-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fa")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build fa binary: %s", string(output))
	return binaryPath
}

func runFA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"FA_ASSISTANT_DEBOUNCE=1ms",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
