package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func setupCLIHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	// Keep the debounce out of the way so commands finish promptly.
	t.Setenv("FA_ASSISTANT_DEBOUNCE", "1ms")

	return home
}

func newAssistantStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func TestLoginThenSend(t *testing.T) {
	setupCLIHome(t)

	var gotAuth string
	server := newAssistantStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/assistant/message", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "help me start my taxes", payload["message"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Start with one envelope.","focus_tips":["Set a 10 minute timer"]}`))
	})

	output, err := executeCLI(t, "login", "--token", "secret-token", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, output, `Logged in as "default"`)

	output, err = executeCLI(t, "send", "--json", "help", "me", "start", "my", "taxes")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Contains(t, output, "Start with one envelope.")
	assert.Contains(t, output, "Set a 10 minute timer")
}

func TestSendWithoutLoginFails(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCLI(t, "send", "--json", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active session")
}

func TestHistory(t *testing.T) {
	setupCLIHome(t)

	var gotLimit string
	server := newAssistantStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/assistant/history", r.URL.Path)
		gotLimit = r.URL.Query().Get("limit")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","content":"hi","type":"user","timestamp":"2026-08-30T10:00:00Z"},
			{"id":"2","content":"Hello! What are we focusing on today?","type":"assistant","timestamp":"2026-08-30T10:00:05Z"}
		]`))
	})

	_, err := executeCLI(t, "login", "--token", "secret-token", "--base-url", server.URL)
	require.NoError(t, err)

	output, err := executeCLI(t, "history", "--json", "--limit", "2")
	require.NoError(t, err)

	assert.Equal(t, "2", gotLimit)
	assert.Contains(t, output, "What are we focusing on today?")
}

func TestVoiceSendsEncodedAudio(t *testing.T) {
	setupCLIHome(t)

	audio := []byte("fake-ogg-bytes")
	audioPath := filepath.Join(t.TempDir(), "note.ogg")
	require.NoError(t, os.WriteFile(audioPath, audio, 0o600))

	server := newAssistantStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/assistant/voice", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, base64.StdEncoding.EncodeToString(audio), payload["audio_data"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Got your voice note."}`))
	})

	_, err := executeCLI(t, "login", "--token", "secret-token", "--base-url", server.URL)
	require.NoError(t, err)

	output, err := executeCLI(t, "voice", "--json", audioPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Got your voice note.")
}

func TestLogoutForgetsSession(t *testing.T) {
	setupCLIHome(t)

	server := newAssistantStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"ok"}`))
	})

	_, err := executeCLI(t, "login", "--token", "secret-token", "--base-url", server.URL)
	require.NoError(t, err)

	output, err := executeCLI(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, output, `Logged out of "default"`)

	_, err = executeCLI(t, "send", "--json", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active session")
}

func TestProfileListAndUse(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCLI(t, "login", "--token", "token-a", "--profile", "work", "--base-url", "http://work.example.com")
	require.NoError(t, err)

	_, err = executeCLI(t, "login", "--token", "token-b", "--profile", "home", "--base-url", "http://home.example.com")
	require.NoError(t, err)

	output, err := executeCLI(t, "profile", "use", "home")
	require.NoError(t, err)
	assert.Contains(t, output, `Now using profile "home"`)

	output, err = executeCLI(t, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "* home")
	assert.Contains(t, output, "  work")
	assert.Contains(t, output, "http://work.example.com")
}

func TestProfileRemove(t *testing.T) {
	setupCLIHome(t)

	_, err := executeCLI(t, "login", "--token", "token-a", "--profile", "work")
	require.NoError(t, err)

	output, err := executeCLI(t, "profile", "remove", "work")
	require.NoError(t, err)
	assert.Contains(t, output, `Removed profile "work"`)

	output, err = executeCLI(t, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No profiles registered")
}

func TestUnauthorizedSendSurfacesSessionError(t *testing.T) {
	setupCLIHome(t)

	server := newAssistantStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := executeCLI(t, "login", "--token", "stale-token", "--base-url", server.URL)
	require.NoError(t, err)

	_, err = executeCLI(t, "send", "--json", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session rejected by server")
}

func TestVersionCommand(t *testing.T) {
	setupCLIHome(t)

	output, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "dev")
}
