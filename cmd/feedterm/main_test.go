package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedterm/internal/feed"
	"feedterm/internal/store"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	return <-outC
}

// resetFlags restores the package-level flag values after a test so tests
// never depend on execution order.
func resetFlags(t *testing.T) {
	t.Helper()

	origConfigPath, origDumpPath, origDumpFeedURL, origFetchURL := configPath, dumpPath, dumpFeedURL, fetchURL
	t.Cleanup(func() {
		configPath, dumpPath, dumpFeedURL, fetchURL = origConfigPath, origDumpPath, origDumpFeedURL, origFetchURL
	})
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(nil, nil)
	})

	assert.Contains(t, out, "feedterm dev")
	assert.Contains(t, out, "terminal feed reader")
}

func TestDBCommand(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "feeds.json")
	db := &store.Database{
		Feeds: []store.Feed{
			{Title: "Example", URL: "https://example.com/rss", Items: []store.Item{
				{Title: "hello", Link: "https://example.com/1"},
			}},
		},
	}
	require.NoError(t, store.Save(path, db))

	dumpPath = path
	dumpFeedURL = ""
	out := captureStdout(t, func() {
		require.NoError(t, dbCmd.RunE(dbCmd, nil))
	})

	assert.Contains(t, out, "Feed: Example (https://example.com/rss)")
	assert.Contains(t, out, "- hello | https://example.com/1")
}

func TestDBCommandUnreadablePathIsFatal(t *testing.T) {
	resetFlags(t)
	dumpPath = filepath.Join(t.TempDir(), "missing.json")

	err := dbCmd.RunE(dbCmd, nil)
	assert.ErrorIs(t, err, store.ErrUnreadable)
}

func TestFetchCommandUnreachableHost(t *testing.T) {
	resetFlags(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	// Point the command's configured database into a fresh directory so a
	// stray write would actually show up there.
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "feeds.json")
	cfgFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[database]\npath = \""+dbPath+"\"\n"), 0o644))

	configPath = cfgFile
	fetchURL = url

	err := fetchCmd.RunE(fetchCmd, nil)
	assert.ErrorIs(t, err, feed.ErrNetwork)

	// A failed one-off fetch must not leave a database behind.
	assert.NoFileExists(t, dbPath)
}

func TestFetchCommandInvalidURL(t *testing.T) {
	resetFlags(t)
	fetchURL = "   "
	assert.Error(t, fetchCmd.RunE(fetchCmd, nil))
}
