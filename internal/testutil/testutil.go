// Package testutil provides shared test helpers for config files and a fake Wordnik API.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional fields when creating a config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	memory bool
}

// WithMemoryCache toggles the in-process cache in front of the cache file. It is off by default.
func WithMemoryCache(enabled bool) ConfigOption {
	return func(cfg *testConfig) {
		cfg.memory = enabled
	}
}

// CacheFile returns the cache file path used by SetupTestConfig.
func CacheFile(tmpDir string) string {
	return filepath.Join(tmpDir, "cache", "cache.json")
}

// SetupTestConfig creates a config file that points the Wordnik client at wordnikURL
// and the file cache under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, wordnikURL string, opts ...ConfigOption) string {
	t.Helper()

	var cfg testConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`wordnik:
  base_url: %s
  timeout: 2s
cache:
  backend: file
  file: %s
  memory: %t
refresh:
  enabled: false
`,
		wordnikURL,
		CacheFile(tmpDir),
		cfg.memory,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WordnikServer is a fake Wordnik API serving fixed JSON bodies by path.
type WordnikServer struct {
	*httptest.Server
	requests atomic.Int32
}

// NewWordnikServer starts a WordnikServer that answers 200 with responses[path] when the
// api_key query parameter equals apiKey, and 404 otherwise. The server is closed with the test.
func NewWordnikServer(t *testing.T, apiKey string, responses map[string]string) *WordnikServer {
	t.Helper()

	server := &WordnikServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.requests.Add(1)
		body, ok := responses[r.URL.Path]
		if !ok || r.URL.Query().Get("api_key") != apiKey {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// Requests returns how many requests the server has received.
func (s *WordnikServer) Requests() int {
	return int(s.requests.Load())
}
