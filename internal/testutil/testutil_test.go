package testutil

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name         string
		opts         []ConfigOption
		wantContains []string
	}{
		{
			name: "default",
			wantContains: []string{
				"base_url: http://127.0.0.1:1",
				"memory: false",
				"enabled: false",
			},
		},
		{
			name: "memory cache",
			opts: []ConfigOption{WithMemoryCache(true)},
			wantContains: []string{
				"memory: true",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			got := SetupTestConfig(t, tmpDir, "http://127.0.0.1:1", tt.opts...)

			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)
			content, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Contains(t, string(content), "file: "+CacheFile(tmpDir))
			for _, want := range tt.wantContains {
				assert.Contains(t, string(content), want)
			}
		})
	}
}

func TestNewWordnikServer(t *testing.T) {
	server := NewWordnikServer(t, "secret", map[string]string{
		"/words.json/randomWord": `{"word": "lucid"}`,
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "known path",
			path:       "/words.json/randomWord?api_key=secret",
			wantStatus: http.StatusOK,
			wantBody:   `{"word": "lucid"}`,
		},
		{
			name:       "wrong api key",
			path:       "/words.json/randomWord?api_key=other",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown path",
			path:       "/words.json/wordOfTheDay?api_key=secret",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
	assert.Equal(t, 3, server.Requests())
}
