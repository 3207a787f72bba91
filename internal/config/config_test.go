package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 5000,
		},
		Wordnik: WordnikConfig{
			BaseURL: "https://api.wordnik.com/v4",
			Timeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			File:    "cache.json",
			Memory:  true,
		},
		Refresh: RefreshConfig{
			Enabled:  true,
			Schedule: "5 0 * * *",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "local",
			Username: "user",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	templateDir := t.TempDir()
	indexTemplate := filepath.Join(templateDir, "index.html.go.tmpl")
	require.NoError(t, os.WriteFile(indexTemplate, []byte(`{{ .Word }} {{ join .Tags ", " }}`), 0644))
	brokenTemplate := filepath.Join(templateDir, "broken.html.go.tmpl")
	require.NoError(t, os.WriteFile(brokenTemplate, []byte(`{{ .Word `), 0644))

	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 8080
wordnik:
  base_url: http://localhost:9999/v4
  timeout: 3s
cache:
  backend: file
  file: custom/cache.json
  memory: false
refresh:
  schedule: "*/30 * * * *"
templates:
  index_template: ` + indexTemplate + `
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 8080
				cfg.Wordnik.BaseURL = "http://localhost:9999/v4"
				cfg.Wordnik.Timeout = 3 * time.Second
				cfg.Cache.File = "custom/cache.json"
				cfg.Cache.Memory = false
				cfg.Refresh.Schedule = "*/30 * * * *"
				cfg.Templates.IndexTemplate = indexTemplate
				return cfg
			},
		},
		{
			name: "explicit config file path with mysql backend",
			configContent: `cache:
  backend: mysql
database:
  host: db.example.com
  database: wordoftheday
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Cache.Backend = CacheBackendMySQL
				cfg.Database.Host = "db.example.com"
				cfg.Database.Database = "wordoftheday"
				return cfg
			},
		},
		{
			name:          "environment variables",
			configContent: "",
			env: map[string]string{
				"WORDNIK_API_KEY": "secret",
				"PORT":            "8081",
				"DB_PASSWORD":     "dbpass",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Wordnik.APIKey = "secret"
				cfg.Server.Port = 8081
				cfg.Database.Password = "dbpass"
				return cfg
			},
		},
		{
			name: "api key from the config file",
			configContent: `wordnik:
  api_key: from-file
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Wordnik.APIKey = "from-file"
				return cfg
			},
		},
		{
			name: "api key environment variable overrides the config file",
			configContent: `wordnik:
  api_key: from-file
`,
			env: map[string]string{
				"WORDNIK_API_KEY": "from-env",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Wordnik.APIKey = "from-env"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 8080
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown cache backend",
			configContent: `cache:
  backend: redis
`,
			wantErrorContains: []string{
				"invalid configuration",
				"backend",
			},
		},
		{
			name: "missing template file",
			configContent: `templates:
  error_template: /non/existent/error.html.go.tmpl
`,
			wantErrorContains: []string{
				"templates.error_template must be a readable HTML template that parses",
			},
		},
		{
			name: "refresh enabled without a schedule",
			configContent: `refresh:
  enabled: true
  schedule: ""
`,
			wantErrorContains: []string{
				"invalid configuration",
				"schedule",
			},
		},
		{
			name: "template that does not parse",
			configContent: `templates:
  index_template: ` + brokenTemplate + `
`,
			wantErrorContains: []string{
				"templates.index_template must be a readable HTML template that parses",
			},
		},
		{
			name: "template directory",
			configContent: `templates:
  index_template: ` + templateDir + `
`,
			wantErrorContains: []string{
				"templates.index_template must be a readable HTML template that parses",
			},
		},
		{
			name: "non-positive timeout",
			configContent: `wordnik:
  timeout: 0s
`,
			wantErrorContains: []string{
				"invalid configuration",
				"timeout",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"WORDNIK_API_KEY", "PORT", "DB_PASSWORD"} {
				t.Setenv(key, tt.env[key])
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "wordoftheday.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "templates.index_template", configKey("Config.templates.index_template"))
	assert.Equal(t, "server.port", configKey("server.port"))
}
