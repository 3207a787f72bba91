package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
	"github.com/at-ishikawa/wordoftheday/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantDebug: true,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			assert.Equal(t, tt.wantDebug, slog.Default().Enabled(t.Context(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "wordoftheday", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "today", "migrate"}, names)
}

func TestTodayCommand(t *testing.T) {
	wordnikServer := testutil.NewWordnikServer(t, "secret", map[string]string{
		"/words.json/wordOfTheDay": `{
			"word": "petrichor",
			"note": "Coined in 1964.",
			"definitions": [{"text": "smell of rain", "partOfSpeech": "noun"}],
			"pronunciations": [{"raw": "/ˈpɛtrɪkɔː/"}],
			"examples": [{"text": "The petrichor rose."}, {"text": "Later."}]
		}`,
	})

	t.Setenv("WORDNIK_API_KEY", "secret")
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tmpDir, wordnikServer.URL)

	runToday := func() dailyword.Page {
		var out bytes.Buffer
		cmd := newRootCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--config", configPath, "today", "--output", "json"})
		require.NoError(t, cmd.Execute())

		var page dailyword.Page
		require.NoError(t, json.Unmarshal(out.Bytes(), &page))
		return page
	}

	page := runToday()
	assert.Equal(t, "petrichor", page.Word)
	assert.Equal(t, "/ˈpɛtrɪkɔː/", page.PronunciationDisplay)
	assert.Equal(t, []dailyword.DefinitionView{{Text: "smell of rain", PartOfSpeech: "noun"}}, page.Definitions)
	assert.Equal(t, "The petrichor rose.", page.Example)
	assert.Equal(t, dailyword.SourcePrimary, page.Source)
	assert.Equal(t, 1, wordnikServer.Requests())
	assert.FileExists(t, testutil.CacheFile(tmpDir))

	// the second run is served from the cache file
	page = runToday()
	assert.Equal(t, "petrichor", page.Word)
	assert.Equal(t, 1, wordnikServer.Requests())
}

func TestTodayCommand_Fallback(t *testing.T) {
	wordnikServer := testutil.NewWordnikServer(t, "secret", map[string]string{
		"/words.json/randomWord":          `{"id": 1, "word": "lucid"}`,
		"/word.json/lucid/definitions":    `[{"textRaw": "clear", "partOfSpeech": "adjective"}]`,
		"/word.json/lucid/pronunciations": `[]`,
		"/word.json/lucid/topExample":     `{"text": "A lucid moment."}`,
	})

	t.Setenv("WORDNIK_API_KEY", "secret")
	configPath := testutil.SetupTestConfig(t, t.TempDir(), wordnikServer.URL, testutil.WithMemoryCache(true))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath, "today", "--output", "json"})
	require.NoError(t, cmd.Execute())

	var page dailyword.Page
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	assert.Equal(t, "lucid", page.Word)
	assert.Equal(t, dailyword.SourceFallback, page.Source)
	assert.Equal(t, "Wordnik randomWord (fallback)", page.SourceLabel)
	assert.Equal(t, "A lucid moment.", page.Example)
}

func TestTodayCommand_MissingAPIKey(t *testing.T) {
	t.Setenv("WORDNIK_API_KEY", "")
	configPath := testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "today"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, dailyword.ErrConfiguration)
}
