package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

func TestParseIndexTemplate(t *testing.T) {
	page := dailyword.Page{
		Date:                 "2024-01-01",
		Word:                 "petrichor",
		PronunciationDisplay: "/ˈpɛtrɪkɔː/",
		Definitions: []dailyword.DefinitionView{
			{Text: "smell of <rain>", PartOfSpeech: "noun"},
		},
		Example:     "The petrichor rose.",
		Note:        "Coined in 1964.",
		Source:      dailyword.SourcePrimary,
		SourceLabel: "Wordnik wordOfTheDay",
	}

	tests := []struct {
		name             string
		templatePath     string
		wantTemplateName string
		wantContains     []string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.html.go.tmpl")
				content := `Filesystem Template: {{ .Word }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(t),
			wantTemplateName: "custom.html.go.tmpl",
			wantContains:     []string{"Filesystem Template: petrichor"},
		},
		{
			name:             "uses embedded template when file doesn't exist",
			templatePath:     "/non/existent/index.html.go.tmpl",
			wantTemplateName: "index.html.go.tmpl",
			wantContains: []string{
				"<h1>petrichor</h1>",
				"/ˈpɛtrɪkɔː/",
				`<span class="pos">noun</span>smell of &lt;rain&gt;`,
				"The petrichor rose.",
				"Coined in 1964.",
				"Source: Wordnik wordOfTheDay",
				`<script src="/static/theme.js"></script>`,
			},
		},
		{
			name:             "uses embedded template when path is empty",
			templatePath:     "",
			wantTemplateName: "index.html.go.tmpl",
			wantContains:     []string{"<h1>petrichor</h1>"},
		},
		{
			name: "falls back when the filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "broken.html.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Word `), 0644))
				return templatePath
			}(t),
			wantTemplateName: "index.html.go.tmpl",
			wantContains:     []string{"<h1>petrichor</h1>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseIndexTemplate(tt.templatePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, page))
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestParseIndexTemplate_OptionalSections(t *testing.T) {
	tmpl, err := ParseIndexTemplate("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, dailyword.Page{
		Date:        "2024-01-01",
		Word:        "lucid",
		SourceLabel: "Wordnik randomWord (fallback)",
	}))

	assert.Contains(t, buf.String(), "<h1>lucid</h1>")
	assert.Contains(t, buf.String(), "Source: Wordnik randomWord (fallback)")
	assert.NotContains(t, buf.String(), "<h2>Definitions</h2>")
	assert.NotContains(t, buf.String(), "<h2>Example</h2>")
	assert.NotContains(t, buf.String(), "<h2>Note</h2>")
	assert.NotContains(t, buf.String(), `class="pronunciation"`)
}

func TestParseErrorTemplate(t *testing.T) {
	tmpl, err := ParseErrorTemplate("")
	require.NoError(t, err)
	assert.Equal(t, "error.html.go.tmpl", tmpl.Name())

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, ErrorPage{Message: "WORDNIK_API_KEY is not set in environment."}))
	assert.Contains(t, buf.String(), "WORDNIK_API_KEY is not set in environment.")
}

func TestStatic(t *testing.T) {
	contents, err := fs.ReadFile(Static(), "theme.js")
	require.NoError(t, err)
	assert.Contains(t, string(contents), "localStorage.setItem('theme', theme)")
}

func TestParseTemplateFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "template using join",
			content: `{{ join .Tags ", " }}`,
		},
		{
			name:    "unterminated action",
			content: `{{ .Word `,
			wantErr: true,
		},
		{
			name:    "unknown function",
			content: `{{ shout .Word }}`,
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("override-%d.html.go.tmpl", i))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			tmpl, err := ParseTemplateFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tmpl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Base(path), tmpl.Name())
		})
	}

	_, err := ParseTemplateFile(filepath.Join(dir, "missing.html.go.tmpl"))
	assert.Error(t, err)
}
