package assets

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	indexTemplateName = "index.html.go.tmpl"
	errorTemplateName = "error.html.go.tmpl"
)

//go:embed templates/*.html.go.tmpl
var fallbackTemplates embed.FS

//go:embed static
var staticFiles embed.FS

// ErrorPage is the data of the error template.
type ErrorPage struct {
	Message string
}

// Static returns the files served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// the directory is embedded, so this cannot happen
		panic(err)
	}
	return sub
}

func ParseIndexTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, indexTemplateName)
}

func ParseErrorTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, errorTemplateName)
}

var funcMap = template.FuncMap{
	"join": strings.Join,
}

// ParseTemplateFile parses an override template with the functions available to every page template.
func ParseTemplateFile(templatePath string) (*template.Template, error) {
	tmpl, err := template.New(filepath.Base(templatePath)).
		Funcs(funcMap).
		ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("template.ParseFiles > %w", err)
	}
	return tmpl, nil
}

func parseTemplateWithFallback(templatePath string, fallbackName string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := ParseTemplateFile(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		ParseFS(fallbackTemplates, "templates/"+fallbackName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template %s: %w", fallbackName, err)
	}
	return tmpl, nil
}
