package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatYAML}
)

func newTodayCommand() *cobra.Command {
	output := OutputFormatText
	command := &cobra.Command{
		Use:   "today",
		Short: "Resolve and print today's word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			resolver, closeResolver, err := newResolver(cfg)
			if err != nil {
				return fmt.Errorf("newResolver() > %w", err)
			}
			defer func() {
				_ = closeResolver(cmd.Context())
			}()

			record, err := resolver.Resolve(cmd.Context(), time.Now().UTC())
			if err != nil {
				return fmt.Errorf("resolver.Resolve > %w", err)
			}
			return writePage(cmd.OutOrStdout(), dailyword.NewPage(record), output)
		},
	}
	command.Flags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func writePage(w io.Writer, page dailyword.Page, format OutputFormat) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(page); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(page); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoder.Close > %w", err)
		}
		return nil
	default:
		return writeText(w, page)
	}
}

func writeText(w io.Writer, page dailyword.Page) error {
	heading := color.New(color.FgMagenta, color.Bold)
	muted := color.New(color.Faint)

	if _, err := muted.Fprintln(w, page.Date); err != nil {
		return fmt.Errorf("muted.Fprintln > %w", err)
	}
	if page.PronunciationDisplay != "" {
		if _, err := heading.Fprintf(w, "%s %s\n", page.Word, page.PronunciationDisplay); err != nil {
			return fmt.Errorf("heading.Fprintf > %w", err)
		}
	} else {
		if _, err := heading.Fprintln(w, page.Word); err != nil {
			return fmt.Errorf("heading.Fprintln > %w", err)
		}
	}
	for i, definition := range page.Definitions {
		if definition.PartOfSpeech != "" {
			if _, err := fmt.Fprintf(w, "%d: [%s] %s\n", i+1, definition.PartOfSpeech, definition.Text); err != nil {
				return fmt.Errorf("fmt.Fprintf > %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, definition.Text); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	if page.Example != "" {
		if _, err := color.New(color.FgGreen).Fprintf(w, "Example: %s\n", page.Example); err != nil {
			return fmt.Errorf("color.Fprintf > %w", err)
		}
	}
	if page.Note != "" {
		if _, err := fmt.Fprintf(w, "Note: %s\n", page.Note); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	if _, err := muted.Fprintf(w, "Source: %s\n", page.SourceLabel); err != nil {
		return fmt.Errorf("muted.Fprintf > %w", err)
	}
	return nil
}
