package dailyword

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/at-ishikawa/wordoftheday/internal/wordnik"
)

const DateLayout = time.DateOnly

type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Label is the attribution shown on the page.
func (s Source) Label() string {
	switch s {
	case SourcePrimary:
		return "Wordnik wordOfTheDay"
	case SourceFallback:
		return "Wordnik randomWord (fallback)"
	default:
		return string(s)
	}
}

// WordRecord is the resolved word for a single UTC calendar day.
type WordRecord struct {
	Date           string          `json:"date" yaml:"date"`
	Word           string          `json:"word" yaml:"word"`
	Definitions    []Definition    `json:"definitions" yaml:"definitions"`
	Pronunciations []Pronunciation `json:"pronunciations" yaml:"pronunciations"`
	Example        string          `json:"example,omitempty" yaml:"example,omitempty"`
	Note           string          `json:"note,omitempty" yaml:"note,omitempty"`
	Source         Source          `json:"source" yaml:"source"`
}

// IsValidFor reports whether the record can be reused on date.
func (r *WordRecord) IsValidFor(date string) bool {
	return r != nil && r.Date == date && r.Word != ""
}

type Definition struct {
	Text             string `json:"text,omitempty" yaml:"text,omitempty"`
	TextRaw          string `json:"textRaw,omitempty" yaml:"text_raw,omitempty"`
	Definition       string `json:"definition,omitempty" yaml:"definition,omitempty"`
	PartOfSpeech     string `json:"partOfSpeech,omitempty" yaml:"part_of_speech,omitempty"`
	SourceDictionary string `json:"sourceDictionary,omitempty" yaml:"source_dictionary,omitempty"`
	AttributionText  string `json:"attributionText,omitempty" yaml:"attribution_text,omitempty"`
}

func (d Definition) DisplayText() string {
	if d.Text != "" {
		return d.Text
	}
	if d.TextRaw != "" {
		return d.TextRaw
	}
	return d.Definition
}

// Pronunciation carries the upstream fields it does not model in Extra.
// They are written next to the known fields in both JSON and YAML.
type Pronunciation struct {
	Raw             string         `json:"raw,omitempty" yaml:"raw,omitempty"`
	RawType         string         `json:"rawType,omitempty" yaml:"raw_type,omitempty"`
	Seq             int            `json:"seq,omitempty" yaml:"seq,omitempty"`
	ID              string         `json:"id,omitempty" yaml:"id,omitempty"`
	AttributionText string         `json:"attributionText,omitempty" yaml:"attribution_text,omitempty"`
	AttributionURL  string         `json:"attributionUrl,omitempty" yaml:"attribution_url,omitempty"`
	Extra           map[string]any `json:"-" yaml:",inline"`
}

// pronunciationKeys holds the JSON and YAML names of the modeled fields.
// An extra field with one of these names is dropped, since the YAML encoder rejects inline keys that collide.
var pronunciationKeys = []string{
	"raw", "rawType", "raw_type", "seq", "id",
	"attributionText", "attribution_text", "attributionUrl", "attribution_url",
}

func (p Pronunciation) MarshalJSON() ([]byte, error) {
	type pronunciation Pronunciation
	known, err := json.Marshal(pronunciation(p))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal > %w", err)
	}
	if len(p.Extra) == 0 {
		return known, nil
	}

	fields := make(map[string]any, len(p.Extra))
	for key, value := range p.Extra {
		fields[key] = value
	}
	var knownFields map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownFields); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	for key, value := range knownFields {
		fields[key] = value
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(fields); err != nil {
		return nil, fmt.Errorf("encoder.Encode > %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	type pronunciation Pronunciation
	var known pronunciation
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	extra, err := wordnik.UnknownFields(data, pronunciationKeys)
	if err != nil {
		return fmt.Errorf("wordnik.UnknownFields > %w", err)
	}
	*p = Pronunciation(known)
	p.Extra = extra
	return nil
}

func extraPronunciationFields(extra map[string]any) map[string]any {
	var result map[string]any
	for key, value := range extra {
		if slices.Contains(pronunciationKeys, key) {
			continue
		}
		if result == nil {
			result = make(map[string]any, len(extra))
		}
		result[key] = value
	}
	return result
}

func fromWordnikDefinitions(definitions []wordnik.Definition) []Definition {
	result := make([]Definition, 0, len(definitions))
	for _, d := range definitions {
		sourceDictionary := d.SourceDictionary
		if sourceDictionary == "" {
			sourceDictionary = d.Source
		}
		result = append(result, Definition{
			Text:             d.Text,
			TextRaw:          d.TextRaw,
			Definition:       d.Definition,
			PartOfSpeech:     d.PartOfSpeech,
			SourceDictionary: sourceDictionary,
			AttributionText:  d.AttributionText,
		})
	}
	return result
}

func fromWordnikPronunciations(pronunciations []wordnik.Pronunciation) []Pronunciation {
	result := make([]Pronunciation, 0, len(pronunciations))
	for _, p := range pronunciations {
		result = append(result, Pronunciation{
			Raw:             p.Raw,
			RawType:         p.RawType,
			Seq:             p.Seq,
			ID:              p.ID,
			AttributionText: p.AttributionText,
			AttributionURL:  p.AttributionURL,
			Extra:           extraPronunciationFields(p.Extra),
		})
	}
	return result
}
