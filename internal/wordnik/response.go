// https://developer.wordnik.com/docs
package wordnik

import (
	"encoding/json"
	"fmt"
)

type WordOfTheDay struct {
	ID              int             `json:"id"`
	Word            string          `json:"word"`
	ContentProvider ContentProvider `json:"contentProvider"`
	Note            string          `json:"note"`
	PublishDate     string          `json:"publishDate"`
	PDD             string          `json:"pdd"`
	Definitions     []Definition    `json:"definitions"`
	Pronunciations  []Pronunciation `json:"pronunciations"`
	Examples        []Example       `json:"examples"`
}

type ContentProvider struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Definition struct {
	Text             string `json:"text"`
	TextRaw          string `json:"textRaw"`
	Definition       string `json:"definition"`
	PartOfSpeech     string `json:"partOfSpeech"`
	SourceDictionary string `json:"sourceDictionary"`
	Source           string `json:"source"`
	AttributionText  string `json:"attributionText"`
}

// Pronunciation keeps fields it does not model in Extra, so they survive into the cache.
type Pronunciation struct {
	ID              string         `json:"id"`
	Seq             int            `json:"seq"`
	Raw             string         `json:"raw"`
	RawType         string         `json:"rawType"`
	AttributionText string         `json:"attributionText"`
	AttributionURL  string         `json:"attributionUrl"`
	Extra           map[string]any `json:"-"`
}

var pronunciationFields = []string{"id", "seq", "raw", "rawType", "attributionText", "attributionUrl"}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	type pronunciation Pronunciation
	var known pronunciation
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	extra, err := UnknownFields(data, pronunciationFields)
	if err != nil {
		return err
	}
	*p = Pronunciation(known)
	p.Extra = extra
	return nil
}

// UnknownFields returns the members of the JSON object in data that are not named in known.
// It returns nil when there are none.
func UnknownFields(data []byte, known []string) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	for _, key := range known {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

type Example struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Year  int    `json:"year"`
}

type RandomWord struct {
	ID   int    `json:"id"`
	Word string `json:"word"`
}
