package dailyword

// Page is everything the index template renders.
type Page struct {
	Date                 string           `json:"date" yaml:"date"`
	Word                 string           `json:"word" yaml:"word"`
	Pronunciations       []Pronunciation  `json:"pronunciations" yaml:"pronunciations"`
	PronunciationDisplay string           `json:"pronunciation_display,omitempty" yaml:"pronunciation_display,omitempty"`
	Definitions          []DefinitionView `json:"definitions" yaml:"definitions"`
	Example              string           `json:"example,omitempty" yaml:"example,omitempty"`
	Note                 string           `json:"note,omitempty" yaml:"note,omitempty"`
	Source               Source           `json:"source" yaml:"source"`
	SourceLabel          string           `json:"source_label" yaml:"source_label"`
}

type DefinitionView struct {
	Text         string `json:"text" yaml:"text"`
	PartOfSpeech string `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
}

func NewPage(record *WordRecord) Page {
	definitions := make([]DefinitionView, 0, len(record.Definitions))
	for _, d := range record.Definitions {
		definitions = append(definitions, DefinitionView{
			Text:         d.DisplayText(),
			PartOfSpeech: d.PartOfSpeech,
		})
	}

	return Page{
		Date:                 record.Date,
		Word:                 record.Word,
		Pronunciations:       record.Pronunciations,
		PronunciationDisplay: DisplayPronunciation(record.Pronunciations),
		Definitions:          definitions,
		Example:              record.Example,
		Note:                 record.Note,
		Source:               record.Source,
		SourceLabel:          record.Source.Label(),
	}
}

// DisplayPronunciation returns the first non-empty raw pronunciation.
func DisplayPronunciation(pronunciations []Pronunciation) string {
	for _, p := range pronunciations {
		if p.Raw != "" {
			return p.Raw
		}
	}
	return ""
}
