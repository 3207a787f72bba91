package dailyword

import (
	"context"
	"errors"

	"github.com/at-ishikawa/wordoftheday/internal/wordnik"
)

//go:generate mockgen -source=interface.go -destination=../mocks/dailyword/mock_dailyword.go -package=mock_dailyword

var (
	// ErrConfiguration means no Wordnik API key is configured.
	ErrConfiguration = errors.New("WORDNIK_API_KEY is not set in environment")
	// ErrUpstream means neither the word of the day nor a random word could be fetched.
	ErrUpstream = errors.New("could not fetch word from Wordnik")
)

// DictionaryAPI is the subset of the Wordnik API used to resolve a daily word.
type DictionaryAPI interface {
	HasAPIKey() bool
	WordOfTheDay(ctx context.Context, date string) (*wordnik.WordOfTheDay, error)
	Definitions(ctx context.Context, word string) ([]wordnik.Definition, error)
	Pronunciations(ctx context.Context, word string) ([]wordnik.Pronunciation, error)
	TopExample(ctx context.Context, word string) (*wordnik.Example, error)
	RandomWord(ctx context.Context) (*wordnik.RandomWord, error)
}

// Store holds at most one WordRecord. Load returns (nil, nil) when nothing is stored.
type Store interface {
	Load(ctx context.Context) (*WordRecord, error)
	Save(ctx context.Context, record *WordRecord) error
}
