package dailyword

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/wordoftheday/internal/wordnik"
)

type Resolver struct {
	api   DictionaryAPI
	store Store
}

func NewResolver(api DictionaryAPI, store Store) *Resolver {
	return &Resolver{
		api:   api,
		store: store,
	}
}

type fetchStatus int

const (
	fetchFound fetchStatus = iota
	fetchNotFound
	fetchFailed
)

type primaryResult struct {
	status fetchStatus
	wotd   *wordnik.WordOfTheDay
	err    error
}

// Resolve returns the word for the UTC calendar day of today.
// A cached record for that day is returned as is without calling Wordnik.
// Concurrent calls on a cold cache may both fetch and both save; the last save wins.
func (r *Resolver) Resolve(ctx context.Context, today time.Time) (*WordRecord, error) {
	date := today.UTC().Format(DateLayout)

	cached, err := r.store.Load(ctx)
	if err != nil {
		slog.Default().Warn("failed to load the cached word",
			slog.String("date", date),
			slog.Any("error", err),
		)
	}
	if cached.IsValidFor(date) {
		slog.Default().Debug("use the cached word",
			slog.String("date", date),
			slog.String("word", cached.Word),
		)
		return cached, nil
	}

	if !r.api.HasAPIKey() {
		return nil, ErrConfiguration
	}

	var record *WordRecord
	primary := r.fetchWordOfTheDay(ctx, date)
	switch primary.status {
	case fetchFound:
		record = r.fromWordOfTheDay(ctx, date, primary.wotd)
	case fetchNotFound:
		slog.Default().Info("no word of the day, fall back to a random word",
			slog.String("date", date),
		)
	case fetchFailed:
		slog.Default().Warn("failed to fetch the word of the day, fall back to a random word",
			slog.String("date", date),
			slog.Any("error", primary.err),
		)
	}

	if record == nil {
		record, err = r.fromRandomWord(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("r.fromRandomWord > %w", err)
		}
	}

	if err := r.store.Save(ctx, record); err != nil {
		slog.Default().Warn("failed to save the word to the cache",
			slog.String("date", date),
			slog.String("word", record.Word),
			slog.Any("error", err),
		)
	}
	return record, nil
}

func (r *Resolver) fetchWordOfTheDay(ctx context.Context, date string) primaryResult {
	wotd, err := r.api.WordOfTheDay(ctx, date)
	if err != nil {
		if wordnik.IsNotFound(err) {
			return primaryResult{status: fetchNotFound, err: err}
		}
		return primaryResult{status: fetchFailed, err: err}
	}
	if wotd == nil || wotd.Word == "" {
		return primaryResult{status: fetchNotFound}
	}
	return primaryResult{status: fetchFound, wotd: wotd}
}

func (r *Resolver) fromWordOfTheDay(ctx context.Context, date string, wotd *wordnik.WordOfTheDay) *WordRecord {
	definitions := fromWordnikDefinitions(wotd.Definitions)
	if len(definitions) == 0 {
		definitions = r.definitions(ctx, wotd.Word)
	}
	pronunciations := fromWordnikPronunciations(wotd.Pronunciations)
	if len(pronunciations) == 0 {
		pronunciations = r.pronunciations(ctx, wotd.Word)
	}

	var example string
	if len(wotd.Examples) > 0 {
		example = wotd.Examples[0].Text
	}

	return &WordRecord{
		Date:           date,
		Word:           wotd.Word,
		Definitions:    definitions,
		Pronunciations: pronunciations,
		Example:        example,
		Note:           wotd.Note,
		Source:         SourcePrimary,
	}
}

func (r *Resolver) fromRandomWord(ctx context.Context, date string) (*WordRecord, error) {
	random, err := r.api.RandomWord(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: r.api.RandomWord > %w", ErrUpstream, err)
	}
	if random == nil || random.Word == "" {
		return nil, fmt.Errorf("%w: randomWord returned no word", ErrUpstream)
	}

	return &WordRecord{
		Date:           date,
		Word:           random.Word,
		Definitions:    r.definitions(ctx, random.Word),
		Pronunciations: r.pronunciations(ctx, random.Word),
		Example:        r.example(ctx, random.Word),
		Source:         SourceFallback,
	}, nil
}

func (r *Resolver) definitions(ctx context.Context, word string) []Definition {
	definitions, err := r.api.Definitions(ctx, word)
	if err != nil {
		slog.Default().Warn("failed to fetch definitions",
			slog.String("word", word),
			slog.Any("error", err),
		)
		return []Definition{}
	}
	return fromWordnikDefinitions(definitions)
}

func (r *Resolver) pronunciations(ctx context.Context, word string) []Pronunciation {
	pronunciations, err := r.api.Pronunciations(ctx, word)
	if err != nil {
		slog.Default().Warn("failed to fetch pronunciations",
			slog.String("word", word),
			slog.Any("error", err),
		)
		return []Pronunciation{}
	}
	return fromWordnikPronunciations(pronunciations)
}

func (r *Resolver) example(ctx context.Context, word string) string {
	example, err := r.api.TopExample(ctx, word)
	if err != nil {
		slog.Default().Warn("failed to fetch an example",
			slog.String("word", word),
			slog.Any("error", err),
		)
		return ""
	}
	if example == nil {
		return ""
	}
	return example.Text
}
