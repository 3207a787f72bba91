package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

// currentSlot is the key of the only row the store ever writes.
const currentSlot = "current"

type dailyWordRow struct {
	Slot      string          `db:"slot"`
	Date      string          `db:"date"`
	Word      string          `db:"word"`
	Record    json.RawMessage `db:"record"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// DBStore keeps the word in the daily_word_cache table of MySQL.
type DBStore struct {
	db *sqlx.DB
}

func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

func (store *DBStore) Load(ctx context.Context) (*dailyword.WordRecord, error) {
	var row dailyWordRow
	err := store.db.GetContext(ctx, &row, "SELECT * FROM daily_word_cache WHERE slot = ?", currentSlot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(daily_word_cache) > %w", err)
	}

	var record dailyword.WordRecord
	if err := json.Unmarshal(row.Record, &record); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &record, nil
}

func (store *DBStore) Save(ctx context.Context, record *dailyword.WordRecord) error {
	contents, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	_, err = store.db.ExecContext(ctx,
		`INSERT INTO daily_word_cache (slot, date, word, record)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE date = VALUES(date), word = VALUES(word), record = VALUES(record)`,
		currentSlot, record.Date, record.Word, contents)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert daily_word_cache) > %w", err)
	}
	return nil
}
