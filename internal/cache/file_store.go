package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

// FileStore keeps the word in a single JSON file that is replaced on every save.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (store *FileStore) Load(_ context.Context) (*dailyword.WordRecord, error) {
	file, err := os.Open(store.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}

	var record dailyword.WordRecord
	if err := json.Unmarshal(contents, &record); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &record, nil
}

func (store *FileStore) Save(_ context.Context, record *dailyword.WordRecord) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}

	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	// Readers see either the previous file or the new one, never a partial write
	file, err := os.CreateTemp(dir, "."+filepath.Base(store.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tempPath := file.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := file.Write(buf.Bytes()); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("os.Chmod > %w", err)
	}
	if err := os.Rename(tempPath, store.path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
