package cache

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

// MemoryStore keeps the current record in process memory in front of another store,
// so a running server does not read the file or the database on every request.
type MemoryStore struct {
	next  dailyword.Store
	cache *ristretto.Cache
}

func NewMemoryStore(next dailyword.Store) (*MemoryStore, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("ristretto.NewCache > %w", err)
	}
	return &MemoryStore{
		next:  next,
		cache: c,
	}, nil
}

func (s *MemoryStore) Load(ctx context.Context) (*dailyword.WordRecord, error) {
	if value, ok := s.cache.Get(currentSlot); ok {
		if record, ok := value.(*dailyword.WordRecord); ok {
			return record, nil
		}
		s.cache.Del(currentSlot)
	}

	record, err := s.next.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.next.Load > %w", err)
	}
	if record != nil {
		s.remember(record)
	}
	return record, nil
}

// Save writes through to the next store. The memory copy is dropped when that fails
// so that a later Load sees what is actually persisted.
func (s *MemoryStore) Save(ctx context.Context, record *dailyword.WordRecord) error {
	if err := s.next.Save(ctx, record); err != nil {
		s.cache.Del(currentSlot)
		return fmt.Errorf("s.next.Save > %w", err)
	}
	s.remember(record)
	return nil
}

func (s *MemoryStore) Close() {
	s.cache.Close()
}

func (s *MemoryStore) remember(record *dailyword.WordRecord) {
	s.cache.Set(currentSlot, record, 1)
	s.cache.Wait()
}
