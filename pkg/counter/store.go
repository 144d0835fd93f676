// Package counter persists the user's counters as a single json list and derives the
// views the UI needs from them.
package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/matt-steen/count-tracker/pkg/db"
	"github.com/rs/zerolog/log"
)

const countsKey = "counts"

// Store is the only writer of the counts key. Each operation reads the whole list,
// changes a copy, and writes the whole list back; the mutex keeps two such sequences in
// this process from interleaving. Writers in other processes still win or lose as a whole.
type Store struct {
	mu sync.Mutex
	kv db.Store
}

// NewStore returns a Store persisting through kv.
func NewStore(kv db.Store) *Store {
	return &Store{kv: kv}
}

// List returns every counter in creation order. Missing or corrupt data reads as empty.
func (s *Store) List(ctx context.Context) []Counter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Get returns the counter with the given id.
func (s *Store) Get(ctx context.Context, id int) (Counter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := s.load(ctx)
	if idx := indexOf(counters, id); idx >= 0 {
		return counters[idx], true
	}

	return Counter{}, false
}

// Create appends a new counter and returns its id, one more than the highest id in use.
// A negative start count is stored as 0.
func (s *Store) Create(ctx context.Context, n NewCounter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := s.load(ctx)

	id := 1
	for _, c := range counters {
		if c.ID >= id {
			id = c.ID + 1
		}
	}

	count := 0
	if n.StartCount != nil {
		count = clamp(*n.StartCount)
	}

	counters = append(counters, Counter{
		ID:              id,
		Title:           n.Title,
		Description:     n.Description,
		Count:           count,
		TargetCount:     n.TargetCount,
		BackgroundColor: n.Color.Background,
		ForegroundColor: n.Color.Foreground,
	})

	if err := s.save(ctx, counters); err != nil {
		return 0, fmt.Errorf("error adding counter %s: %w", n.Title, err)
	}

	log.Debug().Int("id", id).Str("title", n.Title).Msg("created counter")

	return id, nil
}

// UpdateCount sets the count of the counter with the given id, clamping at 0.
// An unknown id is ignored.
func (s *Store) UpdateCount(ctx context.Context, id, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(ctx, id, func(c *Counter) {
		c.Count = clamp(count)
	})

	return err
}

// Increment adds one to the count and returns the new value.
func (s *Store) Increment(ctx context.Context, id int) (int, error) {
	return s.step(ctx, id, 1)
}

// Decrement subtracts one from the count, stopping at 0, and returns the new value.
func (s *Store) Decrement(ctx context.Context, id int) (int, error) {
	return s.step(ctx, id, -1)
}

func (s *Store) step(ctx context.Context, id, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int

	found, err := s.update(ctx, id, func(c *Counter) {
		c.Count = clamp(c.Count + delta)
		count = c.Count
	})
	if err != nil || !found {
		return 0, err
	}

	return count, nil
}

// UpdateDetails replaces the title, description and target of the counter with the given id.
// The count and colors are left alone. An unknown id is ignored.
func (s *Store) UpdateDetails(ctx context.Context, id int, title, description string, targetCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(ctx, id, func(c *Counter) {
		c.Title = title
		c.Description = description
		c.TargetCount = targetCount
	})

	return err
}

// Delete removes the counter with the given id. An unknown id is ignored.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := s.load(ctx)

	idx := indexOf(counters, id)
	if idx < 0 {
		log.Debug().Int("id", id).Msg("no counter to delete")

		return nil
	}

	remaining := make([]Counter, 0, len(counters)-1)
	remaining = append(remaining, counters[:idx]...)
	remaining = append(remaining, counters[idx+1:]...)

	if err := s.save(ctx, remaining); err != nil {
		return fmt.Errorf("error deleting counter %d: %w", id, err)
	}

	return nil
}

// update applies fn to the counter with the given id and writes the list back.
// It must be called with s.mu held.
func (s *Store) update(ctx context.Context, id int, fn func(*Counter)) (bool, error) {
	counters := s.load(ctx)

	idx := indexOf(counters, id)
	if idx < 0 {
		log.Debug().Int("id", id).Msg("no counter to update")

		return false, nil
	}

	fn(&counters[idx])

	if err := s.save(ctx, counters); err != nil {
		return true, fmt.Errorf("error updating counter %d: %w", id, err)
	}

	return true, nil
}

func (s *Store) load(ctx context.Context) []Counter {
	value, ok, err := s.kv.Get(ctx, countsKey)
	if err != nil {
		log.Warn().Err(err).Str("key", countsKey).Msg("error loading counters")

		return []Counter{}
	}

	if !ok {
		return []Counter{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		log.Warn().Err(err).Str("key", countsKey).Msg("counters are not a json array; treating as empty")

		return []Counter{}
	}

	counters := make([]Counter, 0, len(raw))
	seen := map[int]bool{}

	for i, r := range raw {
		var c Counter
		if err := json.Unmarshal(r, &c); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping malformed counter")

			continue
		}

		if c.ID <= 0 || seen[c.ID] {
			log.Warn().Int("index", i).Int("id", c.ID).Msg("skipping counter with invalid or duplicate id")

			continue
		}

		if c.Count < 0 {
			log.Warn().Int("id", c.ID).Int("count", c.Count).Msg("clamping negative count")
			c.Count = 0
		}

		seen[c.ID] = true
		counters = append(counters, c)
	}

	return counters
}

func (s *Store) save(ctx context.Context, counters []Counter) error {
	data, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("error encoding counters: %w", err)
	}

	if err := s.kv.Set(ctx, countsKey, string(data)); err != nil {
		log.Error().Err(err).Str("key", countsKey).Msg("error saving counters")

		return err
	}

	return nil
}

func indexOf(counters []Counter, id int) int {
	for i, c := range counters {
		if c.ID == id {
			return i
		}
	}

	return -1
}

func clamp(count int) int {
	if count < 0 {
		return 0
	}

	return count
}
