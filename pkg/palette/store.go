package palette

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/matt-steen/count-tracker/pkg/db"
	"github.com/rs/zerolog/log"
)

const customKey = "customColors"

// Store manages the custom colors persisted under a single key. Every operation re-reads
// the persisted list; the mutex serializes read-modify-write sequences within the process.
type Store struct {
	mu sync.Mutex
	kv db.Store
}

// NewStore returns a Store persisting through kv.
func NewStore(kv db.Store) *Store {
	return &Store{kv: kv}
}

// ListAll returns the built-in colors followed by the custom ones.
func (s *Store) ListAll(ctx context.Context) []Color {
	return append(Builtin(), s.ListCustom(ctx)...)
}

// ListCustom returns only the custom colors. Missing or corrupt data reads as empty.
func (s *Store) ListCustom(ctx context.Context) []Color {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// AddCustom appends color to the custom colors. Duplicates are allowed; colors that aren't
// hex values are rejected with ErrInvalidColor.
func (s *Store) AddCustom(ctx context.Context, color Color) error {
	if !color.Valid() {
		log.Warn().Str("bg", color.Background).Str("fg", color.Foreground).Msg("rejecting invalid custom color")

		return fmt.Errorf("error adding custom color %s/%s: %w", color.Background, color.Foreground, ErrInvalidColor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	colors := append(s.load(ctx), color)

	log.Debug().Str("bg", color.Background).Str("fg", color.Foreground).Msg("adding custom color")

	return s.save(ctx, colors)
}

// RemoveCustom removes the custom color at index, counted within the custom colors only.
// Later entries shift down by one. An index out of range leaves the list unchanged.
func (s *Store) RemoveCustom(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	colors := s.load(ctx)
	if index < 0 || index >= len(colors) {
		log.Debug().Int("index", index).Int("len", len(colors)).Msg("no custom color to remove")

		return nil
	}

	remaining := make([]Color, 0, len(colors)-1)
	remaining = append(remaining, colors[:index]...)
	remaining = append(remaining, colors[index+1:]...)

	return s.save(ctx, remaining)
}

// ResetCustom drops every custom color; the built-in colors are unaffected.
func (s *Store) ResetCustom(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, customKey); err != nil {
		log.Error().Err(err).Str("key", customKey).Msg("error resetting custom colors")

		return fmt.Errorf("error resetting custom colors: %w", err)
	}

	return nil
}

func (s *Store) load(ctx context.Context) []Color {
	value, ok, err := s.kv.Get(ctx, customKey)
	if err != nil {
		log.Warn().Err(err).Str("key", customKey).Msg("error loading custom colors")

		return []Color{}
	}

	if !ok {
		return []Color{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		log.Warn().Err(err).Str("key", customKey).Msg("custom colors are not a json array; treating as empty")

		return []Color{}
	}

	colors := make([]Color, 0, len(raw))

	for i, r := range raw {
		var color Color
		if err := json.Unmarshal(r, &color); err != nil || !color.Valid() {
			log.Warn().Err(err).Int("index", i).Str("entry", string(r)).Msg("skipping malformed custom color")

			continue
		}

		colors = append(colors, color)
	}

	return colors
}

func (s *Store) save(ctx context.Context, colors []Color) error {
	data, err := json.Marshal(colors)
	if err != nil {
		return fmt.Errorf("error encoding custom colors: %w", err)
	}

	if err := s.kv.Set(ctx, customKey, string(data)); err != nil {
		log.Error().Err(err).Str("key", customKey).Msg("error saving custom colors")

		return fmt.Errorf("error saving custom colors: %w", err)
	}

	return nil
}
