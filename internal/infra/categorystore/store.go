// Package categorystore persists user-defined categories as one
// loosely typed snapshot: an array of {id, name} maps under a fixed
// key.
//
// Unlike the task snapshots, decoding here is best-effort per entry:
// an entry that fails to decode is silently dropped and its siblings
// are kept. The asymmetry with taskstore is deliberate and pinned by
// tests.
package categorystore

import (
	"encoding/json"
	"fmt"

	"github.com/skosuge/taskpocket/internal/domain"
	"github.com/skosuge/taskpocket/internal/infra/kvstore"
)

// storageKey is the fixed key the category list is persisted under.
const storageKey = "savedCustomCategories"

// Store implements domain.CategoryRepository.
type Store struct {
	kv     *kvstore.Store
	logger domain.Logger
}

// New creates a new Store backed by kv. logger may be nil.
func New(kv *kvstore.Store, logger domain.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// LoadAll returns every entry that decoded successfully. An absent or
// wholly malformed blob yields an empty list.
func (s *Store) LoadAll() []domain.Category {
	content, ok := s.kv.Get(storageKey)
	if !ok {
		return []domain.Category{}
	}

	var entries []map[string]any
	if err := json.Unmarshal(content, &entries); err != nil {
		s.warn(fmt.Sprintf("discarding category snapshot: %v", err))
		return []domain.Category{}
	}

	categories := make([]domain.Category, 0, len(entries))
	for _, entry := range entries {
		id, okID := entry["id"].(string)
		name, okName := entry["name"].(string)
		if !okID || !okName {
			// Best-effort decode: drop the entry, keep its siblings.
			continue
		}
		categories = append(categories, domain.Category{ID: id, Name: name})
	}
	return categories
}

// SaveAll overwrites the snapshot with the given list, deduplicated by
// name. Write failures are logged and absorbed.
func (s *Store) SaveAll(categories []domain.Category) {
	deduped := domain.DedupCategoriesByName(categories)

	entries := make([]map[string]string, 0, len(deduped))
	for _, c := range deduped {
		entries = append(entries, map[string]string{
			"id":   c.ID,
			"name": c.Name,
		})
	}

	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		s.warn(fmt.Sprintf("marshal category snapshot: %v", err))
		return
	}
	if err := s.kv.Set(storageKey, content); err != nil {
		s.warn(fmt.Sprintf("write category snapshot: %v", err))
	}
}

func (s *Store) warn(msg string) {
	if s.logger != nil {
		s.logger.Warn("categorystore", msg)
	}
}

// Ensure Store implements CategoryRepository.
var _ domain.CategoryRepository = (*Store)(nil)
