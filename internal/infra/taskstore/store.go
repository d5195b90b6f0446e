// Package taskstore provides the snapshot-based implementation of
// TaskRepository on top of the key-value store.
//
// The active and archived lists are persisted under two independent
// keys as whole snapshots: every save overwrites the full list, with no
// diffing or append optimization. Decoding is strict and all-or-nothing
// at the list level; a blob that fails to decode yields an empty list.
package taskstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/skosuge/taskpocket/internal/domain"
	"github.com/skosuge/taskpocket/internal/infra/kvstore"
)

// Persisted snapshot keys.
const (
	activeKey   = "tasks"
	archivedKey = "archiveTasks"
)

// taskPayload is the wire representation of a task.
type taskPayload struct {
	CustomCategory *categoryPayload `json:"customCategory,omitempty"`
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	IsCompleted    bool             `json:"isCompleted"`
}

// categoryPayload is the wire representation of a category reference.
type categoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Store implements domain.TaskRepository using whole-list snapshots.
type Store struct {
	kv     *kvstore.Store
	logger domain.Logger
}

// New creates a new Store backed by kv. logger may be nil.
func New(kv *kvstore.Store, logger domain.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// LoadActive returns the persisted active list.
func (s *Store) LoadActive() []domain.Task {
	return s.load(activeKey)
}

// LoadArchived returns the persisted archived list.
func (s *Store) LoadArchived() []domain.Task {
	return s.load(archivedKey)
}

// SaveActive overwrites the active snapshot.
func (s *Store) SaveActive(tasks []domain.Task) {
	s.save(activeKey, tasks)
}

// SaveArchived overwrites the archived snapshot.
func (s *Store) SaveArchived(tasks []domain.Task) {
	s.save(archivedKey, tasks)
}

// load decodes the full list stored under key. An absent or malformed
// blob is not an error: the result is an empty list. There is no
// partial recovery at the list level.
func (s *Store) load(key string) []domain.Task {
	content, ok := s.kv.Get(key)
	if !ok {
		return []domain.Task{}
	}

	payloads, err := decodePayloads(content)
	if err != nil {
		s.warn(fmt.Sprintf("discarding %s snapshot: %v", key, err))
		return []domain.Task{}
	}

	tasks := make([]domain.Task, 0, len(payloads))
	for _, p := range payloads {
		tasks = append(tasks, fromPayload(p))
	}
	return tasks
}

// save encodes the full list and writes it under key. Write failures
// are logged and absorbed; the caller's in-memory list stays the
// source of truth.
func (s *Store) save(key string, tasks []domain.Task) {
	payloads := make([]taskPayload, 0, len(tasks))
	for _, t := range tasks {
		payloads = append(payloads, toPayload(t))
	}

	content, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		s.warn(fmt.Sprintf("marshal %s snapshot: %v", key, err))
		return
	}
	if err := s.kv.Set(key, content); err != nil {
		s.warn(fmt.Sprintf("write %s snapshot: %v", key, err))
	}
}

func (s *Store) warn(msg string) {
	if s.logger != nil {
		s.logger.Warn("taskstore", msg)
	}
}

// decodePayloads decodes and validates the snapshot as a whole.
func decodePayloads(content []byte) ([]taskPayload, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var payloads []taskPayload
	if err := dec.Decode(&payloads); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected trailing content")
	}

	for i, p := range payloads {
		kind := domain.CategoryKind(p.Category)
		if !kind.IsValid() {
			return nil, fmt.Errorf("entry %d: invalid category %q", i, p.Category)
		}
		if kind == domain.KindCustom && p.CustomCategory == nil {
			return nil, fmt.Errorf("entry %d: custom task missing category reference", i)
		}
	}
	return payloads, nil
}

func fromPayload(p taskPayload) domain.Task {
	task := domain.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    domain.CategoryKind(p.Category),
		Done:        p.IsCompleted,
	}
	if p.CustomCategory != nil {
		task.CustomCategory = &domain.Category{
			ID:   p.CustomCategory.ID,
			Name: p.CustomCategory.Name,
		}
	}
	return task
}

func toPayload(t domain.Task) taskPayload {
	p := taskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		IsCompleted: t.Done,
	}
	if t.CustomCategory != nil {
		p.CustomCategory = &categoryPayload{
			ID:   t.CustomCategory.ID,
			Name: t.CustomCategory.Name,
		}
	}
	return p
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
