package board

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smart-events/board/internal/core/comment"
)

// Store owns the canonical, newest-first comment list and is the only
// component that touches persistent storage.
type Store struct {
	storage comment.Storage
	key     string
	log     zerolog.Logger

	mu       sync.RWMutex
	comments []comment.Comment
}

// NewStore creates a Store persisting the list under key.
func NewStore(storage comment.Storage, key string, log zerolog.Logger) *Store {
	return &Store{
		storage: storage,
		key:     key,
		log:     log,
	}
}

// Load replaces the in-memory list with the persisted one and returns it.
// A missing key, a storage failure, or undecodable data all yield an empty
// list; failures are logged, never returned.
func (s *Store) Load(ctx context.Context) []comment.Comment {
	list, err := s.read(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("discarding unreadable comments")
		list = nil
	}

	s.mu.Lock()
	s.comments = list
	s.mu.Unlock()

	s.log.Debug().Int("count", len(list)).Msg("comments loaded")
	return slices.Clone(list)
}

func (s *Store) read(ctx context.Context) ([]comment.Comment, error) {
	raw, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, comment.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &comment.StorageReadError{Key: s.key, Err: err}
	}

	if raw == "" {
		return nil, nil
	}

	list, err := comment.Deserialize([]byte(raw))
	if err != nil {
		return nil, &comment.StorageReadError{Key: s.key, Err: err}
	}

	return list, nil
}

// Add puts c at the head of the list and persists the whole list. The
// in-memory list is updated even when persisting fails; the failure is
// logged and returned as a *comment.StorageWriteError.
func (s *Store) Add(ctx context.Context, c comment.Comment) error {
	s.mu.Lock()
	s.comments = slices.Insert(s.comments, 0, c)
	snapshot := slices.Clone(s.comments)
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		s.log.Warn().Err(err).Int64("id", c.ID).Msg("comment kept in memory only")
		return err
	}

	s.log.Debug().Int64("id", c.ID).Int("count", len(snapshot)).Msg("comments saved")
	return nil
}

func (s *Store) persist(ctx context.Context, list []comment.Comment) error {
	data, err := comment.Serialize(list)
	if err != nil {
		return &comment.StorageWriteError{Key: s.key, Err: err}
	}

	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		return &comment.StorageWriteError{Key: s.key, Err: err}
	}

	return nil
}

// Clear empties the in-memory list and removes the persisted record. It is
// safe to call on an empty board. A storage failure is returned as a
// *comment.StorageWriteError; the in-memory list is cleared regardless.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.comments = nil
	s.mu.Unlock()

	if err := s.storage.Remove(ctx, s.key); err != nil {
		s.log.Warn().Err(err).Msg("persisted comments not removed")
		return &comment.StorageWriteError{Key: s.key, Err: err}
	}

	s.log.Info().Msg("comments cleared")
	return nil
}

// Comments returns a copy of the current list, newest first.
func (s *Store) Comments() []comment.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.comments)
}

// Len returns the number of comments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments)
}

// MaxID returns the largest comment ID on the board, or 0.
func (s *Store) MaxID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest int64
	for _, c := range s.comments {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest
}
