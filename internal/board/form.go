package board

import (
	"context"
	"sync"
	"time"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/core/validate"
)

// CharStatus classifies a message length for live counter feedback.
type CharStatus int

const (
	CharsNormal CharStatus = iota
	CharsWarning
	CharsAtLimit
)

// WarnThreshold is the length above which the counter warns.
const WarnThreshold = 450

func (s CharStatus) String() string {
	switch s {
	case CharsWarning:
		return "warning"
	case CharsAtLimit:
		return "at-limit"
	default:
		return "normal"
	}
}

// ClassifyLength classifies a message of n characters.
func ClassifyLength(n int) CharStatus {
	switch {
	case n >= comment.MaxMessageLength:
		return CharsAtLimit
	case n > WarnThreshold:
		return CharsWarning
	default:
		return CharsNormal
	}
}

// Classify classifies msg by its length in characters.
func Classify(msg string) CharStatus {
	return ClassifyLength(len([]rune(msg)))
}

// IDSource hands out comment IDs derived from the creation time in
// milliseconds, bumped past the last issued ID when two land in the same
// millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

// Seed makes every later ID larger than id.
func (s *IDSource) Seed(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.last {
		s.last = id
	}
}

// Next returns a unique ID for a comment created at t.
func (s *IDSource) Next(t time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := t.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Form turns raw submissions into comments and hands them to the Store.
type Form struct {
	store *Store
	ids   *IDSource
	now   func() time.Time
}

// NewForm creates a Form adding to store. now defaults to time.Now.
func NewForm(store *Store, ids *IDSource, now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	return &Form{store: store, ids: ids, now: now}
}

// Submit validates and adds a comment. Both fields are trimmed; an empty
// field or a message over comment.MaxMessageLength characters is rejected
// with a *comment.ValidationError and nothing is stored.
//
// A *comment.StorageWriteError is returned together with the accepted
// comment when it could only be kept in memory.
func (f *Form) Submit(ctx context.Context, rawName, rawMessage string) (comment.Comment, error) {
	sub := validate.Trim(rawName, rawMessage)
	if err := validate.Comment(sub); err != nil {
		return comment.Comment{}, err
	}

	// wire timestamps carry milliseconds
	now := time.UnixMilli(f.now().UnixMilli())

	c := comment.Comment{
		ID:        f.ids.Next(now),
		Author:    sub.Name,
		Message:   sub.Message,
		CreatedAt: now,
		IsNew:     true,
	}

	return c, f.store.Add(ctx, c)
}
