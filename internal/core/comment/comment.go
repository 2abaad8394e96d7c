// Package comment defines the board's comment entry, its wire codec, and the
// persistence contract every storage driver implements.
package comment

import "time"

// MaxMessageLength is the upper bound, in characters, of a comment message.
const MaxMessageLength = 500

// DefaultKey is the storage key holding the whole comment list.
const DefaultKey = "smart-events-comments"

// Comment is a single entry on the board.
type Comment struct {
	ID        int64
	Author    string
	Message   string
	CreatedAt time.Time
	// IsNew marks an entry created during this session. It is never true for
	// entries read back from storage.
	IsNew bool
}
