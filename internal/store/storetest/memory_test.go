package storetest

import (
	"testing"

	"github.com/smart-events/board/internal/core/comment"
)

func TestMemory(t *testing.T) {
	Run(t, func(*testing.T) comment.Storage { return NewMemory() })
}
