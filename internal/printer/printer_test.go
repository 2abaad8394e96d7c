package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"

	"github.com/smart-events/board/internal/core/comment"
)

func TestPrinter_FatalError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(errors.New("boom"))

	assert.Contains(t, buf.String(), "Error")
	assert.Contains(t, buf.String(), "boom")
}

func TestPrinter_FatalErrorConfigFields(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("load config: %w", criterio.FieldErrors{
		{Field: "storage.driver", Err: errors.New("unknown driver")},
	})

	New(&buf).FatalError(err)

	out := buf.String()
	assert.Contains(t, out, "Validation Error")
	assert.Contains(t, out, "storage.driver: ")
	assert.Contains(t, out, "unknown driver")
}

func TestPrinter_FatalErrorRejectedComment(t *testing.T) {
	var buf bytes.Buffer
	err := &comment.ValidationError{Fields: []comment.FieldError{
		{Field: "name", Reason: "is required"},
		{Field: "message", Reason: "must be at most 500 characters"},
	}}

	New(&buf).FatalError(err)

	out := buf.String()
	assert.Contains(t, out, "Validation Error")
	assert.Contains(t, out, "name: ")
	assert.Contains(t, out, "is required")
	assert.Contains(t, out, "must be at most 500 characters")
}

func TestPrinter_Notice(t *testing.T) {
	t.Run("storage write is a warning", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).Notice(&comment.StorageWriteError{Key: "k", Err: errors.New("quota exceeded")})

		assert.Contains(t, buf.String(), ColorYellow)
		assert.Contains(t, buf.String(), "quota exceeded")
	})

	t.Run("other errors", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).Notice(&comment.ExportError{Op: "save", Err: errors.New("disk full")})

		assert.Contains(t, buf.String(), ColorRed)
		assert.Contains(t, buf.String(), "disk full")
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).Notice(nil)
		assert.Empty(t, buf.String())
	})
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
