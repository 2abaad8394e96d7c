package randid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	id := Generate(12)
	assert.Len(t, id, 12)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(chars, r), "unexpected rune %q", r)
	}
}

func TestTempName(t *testing.T) {
	a := TempName("/data/board.json")
	b := TempName("/data/board.json")

	assert.True(t, strings.HasPrefix(a, "/data/board.json."))
	assert.True(t, strings.HasSuffix(a, ".tmp"))
	assert.NotEqual(t, a, b)
}
