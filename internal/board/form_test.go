package board

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/mocks"
)

func TestClassifyLength(t *testing.T) {
	tests := []struct {
		n    int
		want CharStatus
	}{
		{0, CharsNormal},
		{450, CharsNormal},
		{451, CharsWarning},
		{499, CharsWarning},
		{500, CharsAtLimit},
		{501, CharsAtLimit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLength(tt.n), "ClassifyLength(%d)", tt.n)
	}
}

func TestClassify_CountsCharacters(t *testing.T) {
	assert.Equal(t, CharsNormal, Classify(strings.Repeat("ñ", 300)), "600 bytes but 300 characters")
	assert.Equal(t, CharsAtLimit, Classify(strings.Repeat("ñ", 500)))
	assert.Equal(t, "warning", Classify(strings.Repeat("a", 460)).String())
}

func TestIDSource(t *testing.T) {
	var ids IDSource

	a := ids.Next(t0)
	b := ids.Next(t0)
	c := ids.Next(t0.Add(-time.Hour))

	assert.Equal(t, t0.UnixMilli(), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c, "clock going backwards still yields a larger id")

	ids.Seed(t0.Add(time.Hour).UnixMilli())
	assert.Equal(t, t0.Add(time.Hour).UnixMilli()+1, ids.Next(t0))
}

func TestForm_SubmitRejectsWithoutWriting(t *testing.T) {
	tests := []struct {
		name      string
		rawName   string
		rawMsg    string
		badFields []string
	}{
		{"empty name", "", "Hola", []string{"name"}},
		{"blank name", "   ", "Hola", []string{"name"}},
		{"empty message", "Ana", "", []string{"message"}},
		{"blank message", "Ana", "\n\t ", []string{"message"}},
		{"both empty", "", "", []string{"name", "message"}},
		{"501 characters", "Ana", strings.Repeat("x", 501), []string{"message"}},
		{"501 multibyte characters", "Ana", strings.Repeat("ü", 501), []string{"message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mocks.NewMockStorage(ctrl)
			storage.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			store := NewStore(storage, comment.DefaultKey, zerolog.Nop())
			form := NewForm(store, &IDSource{}, newClock(t0).Now)

			_, err := form.Submit(context.Background(), tt.rawName, tt.rawMsg)

			var verr *comment.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.badFields {
				assert.True(t, verr.Has(f), "expected %s to be rejected", f)
			}
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestForm_SubmitAccepts(t *testing.T) {
	tests := []struct {
		name        string
		rawName     string
		rawMsg      string
		wantAuthor  string
		wantMessage string
	}{
		{"plain", "Ana", "Hola a todos", "Ana", "Hola a todos"},
		{"trims", "  Ana \n", "\tHola  ", "Ana", "Hola"},
		{"500 characters", "Ana", strings.Repeat("x", 500), "Ana", strings.Repeat("x", 500)},
		{"500 after trim", "Ana", "   " + strings.Repeat("x", 500) + "   ", "Ana", strings.Repeat("x", 500)},
		{"markup is kept verbatim", "<b>Ana</b>", "<script>", "<b>Ana</b>", "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mocks.NewMockStorage(ctrl)
			storage.EXPECT().Set(gomock.Any(), comment.DefaultKey, gomock.Any()).Return(nil).Times(1)

			store := NewStore(storage, comment.DefaultKey, zerolog.Nop())
			form := NewForm(store, &IDSource{}, newClock(t0).Now)

			c, err := form.Submit(context.Background(), tt.rawName, tt.rawMsg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAuthor, c.Author)
			assert.Equal(t, tt.wantMessage, c.Message)
			assert.True(t, c.IsNew)
			assert.True(t, c.CreatedAt.Equal(t0))

			list := store.Comments()
			require.Len(t, list, 1)
			assert.Equal(t, c, list[0])
		})
	}
}

func TestForm_SubmitTruncatesToMilliseconds(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	at := t0.Add(123456789 * time.Nanosecond)
	form := NewForm(NewStore(storage, comment.DefaultKey, zerolog.Nop()), &IDSource{}, func() time.Time { return at })

	c, err := form.Submit(context.Background(), "Ana", "Hola")
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(t0.Add(123*time.Millisecond)))
}
