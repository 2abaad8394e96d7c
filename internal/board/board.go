// Package board wires the comment store, form, renderer and exporter into a
// single component that owns the board's state.
package board

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/render"
)

// Options configures a Board.
type Options struct {
	Storage    comment.Storage
	Key        string
	Downloader Downloader
	Namer      Namer
	Note       string
	Dates      render.DateFormatter
	// Now defaults to time.Now.
	Now func() time.Time
	// OnSettle is forwarded to the renderer.
	OnSettle func(id int64)
	// SettleDelay overrides render.SettleDelay, for tests.
	SettleDelay time.Duration
}

// Board is the comment board. All mutation goes through it.
type Board struct {
	store    *Store
	form     *Form
	ids      *IDSource
	renderer *render.Renderer
	exporter *Exporter
	log      zerolog.Logger
}

// New creates a Board. Call Load before use.
func New(opts Options, log zerolog.Logger) *Board {
	if opts.Key == "" {
		opts.Key = comment.DefaultKey
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var (
		store = NewStore(opts.Storage, opts.Key, log.With().Str("component", "store").Logger())
		ids   = &IDSource{}
	)

	return &Board{
		store: store,
		form:  NewForm(store, ids, opts.Now),
		ids:   ids,
		renderer: render.New(render.Options{
			Dates:       opts.Dates,
			Now:         opts.Now,
			SettleDelay: opts.SettleDelay,
			OnSettle:    opts.OnSettle,
		}, log.With().Str("component", "render").Logger()),
		exporter: NewExporter(opts.Downloader, opts.Namer, opts.Note, opts.Now,
			log.With().Str("component", "export").Logger()),
		log: log,
	}
}

// Load reads the persisted list. It never fails; see Store.Load.
func (b *Board) Load(ctx context.Context) []comment.Comment {
	list := b.store.Load(ctx)
	b.ids.Seed(b.store.MaxID())
	return list
}

// Submit validates and adds a comment; see Form.Submit.
func (b *Board) Submit(ctx context.Context, name, message string) (comment.Comment, error) {
	c, err := b.form.Submit(ctx, name, message)

	var verr *comment.ValidationError
	switch {
	case errors.As(err, &verr):
		b.log.Debug().Err(err).Msg("submission rejected")
	case err == nil:
		b.log.Info().Int64("id", c.ID).Str("author", c.Author).Msg("comment posted")
	}

	return c, err
}

// Clear removes every comment and cancels pending highlight timers so none
// fires for a removed card.
func (b *Board) Clear(ctx context.Context) error {
	b.renderer.Reset()
	return b.store.Clear(ctx)
}

// Export saves a backup of the current list; see Exporter.Export.
func (b *Board) Export(ctx context.Context) (Export, error) {
	return b.exporter.Export(ctx, b.store.Comments())
}

// Comments returns the current list, newest first.
func (b *Board) Comments() []comment.Comment {
	return b.store.Comments()
}

// Len returns the number of comments.
func (b *Board) Len() int {
	return b.store.Len()
}

// Cards returns the display projection of the current list.
func (b *Board) Cards() []render.Card {
	return b.renderer.Cards(b.store.Comments())
}

// Render returns the HTML markup of the current list.
func (b *Board) Render() (string, error) {
	return b.renderer.Render(b.store.Comments())
}

// Close cancels pending highlight timers.
func (b *Board) Close() {
	b.renderer.Reset()
}
