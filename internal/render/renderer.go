// Package render projects the comment list into display markup: HTML cards
// for the page, styled cards for the terminal, and a markdown digest.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/smart-events/board/internal/core/comment"
)

// Card is the display projection of a single comment.
type Card struct {
	ID      int64
	Author  string
	Message string
	TimeAgo string
	Date    string
	// Fresh carries the "new" highlight until the comment's settle timer fires.
	Fresh bool
}

// Options configures a Renderer.
type Options struct {
	Dates DateFormatter
	// Now returns the reference time for relative labels. Defaults to time.Now.
	Now func() time.Time
	// SettleDelay overrides SettleDelay, for tests.
	SettleDelay time.Duration
	// OnSettle is called, from the timer goroutine, when a card loses its
	// highlight.
	OnSettle func(id int64)
}

// Renderer turns comments into cards. Its only state is the display-side
// highlight: which fresh comments have settled and which settle timers are
// pending. It never modifies the comments it is given.
type Renderer struct {
	dates    DateFormatter
	now      func() time.Time
	settler  *Settler
	onSettle func(id int64)
	log      zerolog.Logger

	mu      sync.Mutex
	settled map[int64]struct{}

	// settleMu serializes settle callbacks with Reset. gen is bumped by
	// Reset; a callback scheduled under an older gen does nothing.
	settleMu sync.Mutex
	gen      uint64
}

// New creates a Renderer.
func New(opts Options, log zerolog.Logger) *Renderer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = SettleDelay
	}

	return &Renderer{
		dates:    opts.Dates,
		now:      opts.Now,
		settler:  NewSettler(opts.SettleDelay),
		onSettle: opts.OnSettle,
		log:      log,
		settled:  make(map[int64]struct{}),
	}
}

// Cards projects list into cards in the same order. For every new comment
// that has not settled yet a settle timer is scheduled, once.
func (r *Renderer) Cards(list []comment.Comment) []Card {
	now := r.now()

	return lo.Map(list, func(c comment.Comment, _ int) Card {
		fresh := c.IsNew && !r.isSettled(c.ID)
		if fresh {
			r.scheduleSettle(c.ID)
		}

		return Card{
			ID:      c.ID,
			Author:  c.Author,
			Message: c.Message,
			TimeAgo: RelativeTime(c.CreatedAt, now),
			Date:    r.dates.Format(c.CreatedAt),
			Fresh:   fresh,
		}
	})
}

// Render returns the HTML markup for list.
func (r *Renderer) Render(list []comment.Comment) (string, error) {
	return HTML(r.Cards(list))
}

// Settled reports whether the highlight of the comment with id has expired.
// Comments that were never new are not tracked and report false.
func (r *Renderer) Settled(id int64) bool {
	return r.isSettled(id)
}

// Reset cancels every pending settle timer and forgets settled comments. Call
// it when cards are removed from the display. No OnSettle call for a timer
// scheduled before Reset happens after it returns.
func (r *Renderer) Reset() {
	r.settleMu.Lock()
	defer r.settleMu.Unlock()

	r.gen++
	r.settler.CancelAll()

	r.mu.Lock()
	r.settled = make(map[int64]struct{})
	r.mu.Unlock()
}

// PendingSettles returns the number of highlight timers still running.
func (r *Renderer) PendingSettles() int {
	return r.settler.Pending()
}

func (r *Renderer) isSettled(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.settled[id]
	return ok
}

func (r *Renderer) scheduleSettle(id int64) {
	r.settleMu.Lock()
	defer r.settleMu.Unlock()

	gen := r.gen
	r.settler.Schedule(id, func() { r.settle(id, gen) })
}

// settle clears the highlight of id unless the renderer was reset after the
// timer was scheduled.
func (r *Renderer) settle(id int64, gen uint64) {
	r.settleMu.Lock()
	defer r.settleMu.Unlock()

	if gen != r.gen {
		return
	}

	r.mu.Lock()
	r.settled[id] = struct{}{}
	r.mu.Unlock()

	r.log.Debug().Int64("id", id).Msg("comment settled")
	if r.onSettle != nil {
		r.onSettle(id)
	}
}

var cardsTemplate = template.Must(template.New("cards").Parse(`
{{- range . -}}
<div class="card comment-card{{ if .Fresh }} new-comment{{ end }}" data-comment-id="{{ .ID }}">
  <div class="card-body">
    <div class="comment-header">
      <h6 class="comment-author">{{ .Author }}</h6>
      <small class="comment-time" title="{{ .Date }}">{{ .TimeAgo }} • {{ .Date }}</small>
      {{- if .Fresh }}
      <span class="badge">New</span>
      {{- end }}
    </div>
    <p class="card-text">{{ .Message }}</p>
  </div>
</div>
{{ end -}}
`))

// HTML renders cards as markup. Author and message text is escaped.
func HTML(cards []Card) (string, error) {
	var buf bytes.Buffer
	if err := cardsTemplate.Execute(&buf, cards); err != nil {
		return "", fmt.Errorf("render cards: %w", err)
	}
	return buf.String(), nil
}
