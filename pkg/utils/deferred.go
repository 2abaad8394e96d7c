// Package utils holds small helpers shared by the binary.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers writes until Flush. The TUI owns the terminal while
// it runs, so log output is held back and printed after it exits.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush writes everything buffered so far to out, one line per Write call,
// and empties the buffer. Line-at-a-time writes suit zerolog.ConsoleWriter,
// which decodes a single event per call.
func (w *DeferredWriter) Flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for w.buf.Len() > 0 {
		line, err := w.buf.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := out.Write(line); werr != nil {
				w.buf.Reset()
				return werr
			}
		}
		if err != nil {
			break
		}
	}

	w.buf.Reset()
	return nil
}
