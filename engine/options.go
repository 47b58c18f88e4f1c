package engine

import (
	"time"

	"github.com/dshills/textcore/buffer"
	"github.com/dshills/textcore/config"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial document content.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.content = content
	}
}

// WithURI sets the document URI.
func WithURI(uri string) Option {
	return func(e *Engine) {
		e.uri = uri
	}
}

// WithLanguageID sets the document language identifier.
func WithLanguageID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.languageID = id
		}
	}
}

// WithLineEnding forces the line ending style instead of detecting it.
func WithLineEnding(le buffer.LineEnding) Option {
	return func(e *Engine) {
		e.ending = le
		e.forceEnding = true
	}
}

// WithMaxUndoEntries bounds the undo stack.
func WithMaxUndoEntries(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxUndo = n
		}
	}
}

// WithGroupWindow sets the idle timeout for undo grouping.
func WithGroupWindow(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.groupWindow = d
		}
	}
}

// WithTabWidth sets the buffer tab width.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithGroupErrorHandler receives errors from groups that execute on
// auto-close, where no caller is on the stack to return them to.
func WithGroupErrorHandler(fn func(error)) Option {
	return func(e *Engine) {
		e.groupErr = fn
	}
}

// WithConfig applies loaded configuration defaults.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		if cfg.MaxUndoEntries > 0 {
			e.maxUndo = cfg.MaxUndoEntries
		}
		if d := time.Duration(cfg.GroupWindow); d > 0 {
			e.groupWindow = d
		}
		if cfg.TabWidth > 0 {
			e.tabWidth = cfg.TabWidth
		}
		switch cfg.LineEnding {
		case "lf":
			e.ending = buffer.LineEndingLF
			e.forceEnding = true
		case "crlf":
			e.ending = buffer.LineEndingCRLF
			e.forceEnding = true
		case "cr":
			e.ending = buffer.LineEndingCR
			e.forceEnding = true
		}
	}
}
