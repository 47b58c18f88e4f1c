package buffer

// Option configures a LineBuffer during creation.
type Option func(*LineBuffer)

// WithLineEnding forces the line ending style instead of detecting it
// from the initial content.
func WithLineEnding(le LineEnding) Option {
	return func(b *LineBuffer) {
		b.ending = le
	}
}

// WithTabWidth sets the tab width for the buffer.
func WithTabWidth(width int) Option {
	return func(b *LineBuffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}
