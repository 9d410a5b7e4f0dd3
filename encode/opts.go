package encode

import "time"

type EncState struct {
	timestamp *time.Time
	Color     func(ColorAttr, string) string
}

type Option func(*EncState)

// WithTimestamp refreshes the header DATE and TIME lines to t while
// encoding.
func WithTimestamp(t time.Time) Option {
	return func(es *EncState) { es.timestamp = &t }
}

// WithColors renders lines with terminal colors. Colored output is
// for viewing; it does not re-tokenize.
func WithColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
