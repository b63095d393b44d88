package ringalloc

import "github.com/charmbracelet/log"

// Option configures a Ring at construction.
type Option func(*Ring)

// WithLogger sets the logger that receives contract violations and arena
// lifecycle events. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(r *Ring) {
		if l != nil {
			r.log = l
		}
	}
}
