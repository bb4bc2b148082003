package ray

import (
	"fmt"
	"sync"
)

var (
	defaultsMu     sync.RWMutex
	defaultOptions []Option
)

// SetDefaults sets the options Ray and Rd create their sessions with.
func SetDefaults(opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultOptions = append([]Option(nil), opts...)
}

func defaults() []Option {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultOptions
}

// Ray starts a session and, when values are given, logs them as one entry,
// each rendered with %#v.
func Ray(values ...any) *Session {
	s := New(defaults()...)
	if len(values) == 0 {
		return s
	}
	return s.Log(Render(values...)...)
}

// Rd is Ray followed by Die(1).
func Rd(values ...any) {
	Ray(values...).Die(1)
}

// Render formats values the way Ray logs them.
func Render(values ...any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%#v", v)
	}
	return out
}
