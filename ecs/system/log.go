package system

import "log"

// onceLogger rate-limits per-tick warnings to a single line per key.
// Dangling references and singleton violations recur every tick until
// the world heals; logging them once keeps the log readable.
type onceLogger struct {
	seen map[string]bool
}

func (l *onceLogger) warnf(key, format string, args ...any) {
	if l.seen == nil {
		l.seen = map[string]bool{}
	}
	if l.seen[key] {
		return
	}
	l.seen[key] = true
	log.Printf(format, args...)
}
