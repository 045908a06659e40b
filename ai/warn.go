package ai

import "github.com/charmbracelet/log"

// warnings logs each keyed warning at most once per controller.
type warnings struct {
	logger *log.Logger
	seen   map[string]bool
}

func newWarnings(logger *log.Logger) *warnings {
	if logger == nil {
		logger = log.Default()
	}
	return &warnings{logger: logger, seen: make(map[string]bool)}
}

func (w *warnings) warn(key, msg string, keyvals ...any) {
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	w.logger.Warn(msg, keyvals...)
}
