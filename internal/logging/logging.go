package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to w at the given level name.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "promptsia",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// OpenFile appends to the log file at path. The interactive front end owns
// the terminal, so it logs here instead of stderr.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := New(f, level)
	logger.SetFormatter(log.LogfmtFormatter)
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
