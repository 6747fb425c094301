package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// newLogger creates a logger writing to w. Color is used only when w is a
// terminal and the config allows it.
func newLogger(w io.Writer, cfg *Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	color := !cfg.NoColor
	if f, ok := w.(*os.File); !ok || !isTerminal(f) {
		color = false
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	})
	return slog.New(h), nil
}
