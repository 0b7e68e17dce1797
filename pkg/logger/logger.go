package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Options selects the level and output format of the process logger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

func Init(opts Options) {
	Log = New(os.Stdout, opts)
	slog.SetDefault(Log)
}

// New builds a logger writing to w. JSON is the production format;
// text output is coloured only when w is a terminal.
func New(w io.Writer, opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)

	if strings.EqualFold(opts.Format, "text") {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(w),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "error" && a.Value.Kind() == slog.KindAny {
					if err, ok := a.Value.Any().(error); ok {
						return tint.Err(err)
					}
				}
				return a
			},
		}))
	}

	// JSON handler for production-ready logging
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
