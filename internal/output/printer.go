package output

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Level is the minimum severity a printer reports.
type Level uint8

const (
	// LevelDebug reports everything.
	LevelDebug Level = iota
	// LevelInfo reports informational messages and above.
	LevelInfo
	// LevelWarning reports warnings and errors. This is the default.
	LevelWarning
	// LevelError reports errors only.
	LevelError
)

// String returns the canonical level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// zerologLevel maps the level onto the underlying logger's scale.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// ParseLevel resolves a level by name, case-insensitively. Unknown names
// fall back to LevelWarning.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	default:
		return LevelWarning
	}
}

// Printer writes log messages to a sink. The zero value is not usable; use
// one of the constructors.
type Printer struct {
	log    zerolog.Logger
	closer io.Closer
}

// NewPrinter creates a printer writing structured output to w. Used by the
// other constructors and directly by tests.
func NewPrinter(w io.Writer, level Level) *Printer {
	return &Printer{log: zerolog.New(w).Level(level.zerologLevel()).With().Timestamp().Logger()}
}

// NewConsolePrinter creates a printer writing human-readable output to
// stderr. Construction never fails; this is the fallback sink.
func NewConsolePrinter(level Level) *Printer {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return &Printer{log: zerolog.New(w).Level(level.zerologLevel()).With().Timestamp().Logger()}
}

// NewFilePrinter creates a printer appending structured output to the file
// at path, creating it if needed.
func NewFilePrinter(path string, level Level) (*Printer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	p := NewPrinter(f, level)
	p.closer = f
	return p, nil
}

// NewNullPrinter creates a printer that discards everything.
func NewNullPrinter() *Printer {
	return &Printer{log: zerolog.Nop()}
}

// Debug logs a debug message.
func (p *Printer) Debug(format string, args ...any) {
	p.log.Debug().Msgf(format, args...)
}

// Info logs an informational message.
func (p *Printer) Info(format string, args ...any) {
	p.log.Info().Msgf(format, args...)
}

// Warn logs a warning.
func (p *Printer) Warn(format string, args ...any) {
	p.log.Warn().Msgf(format, args...)
}

// Err logs an error message.
func (p *Printer) Err(format string, args ...any) {
	p.log.Error().Msgf(format, args...)
}

// Close releases the underlying sink, if it holds one. Safe to call on
// console and null printers.
func (p *Printer) Close() error {
	if p.closer == nil {
		return nil
	}
	c := p.closer
	p.closer = nil
	return c.Close()
}
