package observability

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// stdLogger writes leveled, field-annotated lines to a standard library
// *log.Logger. It is the concrete Logger wired into cmd/server when no other
// sink is configured; library code should keep defaulting to NopLogger.
type stdLogger struct {
	out *log.Logger
	minLevel int
	fields []Field
}

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

func levelRank(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// NewStdLogger returns a Logger backed by the standard library, writing to
// os.Stderr with a microsecond timestamp prefix, logging at Info level and
// above.
func NewStdLogger() Logger {
	return NewStdLoggerLevel("info")
}

// NewStdLoggerLevel is NewStdLogger with an explicit minimum level
// ("debug", "info", "warn", "error"), as read from config.Config.LogLevel.
func NewStdLoggerLevel(level string) Logger {
	return &stdLogger{
		out: log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
		minLevel: levelRank(level),
	}
}

func (l *stdLogger) log(rank int, level, msg string, fields ...Field) {
	if rank < l.minLevel {
		return
	}
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, f := range append(append([]Field{}, l.fields...), fields...) {
		b.WriteByte(' ')
		b.WriteString(f.Key())
		b.WriteByte('=')
		b.WriteString(toString(f.Value()))
	}
	l.out.Println(b.String())
}

func (l *stdLogger) Debug(msg string, fields ...Field) { l.log(levelDebug, "DEBUG", msg, fields...) }
func (l *stdLogger) Info(msg string, fields ...Field) { l.log(levelInfo, "INFO", msg, fields...) }
func (l *stdLogger) Warn(msg string, fields ...Field) { l.log(levelWarn, "WARN", msg, fields...) }
func (l *stdLogger) Error(msg string, fields ...Field) { l.log(levelError, "ERROR", msg, fields...) }

func (l *stdLogger) With(fields ...Field) Logger {
	return &stdLogger{out: l.out, minLevel: l.minLevel, fields: append(append([]Field{}, l.fields...), fields...)}
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		if t == nil {
			return "<nil>"
		}
		return t.Error()
	default:
		return fmt.Sprintf("%v", t)
	}
}
