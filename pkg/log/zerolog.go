package log

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZerologLogger returns a zerolog-backed Logger writing to w. When console
// is true the output is the human-readable zerolog.ConsoleWriter format,
// otherwise one JSON object per line.
func NewZerologLogger(w io.Writer, level Level, console bool) *ZerologLogger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl, level: level}
}

// Zerolog exposes the underlying zerolog.Logger.
func (z *ZerologLogger) Zerolog() zerolog.Logger {
	return z.zl
}

func (z *ZerologLogger) Debug(msg string, fields ...any) {
	z.zl.Debug().Fields(fields).Msg(msg)
}

func (z *ZerologLogger) Info(msg string, fields ...any) {
	z.zl.Info().Fields(fields).Msg(msg)
}

func (z *ZerologLogger) Warn(msg string, fields ...any) {
	z.zl.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level. A leading error field is attached with Err and,
// when it carries structured context, embedded as an object.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	e := z.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = withError(e, err)
			fields = fields[1:]
		}
	}
	e.Fields(fields).Msg(msg)
}

func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: z.zl.With().Fields(fields).Logger(), level: z.level}
}

func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= z.level
}

// WarnFunc returns a function suitable for errors.SetZerologWarnFunc.
func (z *ZerologLogger) WarnFunc() func(error) {
	return func(w error) {
		withError(z.zl.Warn(), w).Msg("chart warning")
	}
}

func withError(e *zerolog.Event, err error) *zerolog.Event {
	e = e.Err(err)
	var m zerolog.LogObjectMarshaler
	if errors.As(err, &m) {
		e = e.EmbedObject(m)
	}
	return e
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
