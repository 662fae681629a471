package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = map[Level]string{
	LevelDebug: "[DEBUG] ",
	LevelInfo:  "[INFO] ",
	LevelWarn:  "[WARN] ",
	LevelError: "[ERROR] ",
}

// StdLogger is a simple leveled logger on top of the standard log package.
type StdLogger struct {
	out   *log.Logger
	min   Level
	exitf func(code int)
}

type Option func(*StdLogger)

// WithWriter sends output to w instead of stderr.
func WithWriter(w io.Writer) Option {
	return func(l *StdLogger) { l.out = log.New(w, "", log.LstdFlags) }
}

// WithMinLevel drops messages below min.
func WithMinLevel(min Level) Option {
	return func(l *StdLogger) { l.min = min }
}

// LevelForEnv keeps debug output for development only.
func LevelForEnv(env string) Level {
	if env == "development" || env == "" {
		return LevelDebug
	}
	return LevelInfo
}

// NewStdLogger creates a new StdLogger.
func NewStdLogger(opts ...Option) usecasecontract.IAppLogger {
	l := &StdLogger{
		out:   log.New(os.Stderr, "", log.LstdFlags),
		min:   LevelDebug,
		exitf: os.Exit,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *StdLogger) logf(level Level, format string, args ...interface{}) {
	if level < l.min {
		return
	}
	l.out.Output(3, levelTags[level]+fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Fatalf logs regardless of level and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	l.out.Output(2, "[FATAL] "+fmt.Sprintf(format, args...))
	l.exitf(1)
}
