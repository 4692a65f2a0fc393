package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"comic99/internal/domain"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface shared by the commands and the fetchers.
type Logger interface {
	Log() *zerolog.Event
	Fatal() *zerolog.Event
	Error() *zerolog.Event
	Warn() *zerolog.Event
	Info() *zerolog.Event
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	With() zerolog.Context
	SetLogLevel(level string)
}

type DefaultLogger struct {
	log     zerolog.Logger
	level   zerolog.Level
	writers []io.Writer
}

func New(cfg *domain.Config) Logger {
	l := &DefaultLogger{
		writers: make([]io.Writer, 0),
		level:   zerolog.DebugLevel,
	}

	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogPath == "" {
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.DateTime,
		})
	} else {
		l.writers = append(l.writers, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
		})
	}

	l.log = zerolog.New(io.MultiWriter(l.writers...)).With().Timestamp().Logger()
	l.SetLogLevel(cfg.LogLevel)

	return l
}

func (l *DefaultLogger) SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}

	l.level = lvl
	l.log = l.log.Level(lvl)
}

func (l *DefaultLogger) Log() *zerolog.Event {
	return l.log.Log()
}

func (l *DefaultLogger) Fatal() *zerolog.Event {
	return l.log.Fatal()
}

func (l *DefaultLogger) Error() *zerolog.Event {
	return l.log.Error()
}

func (l *DefaultLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

func (l *DefaultLogger) Info() *zerolog.Event {
	return l.log.Info()
}

func (l *DefaultLogger) Trace() *zerolog.Event {
	return l.log.Trace()
}

func (l *DefaultLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

func (l *DefaultLogger) With() zerolog.Context {
	return l.log.With()
}
