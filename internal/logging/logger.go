// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/dhandiary-stats/internal/config"
)

// ServiceName is the "service" field on every line.
const ServiceName = "dhandiary-stats"

// Config selects level, output format and writer for the global logger.
// Zero values fall back to info, json and os.Stderr.
type Config struct {
	Level     string
	Format    string // json or console
	Caller    bool
	Timestamp bool
	Output    io.Writer
}

// DefaultConfig is what the process logs with before Init runs.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Timestamp: true, Output: os.Stderr}
}

// FromConfig maps the LOG_* settings onto a timestamped Config.
func FromConfig(c config.LoggingConfig) Config {
	return Config{
		Level:     c.Level,
		Format:    c.Format,
		Caller:    c.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var global struct {
	sync.RWMutex
	logger zerolog.Logger
}

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	Init(DefaultConfig())
}

// Init replaces the global logger. Calling it again reconfigures output.
func Init(cfg Config) {
	l := build(cfg)
	global.Lock()
	global.logger = l
	global.Unlock()
}

func build(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	c := zerolog.New(out).With().Str("service", ServiceName)
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}
	return c.Logger()
}

// parseLevel accepts zerolog level names plus "warning". Anything it
// cannot read becomes info.
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	global.RLock()
	defer global.RUnlock()
	return global.logger
}

func at(level zerolog.Level) *zerolog.Event {
	l := Logger()
	return l.WithLevel(level)
}

func Debug() *zerolog.Event { return at(zerolog.DebugLevel) }
func Info() *zerolog.Event  { return at(zerolog.InfoLevel) }
func Warn() *zerolog.Event  { return at(zerolog.WarnLevel) }
func Error() *zerolog.Event { return at(zerolog.ErrorLevel) }

// Fatal exits the process with status 1 once the event is sent.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// NewTestLogger writes JSON lines to w, for tests that assert on log output.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
