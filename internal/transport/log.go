package transport

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
)

// Log writes each request to a zerolog logger instead of the network.
// Useful where no inspector is running, e.g. CI.
type Log struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// NewLog returns a Log transport emitting at level.
func NewLog(logger zerolog.Logger, level zerolog.Level) *Log {
	return &Log{logger: logger, level: level}
}

func (l *Log) Send(endpoint string, body []byte) error {
	if !json.Valid(body) {
		return errors.New("log transport: body is not valid JSON")
	}
	l.logger.WithLevel(l.level).
		Str("endpoint", endpoint).
		RawJSON("request", body).
		Msg("ray request")
	return nil
}

type logFactory struct{}

func (logFactory) Name() string { return "log" }

func (logFactory) Info() Info {
	return Info{Name: "log", Description: "Write each request to the client logger at info level."}
}

func (logFactory) Create(opts Options) (Transport, error) {
	return NewLog(opts.Logger, zerolog.InfoLevel), nil
}
