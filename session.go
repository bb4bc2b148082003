package ray

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akave-ai/goray/internal/config"
	"github.com/akave-ai/goray/internal/transport"
)

// DefaultEndpoint is the address the Ray app listens on.
const DefaultEndpoint = config.DefaultEndpoint

// logOutput receives the console logs of sessions built by New and NewFromEnv.
var logOutput io.Writer = os.Stderr

// Session accumulates events and posts them to the inspector. Build one with
// New or NewFromEnv; the zero value starts disabled and sends nothing until
// enabled, and then only through transport.Discard.
type Session struct {
	request    Request
	enabled    bool
	endpoint   string
	transport  transport.Transport
	logger     zerolog.Logger
	exit       func(int)
	callerInfo bool
}

// Option configures a Session.
type Option func(*Session)

// WithTransport replaces the HTTP transport, e.g. with a recorder in tests.
func WithTransport(t transport.Transport) Option {
	return func(s *Session) { s.transport = t }
}

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Session) { s.endpoint = endpoint }
}

// WithLogger sets the logger used for delivery failures and Die.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithExit replaces os.Exit as the function Die calls.
func WithExit(exit func(int)) Option {
	return func(s *Session) { s.exit = exit }
}

// WithCallerInfo fills each Origin from the call site instead of the fixed
// placeholder values.
func WithCallerInfo() Option {
	return func(s *Session) { s.callerInfo = true }
}

// StartDisabled creates the session with dispatch turned off.
func StartDisabled() Option {
	return func(s *Session) { s.enabled = false }
}

// New starts a session with a fresh uuid.
func New(opts ...Option) *Session {
	s := &Session{
		request: Request{
			UUID:     uuid.NewString(),
			Payloads: []Content{},
			Meta:     newMeta(),
		},
		enabled:  true,
		endpoint: DefaultEndpoint,
		logger: zerolog.New(zerolog.ConsoleWriter{Out: logOutput}).
			Level(zerolog.WarnLevel).With().Timestamp().Logger(),
		exit: os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.transport == nil {
		s.transport = transport.NewHTTP(&http.Client{Timeout: config.DefaultClient().Timeout})
	}
	return s
}

// NewFromEnv builds a session from RAY_* environment variables (see
// config.Client). Explicit opts are applied last and win.
func NewFromEnv(opts ...Option) (*Session, error) {
	return NewFromEnvWith(nil, opts...)
}

// NewFromEnvWith is NewFromEnv with overrides keyed by config name (e.g.
// "endpoint"). Overrides replace environment values before validation.
func NewFromEnvWith(overrides map[string]any, opts ...Option) (*Session, error) {
	cfg, err := config.LoadClientWith(overrides)
	if err != nil {
		return nil, fmt.Errorf("ray config: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: logOutput}).
		Level(cfg.Level()).With().Timestamp().Logger()
	// The log transport emits at info; it must not be muted by the warn default.
	t, err := transport.Default.Create(cfg.Transport, transport.Options{
		Timeout: cfg.Timeout,
		Logger:  logger.Level(min(cfg.Level(), zerolog.InfoLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("ray transport: %w", err)
	}

	base := []Option{WithLogger(logger), WithTransport(t), WithEndpoint(cfg.Endpoint)}
	if !cfg.Enabled {
		base = append(base, StartDisabled())
	}
	if cfg.CallerInfo {
		base = append(base, WithCallerInfo())
	}
	return New(append(base, opts...)...), nil
}

// UUID identifies the session on the inspector side.
func (s *Session) UUID() string { return s.request.UUID }

// Request returns a copy of the accumulated request.
func (s *Session) Request() Request {
	r := s.request
	r.Payloads = make([]Content, len(s.request.Payloads))
	copy(r.Payloads, s.request.Payloads)
	return r
}

// Log sends pre-rendered values as one log entry.
func (s *Session) Log(values ...string) *Session {
	return s.push(newLogMessage(values))
}

// Text sends a plain string.
func (s *Session) Text(value string) *Session {
	return s.push(TextMessage{Label: LabelText, Content: value})
}

// Color marks the session with a color; see ResolveColor.
func (s *Session) Color(name string) *Session {
	return s.push(ColorMessage{Color: ResolveColor(name)})
}

// HTML sends raw HTML for the inspector to render.
func (s *Session) HTML(value string) *Session {
	return s.push(HTMLMessage{Label: LabelHTML, Content: value})
}

// ClearAll clears every screen in the inspector.
func (s *Session) ClearAll() *Session {
	return s.push(ClearAllMessage{Label: LabelClearAll})
}

func (s *Session) Confetti() *Session {
	return s.push(ConfettiMessage{Label: LabelConfetti})
}

// Charles sends the fixed CharlesContent marker.
func (s *Session) Charles() *Session {
	return s.push(CharlesMessage{Content: CharlesContent})
}

// NewScreen opens a new screen; name may be empty.
func (s *Session) NewScreen(name string) *Session {
	return s.push(NewScreenMessage{Name: name})
}

// ClearScreen is NewScreen without a name.
func (s *Session) ClearScreen() *Session {
	return s.NewScreen("")
}

func (s *Session) Disable() *Session {
	s.enabled = false
	return s
}

func (s *Session) Enable() *Session {
	s.enabled = true
	return s
}

func (s *Session) Disabled() bool { return !s.enabled }

func (s *Session) Enabled() bool { return s.enabled }

// Die logs the status code and stops the program through the exit function
// (os.Exit by default). Unlike the rest of the API it does not return, and a
// deferred recover cannot intercept it. If a replaced exit function returns,
// the calling goroutine is terminated with runtime.Goexit.
func (s *Session) Die(code int) {
	s.logger.Error().
		Str("uuid", s.request.UUID).
		Int("code", code).
		Msgf("ray: exited with code %d", code)
	exit := s.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(code)
	runtime.Goexit()
}

// push appends msg and dispatches. Entries accumulate even while disabled.
func (s *Session) push(msg Message) *Session {
	origin := placeholderOrigin
	if s.callerInfo {
		origin = callerOrigin()
	}
	s.request.Payloads = append(s.request.Payloads, wrap(msg, origin))
	s.send()
	return s
}

// send posts the whole request. Failures are logged at debug level and
// otherwise ignored.
func (s *Session) send() {
	if !s.enabled {
		return
	}
	if s.transport == nil {
		s.transport = transport.Discard
	}
	body, err := json.Marshal(s.request)
	if err != nil {
		s.logger.Debug().Err(err).Msg("ray: encode request")
		return
	}
	if err := s.transport.Send(s.endpoint, body); err != nil {
		s.logger.Debug().Err(err).Str("endpoint", s.endpoint).Msg("ray: send failed")
	}
}
