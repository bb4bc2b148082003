package inspector

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

const maxBody = 8 << 20

// Ingest accepts Ray requests, renders payloads it has not shown yet and
// stores the envelope.
type Ingest struct {
	store    *Store
	renderer *Renderer
	logger   zerolog.Logger
}

// NewIngest builds the ingest endpoint. renderer may be nil.
func NewIngest(store *Store, renderer *Renderer, logger zerolog.Logger) *Ingest {
	return &Ingest{store: store, renderer: renderer, logger: logger}
}

func (i *Ingest) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		http.Error(w, "read error", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	env, err := DecodeEnvelope(body)
	if err != nil {
		i.logger.Warn().Err(err).Int("bytes", len(body)).Msg("rejected request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seen := i.store.Put(env)
	fresh := env.Payloads[seen:]
	i.logger.Debug().
		Str("uuid", env.UUID).
		Int("payloads", len(env.Payloads)).
		Int("new", len(fresh)).
		Msg("received request")
	if i.renderer != nil {
		i.renderer.Render(env.UUID, fresh)
	}
	w.WriteHeader(http.StatusAccepted)
}
