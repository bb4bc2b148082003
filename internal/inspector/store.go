package inspector

import (
	"sync"
	"time"
)

// Received is the latest state of one client session.
type Received struct {
	UUID       string            `json:"uuid"`
	ReceivedAt time.Time         `json:"received_at"`
	Dispatches int               `json:"dispatches"`
	Payloads   []Payload         `json:"payloads"`
	Meta       map[string]string `json:"meta"`
}

// Store keeps the most recent sessions. Clients resend their whole request on
// every dispatch, so a newer envelope replaces the stored one for its uuid.
type Store struct {
	mu     sync.Mutex
	limit  int
	order  []string // oldest first
	byUUID map[string]*Received
	now    func() time.Time
}

// NewStore returns a Store holding at most limit sessions.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = 1
	}
	return &Store{
		limit:  limit,
		byUUID: make(map[string]*Received),
		now:    time.Now,
	}
}

// Put records env and returns how many of its payloads were already known.
func (s *Store) Put(env *Envelope) (seen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byUUID[env.UUID]
	if ok {
		seen = len(rec.Payloads)
		s.touch(env.UUID)
	} else {
		rec = &Received{UUID: env.UUID}
		s.byUUID[env.UUID] = rec
		s.order = append(s.order, env.UUID)
		s.evict()
	}
	rec.ReceivedAt = s.now()
	rec.Dispatches++
	rec.Payloads = env.Payloads
	rec.Meta = env.Meta
	if seen > len(env.Payloads) {
		seen = 0
	}
	return seen
}

// Get returns the stored session by uuid.
func (s *Store) Get(uuid string) (Received, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byUUID[uuid]
	if !ok {
		return Received{}, false
	}
	return *rec, true
}

// Recent returns stored sessions, most recently updated first.
func (s *Store) Recent() []Received {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Received, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, *s.byUUID[s.order[i]])
	}
	return out
}

// touch moves uuid to the newest position.
func (s *Store) touch(uuid string) {
	for i, id := range s.order {
		if id == uuid {
			s.order = append(append(s.order[:i:i], s.order[i+1:]...), uuid)
			return
		}
	}
}

func (s *Store) evict() {
	for len(s.order) > s.limit {
		delete(s.byUUID, s.order[0])
		s.order = s.order[1:]
	}
}
