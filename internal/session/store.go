// Package session keeps one console shell per browser. A session's shell is
// only ever touched through Do, which serializes every screen update.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

type Session struct {
	ID uuid.UUID

	mu    sync.Mutex
	shell *ui.Shell

	lastSeen time.Time // guarded by Store.mu
}

// Do runs fn with exclusive access to the session's shell.
func (s *Session) Do(fn func(shell *ui.Shell)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.shell)
}

// Store holds the live sessions in memory. Nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	newShell func() *ui.Shell
	now      func() time.Time
}

func NewStore(ttl time.Duration, newShell func() *ui.Shell) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		newShell: newShell,
		now:      time.Now,
	}
}

// Get returns session id and marks it as seen.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if ok {
		s.lastSeen = st.now()
	}
	return s, ok
}

// Create starts a session with a new id and an unmounted shell.
func (st *Store) Create() *Session {
	s := &Session{ID: uuid.New(), shell: st.newShell()}
	st.mu.Lock()
	defer st.mu.Unlock()
	s.lastSeen = st.now()
	st.sessions[s.ID] = s
	return s
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := st.now().Add(-st.ttl)
	n := 0
	for id, s := range st.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.Printf("session sweep: removed %d idle sessions, %d active", n, st.Len())
			}
		}
	}
}
