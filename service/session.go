package service

import (
	"sync"

	"github.com/adelantos/haberes/dto"
	"github.com/google/uuid"
)

// Session accumulates the results of one user's workflow: salary figures
// after upload, the simulation after validation. Actions within a session
// are sequential; the store mutex only guards the map across sessions.
type Session struct {
	ID         string
	Facts      dto.PayslipFacts
	Totals     dto.ConceptTotals
	Detected   []dto.ConceptLine
	Salary     *SalaryContext
	Simulation *dto.SimulationResult
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// GetOrCreate returns the session for id, minting a new one when id is
// empty or unknown.
func (s *SessionStore) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &Session{ID: uuid.NewString()}
	s.sessions[sess.ID] = sess
	return sess
}

func (s *SessionStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
