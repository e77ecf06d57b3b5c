package lookup

import (
	"context"
	"sync"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// State is the user-selected search configuration.
type State struct {
	Mode     domain.SearchMode
	Language domain.Language
}

// DefaultState is general search with English recognition.
func DefaultState() State {
	return State{Mode: domain.SearchModeGeneral, Language: domain.LanguageEnglish}
}

// Session tracks one interactive user's State. Every change bumps a
// generation counter; results issued under an older generation are stale.
type Session struct {
	mu         sync.Mutex
	state      State
	generation uint64
}

// NewSession creates a Session. Invalid fields of initial fall back to
// DefaultState.
func NewSession(initial State) *Session {
	def := DefaultState()
	if !initial.Mode.IsValid() {
		initial.Mode = def.Mode
	}
	if !initial.Language.IsValid() {
		initial.Language = def.Language
	}
	return &Session{state: initial, generation: 1}
}

// State returns the current state and generation.
func (s *Session) State() (State, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.generation
}

// SetMode switches the search mode.
func (s *Session) SetMode(mode domain.SearchMode) (State, error) {
	if !mode.IsValid() {
		return State{}, domain.NewValidationError("mode", "must be one of general, name, address")
	}
	return s.update(func(st *State) { st.Mode = mode }), nil
}

// CycleMode advances general -> name -> address -> general.
func (s *Session) CycleMode() State {
	return s.update(func(st *State) { st.Mode = st.Mode.Next() })
}

// ToggleLanguage switches between English and Ukrainian recognition.
func (s *Session) ToggleLanguage() State {
	return s.update(func(st *State) { st.Language = st.Language.Toggle() })
}

// IsCurrent reports whether generation is still the latest.
func (s *Session) IsCurrent(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation == generation
}

// Query runs raw through svc under the current state. ok is false when the
// state changed while the query was running; the result must then be
// discarded.
func (s *Session) Query(ctx context.Context, svc *Service, raw string) (res *Result, ok bool, err error) {
	state, gen := s.State()
	res, err = svc.Query(ctx, state, raw)
	if err != nil {
		return nil, s.IsCurrent(gen), err
	}
	res.Generation = gen
	return res, s.IsCurrent(gen), nil
}

func (s *Session) update(fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.generation++
	return s.state
}
