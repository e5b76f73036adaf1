package qrconfig

import "sync"

// LogoRef identifies the logo currently attached to the configuration. The
// decoded image itself is owned by the renderer.
type LogoRef struct {
	Name   string `json:"name"`
	MIME   string `json:"mime"`
	Size   int    `json:"size"`
	Digest string `json:"digest"`
}

// State is everything the customization form owns.
type State struct {
	Config      QRConfig    `json:"config"`
	ContentType ContentType `json:"contentType"`
	Logo        *LogoRef    `json:"logo,omitempty"`
}

// InitialState is the state of a fresh session.
func InitialState() State {
	return State{Config: Default(), ContentType: ContentURL}
}

// Action is a single user intent fed to Reduce.
type Action interface {
	apply(State) (State, error)
}

// SetFieldAction replaces one QRConfig field.
type SetFieldAction struct {
	Name  string
	Value any
}

func (a SetFieldAction) apply(s State) (State, error) {
	cfg, err := SetField(s.Config, a.Name, a.Value)
	if err != nil {
		return s, err
	}
	s.Config = cfg
	return s, nil
}

// SetContentTypeAction switches the content grouping.
type SetContentTypeAction struct {
	Type ContentType
}

func (a SetContentTypeAction) apply(s State) (State, error) {
	t, err := ParseContentType(string(a.Type))
	if err != nil {
		return s, err
	}
	s.ContentType = t
	return s, nil
}

// ApplySuggestionAction overwrites the style fields with a suggestion.
type ApplySuggestionAction struct {
	Suggestion StyleSuggestion
}

func (a ApplySuggestionAction) apply(s State) (State, error) {
	s.Config = ApplySuggestion(s.Config, a.Suggestion)
	return s, nil
}

// SetLogoAction attaches a logo reference.
type SetLogoAction struct {
	Logo LogoRef
}

func (a SetLogoAction) apply(s State) (State, error) {
	ref := a.Logo
	s.Logo = &ref
	return s, nil
}

// ClearLogoAction removes the logo.
type ClearLogoAction struct{}

func (ClearLogoAction) apply(s State) (State, error) {
	s.Logo = nil
	return s, nil
}

// ResetAction restores the initial state.
type ResetAction struct{}

func (ResetAction) apply(State) (State, error) {
	return InitialState(), nil
}

// Reduce applies a to s and returns the next state. s is never modified.
func Reduce(s State, a Action) (State, error) {
	return a.apply(s)
}

// Store owns the current State and is the only place it changes.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces a against the current state. changed is false when the
// action was rejected or produced an identical state.
func (s *Store) Dispatch(a Action) (next State, changed bool, err error) {
	return s.DispatchIf(a, nil)
}

// DispatchIf is Dispatch with a guard: when the action changes the state,
// accept is called with the candidate before it is committed. If accept
// fails the current state is kept and its error is returned.
func (s *Store) DispatchIf(a Action, accept func(State) error) (next State, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err = Reduce(s.state, a)
	if err != nil {
		return s.state, false, err
	}
	if equalState(s.state, next) {
		return s.state, false, nil
	}
	if accept != nil {
		if err := accept(next); err != nil {
			return s.state, false, err
		}
	}
	s.state = next
	return next, true, nil
}

func equalState(a, b State) bool {
	if a.Config != b.Config || a.ContentType != b.ContentType {
		return false
	}
	if a.Logo == nil || b.Logo == nil {
		return a.Logo == b.Logo
	}
	return *a.Logo == *b.Logo
}
