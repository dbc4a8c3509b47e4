package session

import "errors"

// State is the login state of a dashboard session.
type State string

const (
	LoggedOut State = "logged_out"
	LoggedIn  State = "logged_in"
)

// View is one of the three mutually exclusive dashboard sections.
type View string

const (
	Overview  View = "overview"
	DataEntry View = "data_entry"
	Analysis  View = "analysis"
)

var (
	ErrNotLoggedIn = errors.New("session: login required")
	ErrUnknownView = errors.New("session: unknown view")
)

// Session is the per-request dashboard context. It is rebuilt from the
// request credentials and never shared between requests.
type Session struct {
	Username string `json:"username,omitempty"`
	State    State  `json:"state"`
	View     View   `json:"view,omitempty"`
}

// Anonymous returns a logged-out session.
func Anonymous() *Session {
	return &Session{State: LoggedOut}
}

// For returns a logged-in session on the overview.
func For(username string) *Session {
	return &Session{Username: username, State: LoggedIn, View: Overview}
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.State == LoggedIn
}

// Navigate switches the current view. Views are only reachable once logged
// in.
func (s *Session) Navigate(v View) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	switch v {
	case Overview, DataEntry, Analysis:
		s.View = v
		return nil
	}
	return ErrUnknownView
}

// Logout drops the identity and the current view.
func (s *Session) Logout() {
	s.Username = ""
	s.State = LoggedOut
	s.View = ""
}
