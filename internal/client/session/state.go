// Package session holds the client's authentication state for the lifetime
// of the process.
//
// State changes go through Reduce, a pure function over four actions. The
// Container wraps it with a mutex, persistence of the "remember me" subset
// to the local metadata store, and change notifications. Front ends get a
// *Container handed to them at construction; there is no package-level
// instance.
package session

import "github.com/dmitrijs2005/authdemo/internal/client/models"

// State is a snapshot of the authentication state.
//
// IsAuthenticated is true iff User != nil and Token != "".
type State struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	Loading         bool
}

// Initial is the state before the startup restore has run.
func Initial() State {
	return State{Loading: true}
}

type ActionType int

const (
	ActionLoginSuccess ActionType = iota + 1
	ActionLogout
	ActionSetLoading
	ActionRestoreSession
)

func (a ActionType) String() string {
	switch a {
	case ActionLoginSuccess:
		return "LOGIN_SUCCESS"
	case ActionLogout:
		return "LOGOUT"
	case ActionSetLoading:
		return "SET_LOADING"
	case ActionRestoreSession:
		return "RESTORE_SESSION"
	default:
		return "UNKNOWN"
	}
}

// Action is a transition request. User and Token are read by LoginSuccess
// and RestoreSession, Loading by SetLoading.
type Action struct {
	Type    ActionType
	User    *models.User
	Token   string
	Loading bool
}

// Reduce returns the state that follows s under a. Unknown actions return s.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionLoginSuccess, ActionRestoreSession:
		s.User = a.User
		s.Token = a.Token
		s.IsAuthenticated = true
		s.Loading = false
	case ActionLogout:
		s.User = nil
		s.Token = ""
		s.IsAuthenticated = false
		s.Loading = false
	case ActionSetLoading:
		s.Loading = a.Loading
	}
	return s
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
