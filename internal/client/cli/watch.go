package cli

import (
	"sync"

	"github.com/dmitrijs2005/authdemo/internal/client/session"
)

// sessionWatch follows container transitions. A session that ends without
// the user asking for it (the record store answered 401) is reported once
// before the next prompt.
type sessionWatch struct {
	mu            sync.Mutex
	authenticated bool
	userLogout    bool
	expired       bool

	cancel func()
}

func watchSession(c *session.Container) *sessionWatch {
	w := &sessionWatch{authenticated: c.Snapshot().IsAuthenticated}
	w.cancel = c.Subscribe(w.observe)
	return w
}

func (w *sessionWatch) observe(s session.State) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.authenticated && !s.IsAuthenticated {
		if w.userLogout {
			w.userLogout = false
		} else {
			w.expired = true
		}
	}
	w.authenticated = s.IsAuthenticated
}

// expectLogout marks the next logout transition as requested by the user.
func (w *sessionWatch) expectLogout() {
	w.mu.Lock()
	w.userLogout = w.authenticated
	w.mu.Unlock()
}

// take reports and resets the expired flag.
func (w *sessionWatch) take() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	e := w.expired
	w.expired = false
	return e
}

func (w *sessionWatch) stop() {
	if w.cancel != nil {
		w.cancel()
	}
}
