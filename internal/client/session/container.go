package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/dmitrijs2005/authdemo/internal/logging"
)

// ErrIncompleteSession is returned by Login when the user or token is missing.
var ErrIncompleteSession = errors.New("session needs both a user and a token")

// Container owns the current State. It is safe for concurrent use.
type Container struct {
	mu    sync.RWMutex
	state State

	store  Persister
	logger logging.Logger

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

func NewContainer(store Persister, logger logging.Logger) *Container {
	return &Container{
		state:  Initial(),
		store:  store,
		logger: logger.With("module", "session"),
		subs:   make(map[int]func(State)),
	}
}

// Dispatch applies a under the lock and notifies subscribers with the
// resulting snapshot.
func (c *Container) Dispatch(a Action) State {
	c.mu.Lock()
	c.state = Reduce(c.state, a)
	snap := c.state.clone()
	c.mu.Unlock()

	c.logger.Debug(context.Background(), "session transition",
		"action", a.Type.String(), "authenticated", snap.IsAuthenticated, "loading", snap.Loading)
	c.notify(snap)
	return snap
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// Restore runs the startup protocol against the persisted keys.
//
// Both keys present and a decodable user: RestoreSession. A user value that
// does not decode (or decodes to an identity without id) is corrupt state:
// both keys are cleared and the container ends logged out, as it does when
// either key is missing or storage cannot be read.
func (c *Container) Restore(ctx context.Context) State {
	tok, raw, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn(ctx, "failed to read persisted session", "error", err)
		tok, raw = "", nil
	}

	if tok != "" && len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err == nil && u.ID != "" {
			return c.Dispatch(Action{Type: ActionRestoreSession, User: &u, Token: tok})
		}

		c.logger.Warn(ctx, "discarding corrupt persisted session")
		if err := c.store.Clear(ctx); err != nil {
			c.logger.Error(ctx, "failed to clear corrupt session", "error", err)
		}
	}

	return c.Dispatch(Action{Type: ActionSetLoading, Loading: false})
}

// Login makes user/token the current session. Only when rememberMe is set
// are they written to durable storage; a write failure is returned but the
// in-memory session stays in place.
func (c *Container) Login(ctx context.Context, user *models.User, token string, rememberMe bool) error {
	if user == nil || token == "" {
		return ErrIncompleteSession
	}
	u := *user
	c.Dispatch(Action{Type: ActionLoginSuccess, User: &u, Token: token})

	if !rememberMe {
		return nil
	}
	if err := c.store.Save(ctx, token, &u); err != nil {
		c.logger.Error(ctx, "failed to persist session", "error", err)
		return err
	}
	return nil
}

// Logout drops the session and always clears both persisted keys.
func (c *Container) Logout(ctx context.Context) error {
	c.Dispatch(Action{Type: ActionLogout})

	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear persisted session", "error", err)
		return err
	}
	return nil
}

// Token returns the live session token. Before the session is restored it
// falls back to the persisted one, if the persister can read it.
func (c *Container) Token(ctx context.Context) (string, error) {
	if tok := c.Snapshot().Token; tok != "" {
		return tok, nil
	}
	if ts, ok := c.store.(interface {
		Token(context.Context) (string, error)
	}); ok {
		return ts.Token(ctx)
	}
	return "", nil
}

func (c *Container) SetLoading(loading bool) {
	c.Dispatch(Action{Type: ActionSetLoading, Loading: loading})
}

// Subscribe registers fn to be called with every new snapshot. fn runs on
// the dispatching goroutine and must not call Dispatch itself.
func (c *Container) Subscribe(fn func(State)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Container) notify(s State) {
	c.subMu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(s.clone())
	}
}
