package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if snap := a.session.Snapshot(); snap.IsAuthenticated {
		s = snap.User.Email + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) sessionExpired() bool {
	return a.watch.take()
}

// Root restores a persisted session, starts the connectivity watcher and
// runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to authdemo CLI (type 'help' for commands)")

	if s := a.session.Restore(ctx); s.IsAuthenticated {
		printlnFn(fmt.Sprintf("Restored session for %s", s.User.Name))
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
