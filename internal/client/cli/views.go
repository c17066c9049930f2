package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authdemo/internal/client/guard"
)

// guarded runs view only when the guard allows it. A missing session runs
// the login flow first and then resumes view, like a redirect to the login
// page that returns to the requested destination.
func (a *App) guarded(ctx context.Context, view func(context.Context) error) error {
	switch guard.Decide(a.session.Snapshot()) {
	case guard.Pending:
		fmt.Fprintln(a.out, "Checking authentication...")
		return nil
	case guard.Redirect:
		fmt.Fprintln(a.out, "Please log in to continue.")
		if err := a.Login(ctx); err != nil {
			return err
		}
		if guard.Decide(a.session.Snapshot()) != guard.Allow {
			return nil
		}
	}
	return view(ctx)
}

// Profile shows the identity the stored token resolves to.
func (a *App) Profile(ctx context.Context) error {
	return a.guarded(ctx, a.showProfile)
}

// Dashboard shows the in-memory session and a refreshed profile.
func (a *App) Dashboard(ctx context.Context) error {
	return a.guarded(ctx, func(ctx context.Context) error {
		s := a.session.Snapshot()
		if !s.IsAuthenticated {
			fmt.Fprintln(a.out, "Not logged in")
			return nil
		}
		fmt.Fprintln(a.out, "== Dashboard ==")
		fmt.Fprintf(a.out, "Welcome, %s!\n", s.User.Name)
		fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\nID:    %s\n", s.User.Name, s.User.Email, s.User.ID)
		return a.showProfile(ctx)
	})
}

func (a *App) showProfile(ctx context.Context) error {
	res := a.authService.FetchProfile(ctx)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return nil
	}
	fmt.Fprintln(a.out, "-- Profile (record store) --")
	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\n", res.User.Name, res.User.Email)
	return nil
}

// WhoAmI prints the current in-memory session without any network call.
func (a *App) WhoAmI(context.Context) error {
	s := a.session.Snapshot()
	if !s.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", s.User.Name, s.User.Email)
	return nil
}
