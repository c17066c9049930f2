package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// Register prompts for name, email, password and confirmation, validates
// the form and creates the account. On success the new identity is logged
// in and persisted straight away.
func (a *App) Register(ctx context.Context) error {
	var f models.RegistrationForm
	var err error

	if f.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword(a.reader, "Enter password", a.out); err != nil {
		return err
	}
	if f.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	if errs := models.ValidateRegistration(f); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	res := a.authService.Register(ctx, f.Name, f.Email, f.Password)
	fmt.Fprintln(a.out, res.Message)
	if !res.Success {
		return nil
	}

	tok, err := a.authService.IssueToken(res.User.ID)
	if err != nil {
		a.logger.Error(ctx, "auto-login after registration failed", "error", err)
		return err
	}
	if err := a.session.Login(ctx, res.User, tok, true); err != nil {
		a.logger.Warn(ctx, "session not persisted", "error", err)
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Name)
	return nil
}

// Login prompts for credentials and a remember-me choice. Only a remembered
// session survives a restart.
func (a *App) Login(ctx context.Context) error {
	var f models.LoginForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword(a.reader, "Enter password", a.out); err != nil {
		return err
	}
	if f.RememberMe, err = getYesNo(a.reader, "Remember me?", a.out); err != nil {
		return err
	}

	if errs := models.ValidateLogin(f); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	res := a.authService.Authenticate(ctx, f.Email, f.Password)
	fmt.Fprintln(a.out, res.Message)
	if !res.Success {
		return nil
	}

	if err := a.session.Login(ctx, res.User, res.Token, f.RememberMe); err != nil {
		a.logger.Warn(ctx, "session not persisted", "error", err)
	}
	return nil
}

// Logout clears the persisted session and the in-memory one.
func (a *App) Logout(ctx context.Context) error {
	res := a.authService.Logout(ctx)
	a.watch.expectLogout()
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "logout", "error", err)
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

func (a *App) printFieldErrors(errs models.FieldErrors) {
	fields := make([]string, 0, len(errs))
	for k := range errs {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	for _, k := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", k, errs[k])
	}
}
