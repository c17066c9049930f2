package models

import (
	"net/mail"
	"strings"
)

const (
	minPasswordLength = 6
	minNameLength     = 2
)

// FieldErrors maps a form field name to its validation message.
// An empty map means the form is valid.
type FieldErrors map[string]string

func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// LoginForm is what the login page (or REPL prompt) collects.
type LoginForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// RegistrationForm is what the register page (or REPL prompt) collects.
type RegistrationForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func ValidateLogin(f LoginForm) FieldErrors {
	errs := FieldErrors{}
	validateEmail(errs, f.Email)
	validatePassword(errs, f.Password)
	return errs
}

func ValidateRegistration(f RegistrationForm) FieldErrors {
	errs := FieldErrors{}

	switch name := strings.TrimSpace(f.Name); {
	case name == "":
		errs["name"] = "Name is required"
	case len([]rune(name)) < minNameLength:
		errs["name"] = "Name must be at least 2 characters"
	}

	validateEmail(errs, f.Email)
	validatePassword(errs, f.Password)

	switch {
	case f.ConfirmPassword == "":
		errs["confirmPassword"] = "Password confirmation is required"
	case f.ConfirmPassword != f.Password:
		errs["confirmPassword"] = "Password and confirmation must match"
	}
	return errs
}

// NormalizeEmail is the one rule applied to emails before they are sent to
// or compared against the record store: surrounding whitespace is dropped,
// everything else (case included) is kept.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func validateEmail(errs FieldErrors, email string) {
	email = NormalizeEmail(email)
	if email == "" {
		errs["email"] = "Email is required"
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		errs["email"] = "Invalid email format"
	}
}

func validatePassword(errs FieldErrors, password string) {
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < minPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}
}
