package web

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authdemo/internal/client/guard"
	"github.com/dmitrijs2005/authdemo/internal/client/models"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", page{Title: "Home", State: s.session.Snapshot()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	state := s.session.Snapshot()
	if state.IsAuthenticated {
		http.Redirect(w, r, guard.ReturnTo(r), http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "login", page{Title: "Login", State: state, From: guard.ReturnTo(r)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	f := models.LoginForm{
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("rememberMe") != "",
	}
	p := page{
		Title: "Login",
		From:  guard.ReturnTo(r),
		Form:  formValues{Email: f.Email, RememberMe: f.RememberMe},
	}

	if errs := models.ValidateLogin(f); !errs.Valid() {
		p.State, p.Errors = s.session.Snapshot(), errs
		s.render(w, r, http.StatusUnprocessableEntity, "login", p)
		return
	}

	res := s.auth.Authenticate(r.Context(), f.Email, f.Password)
	if !res.Success {
		p.State, p.Flash = s.session.Snapshot(), res.Message
		s.render(w, r, http.StatusUnauthorized, "login", p)
		return
	}

	if err := s.session.Login(r.Context(), res.User, res.Token, f.RememberMe); err != nil {
		s.logger.Warn(r.Context(), "session not persisted", "error", err)
	}
	http.Redirect(w, r, p.From, http.StatusSeeOther)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	state := s.session.Snapshot()
	if state.IsAuthenticated {
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "register", page{Title: "Register", State: state})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	f := models.RegistrationForm{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	p := page{Title: "Register", Form: formValues{Name: f.Name, Email: f.Email}}

	if errs := models.ValidateRegistration(f); !errs.Valid() {
		p.State, p.Errors = s.session.Snapshot(), errs
		s.render(w, r, http.StatusUnprocessableEntity, "register", p)
		return
	}

	res := s.auth.Register(r.Context(), f.Name, f.Email, f.Password)
	if !res.Success {
		status := http.StatusBadGateway
		if res.Message == models.MsgEmailExists {
			status = http.StatusConflict
		}
		p.State, p.Flash = s.session.Snapshot(), res.Message
		s.render(w, r, status, "register", p)
		return
	}

	tok, err := s.auth.IssueToken(res.User.ID)
	if err != nil {
		s.logger.Error(r.Context(), "auto-login after registration failed", "error", err)
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}
	if err := s.session.Login(r.Context(), res.User, tok, true); err != nil {
		s.logger.Warn(r.Context(), "session not persisted", "error", err)
	}
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout(r.Context())
	if err := s.session.Logout(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "logout", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	profile := s.auth.FetchProfile(r.Context())
	state := s.session.Snapshot()

	// The profile call can log the session out (401 from the record store).
	if !state.IsAuthenticated {
		http.Redirect(w, r, guard.LoginTarget(loginPath, r.URL.RequestURI()), http.StatusSeeOther)
		return
	}

	s.render(w, r, http.StatusOK, "dashboard", page{Title: "Dashboard", State: state, Profile: profile})
}
