package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authdemo/internal/common"
	"github.com/dmitrijs2005/authdemo/internal/server/models"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

// handleListUsers serves the whole list, or only exact matches when an
// email query parameter is given.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var (
		users []models.User
		err   error
	)
	if email, ok := r.URL.Query()["email"]; ok && len(email) > 0 {
		users, err = s.users.FindByEmail(r.Context(), email[0])
	} else {
		users, err = s.users.List(r.Context())
	}
	if err != nil {
		s.logger.Error(r.Context(), "list users", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.NewUser
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	u, err := s.users.Create(r.Context(), in)
	switch {
	case err == nil:
		s.logger.Info(r.Context(), "user created", "id", u.ID)
		writeJSON(w, http.StatusCreated, u)
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "email already exists"})
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		s.logger.Error(r.Context(), "create user", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
