package session

import (
	"testing"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	ann := &models.User{ID: "1", Name: "Ann", Email: "ann@x.com"}
	loggedIn := State{User: ann, Token: "tok", IsAuthenticated: true}

	tests := []struct {
		name   string
		from   State
		action Action
		want   State
	}{
		{
			name:   "login success from initial",
			from:   Initial(),
			action: Action{Type: ActionLoginSuccess, User: ann, Token: "tok"},
			want:   State{User: ann, Token: "tok", IsAuthenticated: true},
		},
		{
			name:   "restore behaves like login",
			from:   Initial(),
			action: Action{Type: ActionRestoreSession, User: ann, Token: "tok"},
			want:   State{User: ann, Token: "tok", IsAuthenticated: true},
		},
		{
			name:   "logout clears everything",
			from:   State{User: ann, Token: "tok", IsAuthenticated: true, Loading: true},
			action: Action{Type: ActionLogout},
			want:   State{},
		},
		{
			name:   "set loading keeps identity",
			from:   loggedIn,
			action: Action{Type: ActionSetLoading, Loading: true},
			want:   State{User: ann, Token: "tok", IsAuthenticated: true, Loading: true},
		},
		{
			name:   "set loading false on initial",
			from:   Initial(),
			action: Action{Type: ActionSetLoading, Loading: false},
			want:   State{},
		},
		{
			name:   "unknown action is a no-op",
			from:   loggedIn,
			action: Action{Type: ActionType(99)},
			want:   loggedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.from, tt.action)
			assert.Empty(t, cmp.Diff(tt.want, got))
			assert.Equal(t, got.User != nil && got.Token != "", got.IsAuthenticated, "authenticated flag must mirror user/token")
		})
	}
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.True(t, s.Loading)
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
}

func TestActionType_String(t *testing.T) {
	assert.Equal(t, "LOGIN_SUCCESS", ActionLoginSuccess.String())
	assert.Equal(t, "LOGOUT", ActionLogout.String())
	assert.Equal(t, "SET_LOADING", ActionSetLoading.String())
	assert.Equal(t, "RESTORE_SESSION", ActionRestoreSession.String())
	assert.Equal(t, "UNKNOWN", ActionType(0).String())
}
