package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/authdemo/internal/client/client"
	"github.com/dmitrijs2005/authdemo/internal/client/config"
	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/dmitrijs2005/authdemo/internal/client/session"
	"github.com/dmitrijs2005/authdemo/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeAuth implements services.AuthService. Users are matched like the
// real service does; tokens are "tok-<id>".
type fakeAuth struct {
	users     []models.UserRecord
	nextID    string
	pingErr   error
	registers int
	logouts   int
	closed    bool
}

func (f *fakeAuth) Register(_ context.Context, name, email, password string) models.Result {
	f.registers++
	for _, u := range f.users {
		if u.Email == email {
			return models.Fail(models.MsgEmailExists)
		}
	}
	rec := models.UserRecord{ID: f.nextID, Name: name, Email: email, Password: password}
	f.users = append(f.users, rec)
	return models.Ok(models.MsgRegistered, rec.Identity())
}

func (f *fakeAuth) Authenticate(_ context.Context, email, password string) models.Result {
	for _, u := range f.users {
		if u.Email == email && u.Password == password {
			r := models.Ok(models.MsgLoginSuccessful, u.Identity())
			r.Token = "tok-" + u.ID
			return r
		}
	}
	return models.Fail(models.MsgInvalidCredentials)
}

func (f *fakeAuth) FetchProfile(context.Context) models.Result {
	if len(f.users) == 0 {
		return models.Fail(models.MsgUserNotFound)
	}
	return models.Ok("", f.users[0].Identity())
}

func (f *fakeAuth) Logout(context.Context) models.Result {
	f.logouts++
	return models.Ok(models.MsgLoggedOut, nil)
}

func (f *fakeAuth) IssueToken(id string) (string, error) {
	if id == "" {
		return "", errors.New("empty id")
	}
	return "tok-" + id, nil
}

func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { f.closed = true; return nil }

// newTestApp builds an App over an in-memory session database. input feeds
// the prompts; passwords are read from the same stream.
func newTestApp(t *testing.T, auth *fakeAuth, input string) (*App, *session.Store, *bytes.Buffer) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db)
	container := session.NewContainer(store, logging.Discard())
	container.Restore(context.Background())

	cfg := &config.Config{}
	cfg.LoadDefaults()

	out := &bytes.Buffer{}
	watch := watchSession(container)
	t.Cleanup(watch.stop)
	return &App{
		config:      cfg,
		authService: auth,
		session:     container,
		logger:      logging.Discard(),
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         out,
		watch:       watch,
	}, store, out
}

// pipedPasswords makes GetPassword read from the line reader.
func pipedPasswords(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		var b strings.Builder
		for i, v := range a {
			if i > 0 {
				b.WriteByte(' ')
			}
			_, _ = io.WriteString(&b, toString(v))
		}
		lines = append(lines, b.String())
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return ""
	}
}

var annRecord = models.UserRecord{ID: "1", Name: "Ann", Email: "ann@x.com", Password: "secret1"}
