package rest

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/logging"
	"github.com/dmitrijs2005/authdemo/internal/server/models"
	"github.com/dmitrijs2005/authdemo/internal/server/repositories/users"
	"github.com/dmitrijs2005/authdemo/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	users.Repository
}

func (failingRepo) List(context.Context) ([]models.User, error) { return nil, assert.AnError }
func (failingRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, assert.AnError
}

func newTestServer(t *testing.T, repo users.Repository) *httptest.Server {
	t.Helper()
	s := NewServer(":0", logging.Discard(), services.NewUserService(repo))
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postUser(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url+"/users", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, users.NewMemoryRepository())
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateThenList(t *testing.T) {
	srv := newTestServer(t, users.NewMemoryRepository())

	resp, created := postUser(t, srv.URL, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "secret1", created["password"])

	resp, _ = postUser(t, srv.URL, `{"name":"Bob","email":"bob@x.com","password":"hunter22"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/users", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer whatever")
	lresp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer lresp.Body.Close()
	require.Equal(t, http.StatusOK, lresp.StatusCode)

	var list []models.User
	require.NoError(t, json.NewDecoder(lresp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, created["id"], list[0].ID)
	assert.Equal(t, "bob@x.com", list[1].Email)
}

func TestListEmptyIsArray(t *testing.T) {
	srv := newTestServer(t, users.NewMemoryRepository())
	resp, err := http.Get(srv.URL + "/users")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "[]", string(raw))
}

func TestCreate_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t, users.NewMemoryRepository())
	postUser(t, srv.URL, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)

	resp, body := postUser(t, srv.URL, `{"name":"Ann","email":"ann@x.com","password":"other1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email already exists", body["error"])
}

func TestCreate_BadInput(t *testing.T) {
	srv := newTestServer(t, users.NewMemoryRepository())
	for name, body := range map[string]string{
		"malformed":     `{"name":`,
		"missing email": `{"name":"Ann","password":"secret1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp, out := postUser(t, srv.URL, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestList_FilterByEmail(t *testing.T) {
	srv := newTestServer(t, users.NewMemoryRepository())
	postUser(t, srv.URL, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	postUser(t, srv.URL, `{"name":"Bob","email":"bob@x.com","password":"hunter22"}`)

	get := func(query string) []models.User {
		resp, err := http.Get(srv.URL + "/users?" + query)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var list []models.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		return list
	}

	got := get("email=bob%40x.com")
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)

	assert.Empty(t, get("email=nobody%40x.com"))
	assert.NotNil(t, get("email=nobody%40x.com"))
}

func TestRepositoryFailures(t *testing.T) {
	srv := newTestServer(t, failingRepo{})

	resp, err := http.Get(srv.URL + "/users")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	cresp, _ := postUser(t, srv.URL, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusInternalServerError, cresp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	s := NewServer("", logging.Discard(), services.NewUserService(users.NewMemoryRepository()))
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, l) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + l.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
