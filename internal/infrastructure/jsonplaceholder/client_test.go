package jsonplaceholder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-directory-portal/internal/domain/repository"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Leanne Graham","username":"Bret","email":"Sincere@april.biz",
			"address":{"street":"Kulas Light","suite":"Apt. 556","city":"Gwenborough","zipcode":"92998-3874","geo":{"lat":"-37.3159","lng":"81.1496"}},
			"phone":"1-770-736-8031 x56442","website":"hildegard.org",
			"company":{"name":"Romaguera-Crona","catchPhrase":"Multi-layered client-server neural-net","bs":"harness real-time e-markets"}}]`))
	})
	mux.HandleFunc("/users/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"name":"Leanne Graham","username":"Bret"}`))
	})
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("userId") == "2" {
			_, _ = w.Write([]byte(`[{"userId":2,"id":11,"title":"t2","body":"b2"}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"userId":1,"id":1,"title":"t1","body":"b1"},{"userId":2,"id":11,"title":"t2","body":"b2"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Users(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL+"/", time.Second)

	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Bret", users[0].Username)
	assert.Equal(t, "Gwenborough", users[0].Address.City)
	assert.Equal(t, "81.1496", users[0].Address.Geo.Lng)
	assert.Equal(t, "Romaguera-Crona", users[0].Company.Name)
}

func TestClient_UserAndNotFound(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second)

	u, err := c.User(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Leanne Graham", u.Name)

	_, err = c.User(context.Background(), 99)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestClient_PostsOwnerFilter(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second)

	all, err := c.Posts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	owner := 2
	mine, err := c.Posts(context.Background(), &owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 11, mine[0].ID)
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts" {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, time.Second)

	_, err := c.Users(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)

	_, err = c.Posts(context.Background(), nil)
	assert.Error(t, err)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Users(context.Background())
	assert.Error(t, err)
}
