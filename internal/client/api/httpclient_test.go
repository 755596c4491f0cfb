package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
	"github.com/dmitrijs2005/blogsync/internal/common"
	"github.com/dmitrijs2005/blogsync/internal/logging"
)

const testAPIKey = "k1"

// newTestClient points a configured HTTPClient at the given test server.
func newTestClient(t *testing.T, srv *httptest.Server) *HTTPClient {
	t.Helper()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	c := NewHTTPClient(5*time.Second, logging.NewNop())
	c.Configure(u.Hostname(), port, testAPIKey)
	return c
}

func TestConfigure(t *testing.T) {
	c := NewHTTPClient(time.Second, logging.NewNop())
	assert.False(t, c.IsConfigured())

	c.Configure("localhost", 8081, "k1")
	assert.True(t, c.IsConfigured())

	c.Configure("localhost", 8081, "")
	assert.False(t, c.IsConfigured())

	c.Configure("", 8081, "k1")
	assert.False(t, c.IsConfigured())
}

func TestNotConfigured_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewHTTPClient(time.Second, logging.NewNop())

	_, _, err := c.ListPosts(ctx, 1, 50)
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.CreatePost(ctx, "hi")
	require.ErrorIs(t, err, ErrNotConfigured)

	err = c.DeleteComment(ctx, 1)
	require.ErrorIs(t, err, ErrNotConfigured)

	assert.Equal(t, int64(0), calls.Load())
}

func TestRequestDiscipline(t *testing.T) {
	type seen struct {
		method      string
		path        string
		query       url.Values
		contentType string
		accept      string
		apiKey      string
		requestID   string
		body        []byte
	}

	var last seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last = seen{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.Query(),
			contentType: r.Header.Get("Content-Type"),
			accept:      r.Header.Get("Accept"),
			apiKey:      r.Header.Get(common.APIKeyHeaderName),
			requestID:   r.Header.Get(common.RequestIDHeaderName),
			body:        body,
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/posts" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(models.PostList{Posts: []models.Post{}, TotalCount: 0})
		case r.URL.Path == "/api/posts" && r.Method == http.MethodPost:
			_ = json.NewEncoder(w).Encode(models.Post{ID: 1, Content: "hi"})
		case r.URL.Path == "/api/comments/5/moderate":
			_ = json.NewEncoder(w).Encode(models.Comment{ID: 5, Approved: true})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := newTestClient(t, srv)

	t.Run("list posts is unauthenticated and carries paging", func(t *testing.T) {
		_, _, err := c.ListPosts(ctx, 2, 25)
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, last.method)
		assert.Equal(t, "/api/posts", last.path)
		assert.Equal(t, "2", last.query.Get("page"))
		assert.Equal(t, "25", last.query.Get("limit"))
		assert.Equal(t, "application/json", last.contentType)
		assert.Equal(t, "application/json", last.accept)
		assert.Empty(t, last.apiKey)
		assert.NotEmpty(t, last.requestID)
	})

	t.Run("create post is authenticated and sends only the content field", func(t *testing.T) {
		_, err := c.CreatePost(ctx, "hi")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, testAPIKey, last.apiKey)
		assert.JSONEq(t, `{"content":"hi"}`, string(last.body))
	})

	t.Run("moderate sends only the approve flag", func(t *testing.T) {
		_, err := c.ModerateComment(ctx, 5, true)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, last.method)
		assert.Equal(t, "/api/comments/5/moderate", last.path)
		assert.Equal(t, testAPIKey, last.apiKey)
		assert.JSONEq(t, `{"approve":true}`, string(last.body))
	})

	t.Run("delete post is authenticated with an empty body", func(t *testing.T) {
		err := c.DeletePost(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, last.method)
		assert.Equal(t, "/api/posts/7", last.path)
		assert.Equal(t, testAPIKey, last.apiKey)
		assert.Empty(t, last.body)
	})

	t.Run("pending comments is authenticated", func(t *testing.T) {
		_, err := c.ListPendingComments(ctx)
		require.Error(t, err) // 204 with no JSON body; auth header is what matters here
		assert.Equal(t, "/api/comments/pending", last.path)
		assert.Equal(t, testAPIKey, last.apiKey)
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("404 yields ServerError with the raw body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("post not found"))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		_, err := c.GetPost(context.Background(), 99)

		var serverErr *ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusNotFound, serverErr.StatusCode)
		assert.Equal(t, "post not found", serverErr.Message)
	})

	t.Run("empty error body falls back to status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		err := c.DeletePost(context.Background(), 1)

		var serverErr *ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusUnauthorized, serverErr.StatusCode)
		assert.Equal(t, http.StatusText(http.StatusUnauthorized), serverErr.Message)
	})

	t.Run("connection refusal yields TransportError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nobody listening anymore

		c := newTestClient(t, srv)
		_, _, err := c.ListPosts(context.Background(), 1, 50)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("2xx with an unparseable body yields DecodeError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>definitely not json</html>"))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		_, err := c.GetPost(context.Background(), 1)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("malformed host yields ErrInvalidURL", func(t *testing.T) {
		c := NewHTTPClient(time.Second, logging.NewNop())
		c.Configure("bad host with spaces", 8081, "k1")

		_, _, err := c.ListPosts(context.Background(), 1, 50)
		require.ErrorIs(t, err, ErrInvalidURL)
	})
}

func TestListPosts_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[{"id":1,"content":"hi","createdAt":1700000000000,"published":true,"commentCount":0}],"totalCount":1}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	posts, total, err := c.ListPosts(context.Background(), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, models.Post{ID: 1, Content: "hi", CreatedAt: 1700000000000, Published: true, CommentCount: 0}, posts[0])
}
