package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
	"github.com/dmitrijs2005/blogsync/internal/common"
	"github.com/dmitrijs2005/blogsync/internal/logging"
)

// HTTPClient implements Client over the server's HTTP/JSON protocol.
//
// The client performs no retries: every failure is classified and returned to
// the caller unchanged. Transport-level timeouts belong to the underlying
// http.Client; no per-operation timeout is added here.
type HTTPClient struct {
	baseAddress string
	apiKey      string
	httpClient  *http.Client
	log         logging.Logger
}

// NewHTTPClient builds an unconfigured client. The timeout applies to whole
// request/response exchanges, including body reads.
func NewHTTPClient(timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Configure rebuilds the base address and credential. An empty host leaves
// the client unconfigured regardless of the other values.
func (c *HTTPClient) Configure(host string, port int, apiKey string) {
	if host == "" {
		c.baseAddress = ""
	} else {
		c.baseAddress = fmt.Sprintf("http://%s:%d", host, port)
	}
	c.apiKey = apiKey
}

// IsConfigured reports whether both the address and the credential are set.
func (c *HTTPClient) IsConfigured() bool {
	return c.baseAddress != "" && c.apiKey != ""
}

// Ping probes server reachability with the cheapest read-only request.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, _, err := c.ListPosts(ctx, 1, 1)
	return err
}

func (c *HTTPClient) ListPosts(ctx context.Context, page, limit int) ([]models.Post, int, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var list models.PostList
	if err := c.do(ctx, http.MethodGet, "/api/posts", q, nil, false, &list); err != nil {
		return nil, 0, err
	}
	return list.Posts, list.TotalCount, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/api/posts/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, false, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, content string) (*models.Post, error) {
	body := map[string]string{"content": content}

	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", nil, body, true, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/posts/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true, nil)
}

func (c *HTTPClient) ListPostComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var list models.CommentList
	path := fmt.Sprintf("/api/comments/post/%d", postID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, false, &list); err != nil {
		return nil, err
	}
	return list.Comments, nil
}

func (c *HTTPClient) ListPendingComments(ctx context.Context) ([]models.Comment, error) {
	var list models.CommentList
	if err := c.do(ctx, http.MethodGet, "/api/comments/pending", nil, nil, true, &list); err != nil {
		return nil, err
	}
	return list.Comments, nil
}

func (c *HTTPClient) ModerateComment(ctx context.Context, id int64, approve bool) (*models.Comment, error) {
	body := map[string]bool{"approve": approve}

	var comment models.Comment
	path := fmt.Sprintf("/api/comments/%d/moderate", id)
	if err := c.do(ctx, http.MethodPut, path, nil, body, true, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/comments/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true, nil)
}

// do issues one request and classifies the outcome. When out is nil a 2xx
// response body is ignored (delete endpoints respond empty).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	requestURL := c.baseAddress + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	if _, err := url.ParseRequestURI(requestURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request encoding: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if authed {
		req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{StatusCode: resp.StatusCode, Message: serverMessage(resp.StatusCode, raw)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// serverMessage extracts the raw body text of a failed response, falling back
// to the standard status text when the body is empty or not valid UTF-8.
func serverMessage(statusCode int, raw []byte) string {
	if len(raw) == 0 || !utf8.Valid(raw) {
		return http.StatusText(statusCode)
	}
	return string(raw)
}
