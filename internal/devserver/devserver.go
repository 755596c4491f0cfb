// Package devserver is an in-memory implementation of the blog server
// protocol, used for local development and end-to-end tests of the client.
// It is not a production server: no persistence, no accounts, one API key.
package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
	"github.com/dmitrijs2005/blogsync/internal/common"
)

type Server struct {
	apiKey string

	mu       sync.Mutex
	posts    []models.Post
	comments []models.Comment
	nextID   int64
}

func New(apiKey string) *Server {
	return &Server{apiKey: apiKey, nextID: 1}
}

// SeedPost inserts a post directly, bypassing the protocol. Test helper.
func (s *Server) SeedPost(content string, published bool) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        s.nextID,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
		Published: published,
	}
	s.nextID++
	s.posts = append(s.posts, post)
	return post
}

// SeedComment inserts a comment directly, bypassing the protocol. Test helper.
func (s *Server) SeedComment(postID int64, author, content string, approved bool) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.Comment{
		ID:         s.nextID,
		PostID:     postID,
		AuthorName: author,
		Content:    content,
		CreatedAt:  time.Now().UnixMilli(),
		Approved:   approved,
	}
	s.nextID++
	s.comments = append(s.comments, comment)
	s.syncCommentCounts()
	return comment
}

// Router builds the HTTP surface. Reads are public, mutation and moderation
// endpoints sit behind the API key.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/posts", s.handleListPosts)
		r.Get("/posts/{id}", s.handleGetPost)
		r.Get("/comments/post/{postID}", s.handlePostComments)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAPIKey)
			r.Post("/posts", s.handleCreatePost)
			r.Delete("/posts/{id}", s.handleDeletePost)
			r.Get("/comments/pending", s.handlePendingComments)
			r.Put("/comments/{id}/moderate", s.handleModerateComment)
			r.Delete("/comments/{id}", s.handleDeleteComment)
		})
	})

	return r
}

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.APIKeyHeaderName) != s.apiKey {
			writeError(w, http.StatusUnauthorized, "invalid or missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.posts)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	list := models.PostList{Posts: make([]models.Post, 0, end-start), TotalCount: total}
	list.Posts = append(list.Posts, s.posts[start:end]...)
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "post not found")
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := models.ValidatePostContent(body.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        s.nextID,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
		Published: true,
	}
	s.nextID++
	s.posts = append(s.posts, post)
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			// cascade: a deleted post takes its comments with it
			kept := s.comments[:0]
			for _, c := range s.comments {
				if c.PostID != id {
					kept = append(kept, c)
				}
			}
			s.comments = kept
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "post not found")
}

func (s *Server) handlePostComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postID")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := models.CommentList{Comments: []models.Comment{}}
	for _, c := range s.comments {
		if c.PostID == postID {
			list.Comments = append(list.Comments, c)
		}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePendingComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := models.CommentList{Comments: []models.Comment{}}
	for _, c := range s.comments {
		if !c.Approved {
			list.Comments = append(list.Comments, c)
		}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleModerateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].Approved = body.Approve
			writeJSON(w, http.StatusOK, s.comments[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "comment not found")
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			s.syncCommentCounts()
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "comment not found")
}

// syncCommentCounts recomputes per-post comment counts. Callers hold s.mu.
func (s *Server) syncCommentCounts() {
	counts := make(map[int64]int, len(s.posts))
	for _, c := range s.comments {
		counts[c.PostID]++
	}
	for i := range s.posts {
		s.posts[i].CommentCount = counts[s.posts[i].ID]
	}
}

func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError responds with a plain text body; the client surfaces it verbatim
// as the server error message.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
