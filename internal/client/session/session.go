package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogsync/internal/client/api"
	"github.com/dmitrijs2005/blogsync/internal/client/models"
	"github.com/dmitrijs2005/blogsync/internal/client/store"
	"github.com/dmitrijs2005/blogsync/internal/client/vault"
	"github.com/dmitrijs2005/blogsync/internal/logging"
)

// Projection identifies which comment collection the session currently holds.
// The two projections reconcile moderation differently: the pending queue
// drops a comment once it stops being pending, the per-post browser replaces
// it in place.
type Projection int

const (
	ProjectionNone Projection = iota
	ProjectionPending
	ProjectionPost
)

// State is the single source of truth for the running session: whether it is
// configured, and the in-memory snapshots of remote posts and comments.
//
// All collaborators are passed in explicitly. State adds no locking of its
// own: operations touching disjoint collections may run concurrently, but a
// caller racing two operations on the same collection gets last-writer-wins
// and must serialize above this layer if it needs ordering.
type State struct {
	store  store.Repository
	vault  vault.Vault
	client api.Client
	log    logging.Logger

	host   string
	port   int
	apiKey string

	posts      []models.Post
	totalCount int

	comments       []models.Comment
	projection     Projection
	commentsPostID int64
}

// New wires a session from its three collaborators. Call Init before use.
func New(repo store.Repository, v vault.Vault, client api.Client, log logging.Logger) *State {
	return &State{
		store:  repo,
		vault:  v,
		client: client,
		log:    log,
		port:   store.DefaultPort,
	}
}

// Init reads both stores and, when a complete configuration is present,
// configures the protocol client. A failure to read the vault counts as an
// absent credential, not a fatal error.
func (s *State) Init(ctx context.Context) error {
	host, port, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	apiKey, ok, err := s.vault.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading credential: %w", err)
	}
	if !ok {
		apiKey = ""
	}

	s.host, s.port, s.apiKey = host, port, apiKey

	if s.Configured() {
		s.client.Configure(s.host, s.port, s.apiKey)
		s.log.Info(ctx, "session configured", "host", s.host, "port", s.port)
	}
	return nil
}

// Configured is evaluated from the current fields on every call, never
// cached: it must not be true while either the host or the credential is
// empty.
func (s *State) Configured() bool {
	return s.host != "" && s.apiKey != ""
}

// Host returns the configured server host ("" when unconfigured).
func (s *State) Host() string { return s.host }

// Port returns the configured server port.
func (s *State) Port() int { return s.port }

// SaveConfiguration writes host/port to the settings store and the key to the
// vault, reconfigures the client and recomputes the configured state. This is
// the only path from Unconfigured to Configured.
func (s *State) SaveConfiguration(ctx context.Context, host string, port int, apiKey string) error {
	if err := s.store.Save(ctx, host, port); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	if err := s.vault.Save(ctx, apiKey); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}

	s.host, s.port, s.apiKey = host, port, apiKey
	s.client.Configure(host, port, apiKey)

	s.log.Info(ctx, "configuration saved", "host", host, "port", port)
	return nil
}

// ClearConfiguration wipes both stores and resets the in-memory state to its
// defaults, transitioning back to Unconfigured. It never contacts the server.
func (s *State) ClearConfiguration(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing settings: %w", err)
	}
	if err := s.vault.Clear(ctx); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}

	s.host, s.port, s.apiKey = "", store.DefaultPort, ""
	s.posts, s.totalCount = nil, 0
	s.comments, s.projection, s.commentsPostID = nil, ProjectionNone, 0
	s.client.Configure("", 0, "")

	s.log.Info(ctx, "configuration cleared")
	return nil
}

// Posts returns the current post snapshot in server order.
func (s *State) Posts() []models.Post { return s.posts }

// TotalCount returns the server-reported total from the last listing.
func (s *State) TotalCount() int { return s.totalCount }

// Comments returns the current comment snapshot of the active projection.
func (s *State) Comments() []models.Comment { return s.comments }

// ActiveProjection reports which comment view the snapshot belongs to; for
// ProjectionPost the second value is the post id.
func (s *State) ActiveProjection() (Projection, int64) {
	return s.projection, s.commentsPostID
}

// CheckServer probes reachability. It requires a configured session but does
// not touch any snapshot.
func (s *State) CheckServer(ctx context.Context) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}
	return s.client.Ping(ctx)
}

// LoadPosts replaces the whole post snapshot with the requested page, keeping
// the server-provided order untouched.
func (s *State) LoadPosts(ctx context.Context, page, limit int) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}

	posts, total, err := s.client.ListPosts(ctx, page, limit)
	if err != nil {
		return err
	}

	s.posts = posts
	s.totalCount = total
	return nil
}

// GetPost fetches a single post without touching the snapshot.
func (s *State) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	if !s.Configured() {
		return nil, api.ErrNotConfigured
	}
	return s.client.GetPost(ctx, id)
}

// CreatePost validates the content locally, then creates the post remotely.
// Validation failures never reach the network. The created post is not
// inserted into the snapshot; callers re-fetch the listing to pick it up.
func (s *State) CreatePost(ctx context.Context, content string) (*models.Post, error) {
	if !s.Configured() {
		return nil, api.ErrNotConfigured
	}

	trimmed, err := models.ValidatePostContent(content)
	if err != nil {
		return nil, err
	}

	return s.client.CreatePost(ctx, trimmed)
}

// DeletePost removes the post remotely and, on success, drops it from the
// local snapshot. Removing an id the snapshot no longer holds is a no-op.
func (s *State) DeletePost(ctx context.Context, id int64) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}

	if err := s.client.DeletePost(ctx, id); err != nil {
		return err
	}

	s.posts = removePost(s.posts, id)
	if s.projection == ProjectionPost && s.commentsPostID == id {
		s.comments, s.projection, s.commentsPostID = nil, ProjectionNone, 0
	}
	return nil
}

// LoadPendingComments switches the comment snapshot to the pending queue
// projection: every unapproved comment across all posts.
func (s *State) LoadPendingComments(ctx context.Context) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}

	comments, err := s.client.ListPendingComments(ctx)
	if err != nil {
		return err
	}

	s.comments = comments
	s.projection = ProjectionPending
	s.commentsPostID = 0
	return nil
}

// LoadPostComments switches the comment snapshot to the per-post projection,
// approved and pending alike.
func (s *State) LoadPostComments(ctx context.Context, postID int64) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}

	comments, err := s.client.ListPostComments(ctx, postID)
	if err != nil {
		return err
	}

	s.comments = comments
	s.projection = ProjectionPost
	s.commentsPostID = postID
	return nil
}

// ModerateComment applies the moderation decision remotely, then reconciles
// the snapshot by projection: the pending queue drops a comment that is no
// longer pending, the per-post view replaces it with the server's version.
func (s *State) ModerateComment(ctx context.Context, id int64, approve bool) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}

	moderated, err := s.client.ModerateComment(ctx, id, approve)
	if err != nil {
		return err
	}

	switch s.projection {
	case ProjectionPending:
		if moderated.Approved {
			s.comments = removeComment(s.comments, id)
		} else {
			s.comments = replaceComment(s.comments, *moderated)
		}
	case ProjectionPost:
		s.comments = replaceComment(s.comments, *moderated)
	}
	return nil
}

// DeleteComment removes the comment remotely and, on success, drops it from
// whichever projection currently holds it.
func (s *State) DeleteComment(ctx context.Context, id int64) error {
	if !s.Configured() {
		return api.ErrNotConfigured
	}

	if err := s.client.DeleteComment(ctx, id); err != nil {
		return err
	}

	s.comments = removeComment(s.comments, id)
	return nil
}

func removePost(posts []models.Post, id int64) []models.Post {
	for i, p := range posts {
		if p.ID == id {
			return append(posts[:i], posts[i+1:]...)
		}
	}
	return posts
}

func removeComment(comments []models.Comment, id int64) []models.Comment {
	for i, c := range comments {
		if c.ID == id {
			return append(comments[:i], comments[i+1:]...)
		}
	}
	return comments
}

func replaceComment(comments []models.Comment, updated models.Comment) []models.Comment {
	for i, c := range comments {
		if c.ID == updated.ID {
			comments[i] = updated
		}
	}
	return comments
}
