package api

import (
	"context"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
)

// Client is the protocol contract against the remote blog server. The session
// layer owns an instance and passes it around explicitly; there is no shared
// configured singleton.
type Client interface {
	Configure(host string, port int, apiKey string)
	IsConfigured() bool

	Ping(ctx context.Context) error

	ListPosts(ctx context.Context, page, limit int) ([]models.Post, int, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, content string) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	ListPostComments(ctx context.Context, postID int64) ([]models.Comment, error)
	ListPendingComments(ctx context.Context) ([]models.Comment, error)
	ModerateComment(ctx context.Context, id int64, approve bool) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
