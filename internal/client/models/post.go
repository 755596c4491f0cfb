// Package models defines the remote entities the client works with and the
// validation rules applied before they reach the network.
package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxPostContentLength is the maximum number of Unicode code points a post
// may contain after trimming surrounding whitespace.
const MaxPostContentLength = 280

var (
	ErrEmptyContent   = errors.New("post content is empty")
	ErrContentTooLong = errors.New("post content exceeds maximum length")
)

// Post is a remote post as returned by the server. The id is always
// server-assigned; a client never invents one. CommentCount is not updated
// optimistically on the client, it changes only on re-fetch.
type Post struct {
	ID           int64  `json:"id"`
	Content      string `json:"content"`
	CreatedAt    int64  `json:"createdAt"`
	Published    bool   `json:"published"`
	CommentCount int    `json:"commentCount"`
}

// Comment belongs to exactly one post. Approved transitions only through an
// explicit moderation call; there is no reject state distinct from deletion.
type Comment struct {
	ID         int64  `json:"id"`
	PostID     int64  `json:"postId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
	CreatedAt  int64  `json:"createdAt"`
	Approved   bool   `json:"approved"`
}

// PostList is the response envelope of the post listing endpoint.
type PostList struct {
	Posts      []Post `json:"posts"`
	TotalCount int    `json:"totalCount"`
}

// CommentList is the response envelope of the comment listing endpoints.
type CommentList struct {
	Comments []Comment `json:"comments"`
}

// ValidatePostContent trims content and checks its length in code points.
// It returns the trimmed text on success. Validation happens before any
// network call is made, never instead of server-side checks.
func ValidatePostContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(trimmed) > MaxPostContentLength {
		return "", ErrContentTooLong
	}
	return trimmed, nil
}

// CreatedTime converts the server's epoch-millisecond timestamp.
func (p Post) CreatedTime() time.Time {
	return time.UnixMilli(p.CreatedAt)
}

// CreatedTime converts the server's epoch-millisecond timestamp.
func (c Comment) CreatedTime() time.Time {
	return time.UnixMilli(c.CreatedAt)
}
