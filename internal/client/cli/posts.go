package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
)

const defaultPageLimit = 50

// Posts refreshes the post snapshot and prints it in server order.
func (a *App) Posts(ctx context.Context) error {
	if err := a.state.LoadPosts(ctx, 1, defaultPageLimit); err != nil {
		a.log.Error(ctx, "error loading posts", "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	posts := a.state.Posts()
	if len(posts) == 0 {
		printlnFn("No posts yet.")
		return nil
	}

	for _, p := range posts {
		printlnFn(formatPost(p))
	}
	printlnFn(fmt.Sprintf("%d of %d post(s)", len(posts), a.state.TotalCount()))
	return nil
}

// ShowPost fetches one post by id and prints it with its comment count.
func (a *App) ShowPost(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Post id", os.Stdout)
	if err != nil {
		printlnFn("Post id must be a number")
		return err
	}

	post, err := a.state.GetPost(ctx, id)
	if err != nil {
		a.log.Error(ctx, "error fetching post", "id", id, "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(formatPost(*post))
	printlnFn(post.Content)
	return nil
}

// NewPost composes a post interactively and publishes it, then refreshes the
// listing so the new post shows up with its server-assigned id.
func (a *App) NewPost(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Post content", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.state.CreatePost(ctx, content)
	if err != nil {
		a.log.Error(ctx, "error creating post", "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Published post %d", post.ID))
	return a.state.LoadPosts(ctx, 1, defaultPageLimit)
}

// RemovePost deletes a post by id.
func (a *App) RemovePost(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Post id to delete", os.Stdout)
	if err != nil {
		printlnFn("Post id must be a number")
		return err
	}

	if err := a.state.DeletePost(ctx, id); err != nil {
		a.log.Error(ctx, "error deleting post", "id", id, "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Deleted post %d", id))
	return nil
}

func formatPost(p models.Post) string {
	status := "draft"
	if p.Published {
		status = "published"
	}
	return fmt.Sprintf("[%d] %s | %s | %d comment(s) | %s",
		p.ID, summarize(p.Content, 60), status, p.CommentCount,
		p.CreatedTime().Format("2006-01-02 15:04"))
}

func summarize(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
