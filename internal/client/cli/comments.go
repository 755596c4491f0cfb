package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
)

// Pending loads the global pending-comment queue and prints it.
func (a *App) Pending(ctx context.Context) error {
	if err := a.state.LoadPendingComments(ctx); err != nil {
		a.log.Error(ctx, "error loading pending comments", "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	comments := a.state.Comments()
	if len(comments) == 0 {
		printlnFn("No comments awaiting moderation.")
		return nil
	}

	for _, c := range comments {
		printlnFn(formatComment(c))
	}
	return nil
}

// Comments loads every comment of one post, approved and pending alike.
func (a *App) Comments(ctx context.Context) error {
	postID, err := GetInt64(a.reader, "Post id", os.Stdout)
	if err != nil {
		printlnFn("Post id must be a number")
		return err
	}

	if err := a.state.LoadPostComments(ctx, postID); err != nil {
		a.log.Error(ctx, "error loading comments", "post_id", postID, "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	comments := a.state.Comments()
	if len(comments) == 0 {
		printlnFn("No comments on this post.")
		return nil
	}

	for _, c := range comments {
		printlnFn(formatComment(c))
	}
	return nil
}

// Approve marks a comment as approved. In the pending queue the comment
// disappears from the view; in the per-post view it stays, flagged approved.
func (a *App) Approve(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Comment id to approve", os.Stdout)
	if err != nil {
		printlnFn("Comment id must be a number")
		return err
	}

	if err := a.state.ModerateComment(ctx, id, true); err != nil {
		a.log.Error(ctx, "error approving comment", "id", id, "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Approved comment %d", id))
	return nil
}

// Reject deletes a comment; there is no separate rejected state.
func (a *App) Reject(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Comment id to reject", os.Stdout)
	if err != nil {
		printlnFn("Comment id must be a number")
		return err
	}

	if err := a.state.DeleteComment(ctx, id); err != nil {
		a.log.Error(ctx, "error rejecting comment", "id", id, "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Rejected comment %d", id))
	return nil
}

func formatComment(c models.Comment) string {
	state := "pending"
	if c.Approved {
		state = "approved"
	}
	return fmt.Sprintf("[%d] post %d | %s | %s | %s: %s",
		c.ID, c.PostID, state, c.CreatedTime().Format("2006-01-02 15:04"),
		c.AuthorName, summarize(c.Content, 60))
}
