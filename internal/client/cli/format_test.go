package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogsync/internal/client/models"
)

func TestFormatPost(t *testing.T) {
	p := models.Post{ID: 7, Content: "hello", Published: true, CommentCount: 2, CreatedAt: 1700000000000}
	got := formatPost(p)

	for _, want := range []string{"[7]", "hello", "published", "2 comment(s)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestFormatComment_PendingState(t *testing.T) {
	c := models.Comment{ID: 5, PostID: 1, AuthorName: "alice", Content: "hi", CreatedAt: 1700000000000}
	got := formatComment(c)

	for _, want := range []string{"[5]", "post 1", "pending", "alice"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	if got := summarize("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("x", 20)
	got := summarize(long, 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Fatalf("got %q", got)
	}
}
