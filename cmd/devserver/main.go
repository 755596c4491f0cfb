// Command devserver runs the in-memory blog server for local development.
// It implements the same HTTP/JSON protocol the client syncs against.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/blogsync/internal/devserver"
)

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	apiKey := flag.String("key", "dev-key", "API key required on authenticated endpoints")
	seed := flag.Bool("seed", false, "start with a few sample posts and comments")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	srv := devserver.New(*apiKey)
	if *seed {
		post := srv.SeedPost("Welcome to your blog. This is a sample post.", true)
		srv.SeedComment(post.ID, "alice", "First!", false)
		srv.SeedComment(post.ID, "bob", "Looking forward to more.", true)
		srv.SeedPost("A second sample post, still unpublished.", false)
	}

	slog.Info("devserver listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
