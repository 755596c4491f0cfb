// Package cli implements the interactive admin console for blogsync.
//
// The console is a small REPL: commands are dispatched to methods on App,
// which delegate to the session layer for all state changes and network
// calls. Handlers print their own errors and the REPL keeps running; only
// EOF or an explicit exit ends the loop.
//
// A background watcher probes server reachability and reflects it in the
// prompt as online/offline; while the session is unconfigured the watcher
// stays idle.
package cli
