// Package notepad is the Composition Root for the notepad widget.
//
// It connects the core domain (notes, slots, the editor and the export
// pipeline) with the storage and desktop adapters using the Hexagonal
// Architecture pattern.
//
// A notebook shows the tasks of one team and theme. Each (team, theme)
// pair owns an independent slot in the backend, stored as a JSON array of
// notes, newest first. Notes can be rendered to a PNG card, shared
// through a chain of fallbacks (image, caption only, social compose link)
// or downloaded as "<title>.png".
//
// Features:
//
//   - **Pluggable storage**: JSON files (default), embedded SQLite or memory via `core.Backend`.
//   - **Safe writes**: atomic temp-file + rename in the fs adapter.
//   - **Live reload**: `Watch` reports external edits of slot files.
//   - **Dev sandbox**: `go run` / `go test` never touch the real data directory.
//
// Usage:
//
//	nb, err := notepad.Open(ctx, "./notes", "Pink Team", "dark", notebook.Config{},
//		notepad.WithLogger(logger),
//	)
//
//	nb.Editor().SetTitle("Daily")
//	nb.Editor().SetContent("stand-up at 10")
//	note, ok, err := nb.Submit(ctx)
package notepad
