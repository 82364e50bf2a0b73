// Package sourcefile provides TOML configuration backed by a file on disk.
//
// The provider holds one immutable snapshot at a time. Reload re-reads the file
// and swaps in a freshly built snapshot; a failed reload keeps the previous one.
//
// Example:
//
//	provider, err := sourcefile.New(ctx, "/etc/app/config.toml", sourcefile.Options{})
//	reader := configtoml.NewReader(provider)
//	port, err := reader.Int("server.port")
package sourcefile
