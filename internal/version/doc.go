// Package version exposes the clockeroo build metadata.
//
// Version, Commit and BuildTime are injected with -ldflags at build time and
// keep development placeholders otherwise.
package version
