// Package common holds helpers shared by the clockeroo services.
//
// It wires the terminal, the completion notifier and the interactive loop into a
// Runtime, prints the banner and detects the current system actor
// (hostname/username) recorded with a stopwatch.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
