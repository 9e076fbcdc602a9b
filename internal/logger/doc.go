// Package logger wraps zap with a global sugared logger and context helpers.
//
// The logger writes to stderr, or to a file chosen in the settings, and never to
// stdout: stdout belongs to the interactive display. Services attach a name and
// key-value pairs to the context and log through it.
package logger
