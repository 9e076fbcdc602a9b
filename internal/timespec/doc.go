// Package timespec parses the user-facing duration and time-of-day grammars
// and formats durations for display.
//
// Durations are written as unit groups (1h30m45s) with an optional trailing
// bare number of seconds, or as a single bare number of seconds (90).
// Times of day use either the 12-hour form (7:20am, 12:05 PM) or the 24-hour
// form (19:20).
package timespec
