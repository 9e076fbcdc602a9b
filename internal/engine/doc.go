// Package engine runs an interactive session: it samples the clock, renders the
// current frame, polls for a key without blocking the clock and fires the
// completion side effects exactly once.
package engine
