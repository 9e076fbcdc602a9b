// Package stopwatch runs the stopwatch commands. A stopwatch outlives the
// process that started it: its wall-clock start is persisted and every command
// recomputes the elapsed time from it.
package stopwatch
