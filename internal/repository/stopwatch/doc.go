// Package stopwatch implements persistence for the stopwatch Record.
//
// The FileRepository keeps a single record in a well-known file so that a later
// process can resume or stop a stopwatch started by an earlier one. There is no
// locking between processes: the last start wins. Writes go through a temporary
// file and a rename, so readers never observe a partially written record.
// MemoryRepository is an in-process stand-in with the same semantics.
package stopwatch
