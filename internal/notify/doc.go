// Package notify delivers completion alerts: the terminal bell, a short sound and
// a desktop notification.
//
// Every operation is best effort. Failures are logged at debug level and never
// reach the caller, because the on-screen state is the authoritative signal that
// a timer or alarm has completed.
package notify
