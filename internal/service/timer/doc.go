// Package timer runs the countdown timer command.
package timer
