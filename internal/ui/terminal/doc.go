// Package terminal puts a TTY into raw mode on the alternate screen, paints view
// frames with lipgloss and delivers key presses without blocking the caller.
package terminal
