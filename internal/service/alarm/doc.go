// Package alarm runs the alarm clock command.
package alarm
