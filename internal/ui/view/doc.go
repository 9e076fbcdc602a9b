// Package view describes what the interactive display shows, independent of how
// glyphs are laid out. A Frame is a list of rows made of toned spans; the terminal
// package paints it.
package view
