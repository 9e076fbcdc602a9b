// Package config defines user settings for clockeroo and provides helpers to
// load, validate and save them in YAML format.
//
// Settings cover where the stopwatch record lives, logging, completion alerts
// and the input poll intervals of the interactive display. A missing settings
// file at the default location means "use defaults".
package config
