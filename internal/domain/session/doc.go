// Package session contains the time-tracking core of clockeroo.
//
// A Session measures itself against a Baseline captured once at start. There are
// three variants: Countdown and Alarm can trigger, Stopwatch only accumulates
// elapsed time. Record is the persisted form of a stopwatch, which lets a later
// process resume it from its original wall-clock start.
package session
