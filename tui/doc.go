// Package tui plays a recorded search in the terminal.
//
// The Model steps through the frames of a render.Animation on a timer.
// Playback can be paused, stepped in either direction, restarted and sped
// up or slowed down from the keyboard.
package tui
