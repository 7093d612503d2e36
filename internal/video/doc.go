// Package video shows the display buffer in a desktop window and reads the
// keypad from the keyboard.
//
// Besides the mapped keypad keys the window handles Escape and Ctrl+C to
// quit, Enter to toggle single stepping, N to execute a single instruction
// while paused, F12 to toggle the status bar and Ctrl+Shift+C to copy the
// display as text to the clipboard.
package video
