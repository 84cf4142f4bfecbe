// Package cli is the headless frontend used when stdout is not a terminal.
// It prints the server's video list as plain lines or performs a single
// upload with textual progress.
package cli
