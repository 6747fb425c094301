//go:build !linux

package main

import "os"

// isTerminal reports whether f is a terminal. Outside Linux, output is never
// colored.
func isTerminal(f *os.File) bool {
	return false
}
