//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package main

import "runtime"

// platformVersion describes the platform the command is running on.
func platformVersion() string {
	return runtime.GOOS
}
