//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// platformVersion describes the kernel the command is running on.
func platformVersion() string {
	var uname unix.Utsname
	if unix.Uname(&uname) != nil {
		// Nothing else to try.
		return "unknown"
	}
	s, v, r := uname.Sysname[:], uname.Version[:], uname.Release[:]
	return fmt.Sprintf("%s %s.%s", bytes.Trim(s, "\x00"), bytes.Trim(v, "\x00"), bytes.Trim(r, "\x00"))
}
