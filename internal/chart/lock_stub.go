//go:build !unix

package chart

import "os"

// lockFile is a no-op where fcntl locks are unavailable; concurrent
// invocations may then lose updates (last write wins).
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
