//go:build unix

package chart

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile blocks until it holds an exclusive advisory lock on f.
func lockFile(f *os.File) error {
	flock := unix.Flock_t{Type: unix.F_WRLCK, Whence: int16(0)}
	for {
		err := unix.FcntlFlock(f.Fd(), unix.F_SETLKW, &flock)
		if err != unix.EINTR {
			return err
		}
	}
}

// unlockFile releases the advisory lock held on f.
func unlockFile(f *os.File) error {
	flock := unix.Flock_t{Type: unix.F_UNLCK, Whence: int16(0)}
	return unix.FcntlFlock(f.Fd(), unix.F_SETLK, &flock)
}
