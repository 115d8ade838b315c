//go:build unix

package logging

import (
	"os"

	"golang.org/x/sys/unix"
)

// RedirectStdIO points stdout and stderr at the file at path, appending.
// The descriptors are duplicated, so runtime panics and output from other
// goroutines land in the file too.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return err
		}
	}
	return nil
}
