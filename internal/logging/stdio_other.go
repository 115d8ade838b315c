//go:build !unix

package logging

import "os"

// RedirectStdIO replaces os.Stdout and os.Stderr with the file at path.
// Runtime-level output such as panics still goes to the original stderr.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
