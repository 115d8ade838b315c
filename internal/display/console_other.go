//go:build !linux

package display

// EnterGraphicsMode is a no-op without a Linux console.
func EnterGraphicsMode(logger Logger) (restore func()) {
	return func() {}
}
