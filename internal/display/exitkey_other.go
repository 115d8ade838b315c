//go:build !linux

package display

import "context"

const (
	KeyEsc = 1
	KeyF4  = 62
)

// WatchExitKey is a no-op without evdev.
func WatchExitKey(ctx context.Context, logger Logger, key uint16, onExit func()) {
	if logger != nil {
		logger.Infof("input", "exit key watching not supported")
	}
}
