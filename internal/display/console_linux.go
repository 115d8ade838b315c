//go:build linux

package display

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Prefer /dev/tty (active VT), fallback to /dev/tty0
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// EnterGraphicsMode switches the active console to graphics mode and hides
// the cursor so the text console does not draw over the framebuffer. The
// returned function restores text mode and the cursor; it is safe to call
// even when switching failed.
func EnterGraphicsMode(logger Logger) (restore func()) {
	logResult(logger, setConsoleMode(kdGraphics), "KD_GRAPHICS set", "KD_GRAPHICS failed")
	logResult(logger, writeVT("\x1b[?25l"), "cursor hidden", "hide cursor failed")
	return func() {
		logResult(logger, writeVT("\x1b[?25h"), "cursor shown", "show cursor failed")
		logResult(logger, setConsoleMode(kdText), "KD_TEXT set", "KD_TEXT failed")
	}
}

func logResult(logger Logger, err error, ok, failed string) {
	if logger == nil {
		return
	}
	if err != nil {
		logger.Errorf("tty", "%s: %v", failed, err)
		return
	}
	logger.Infof("tty", "%s", ok)
}

func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %w", lastErr)
}
