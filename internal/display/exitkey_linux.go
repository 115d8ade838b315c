//go:build linux

package display

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	KeyEsc = 1
	KeyF4  = 62
)

// input_event = timeval + u16 type + u16 code + s32 value.
var (
	timevalSize = binary.Size(unix.Timeval{})
	eventSize   = timevalSize + 2 + 2 + 4
)

// WatchExitKey watches evdev devices under /dev/input/event* and calls
// onExit once when key is pressed. Watching stops when ctx is done.
//
// It is best-effort: if no input devices are available, it logs and returns.
func WatchExitKey(ctx context.Context, logger Logger, key uint16, onExit func()) {
	if onExit == nil {
		return
	}
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for exit key")
		}
		return
	}

	var once sync.Once
	trigger := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "key %d pressed: exiting", key)
			}
			onExit()
		})
	}
	for _, path := range paths {
		go watchDevice(ctx, path, key, trigger)
	}
}

func watchDevice(ctx context.Context, path string, key uint16, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	defer unix.Close(fd)

	buf := make([]byte, 64*eventSize)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if keyPressed(buf[:n], key) {
			trigger()
			return
		}
	}
}

// keyPressed reports whether events holds a key-down record for key.
func keyPressed(events []byte, key uint16) bool {
	for off := 0; off+eventSize <= len(events); off += eventSize {
		rec := events[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[timevalSize : timevalSize+2])
		code := binary.LittleEndian.Uint16(rec[timevalSize+2 : timevalSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[timevalSize+4 : timevalSize+8]))
		if typ == evKey && code == key && value == 1 {
			return true
		}
	}
	return false
}
