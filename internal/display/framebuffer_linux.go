//go:build linux

package display

import (
	"image"

	fb "github.com/gonutz/framebuffer"
)

// Framebuffer is an open Linux framebuffer device.
type Framebuffer struct {
	dev    *fb.Device
	Logger Logger
}

// OpenFramebuffer opens the framebuffer device at path, usually DefaultDevice.
func OpenFramebuffer(path string, logger Logger) (*Framebuffer, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		bounds := dev.Bounds()
		logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	return &Framebuffer{dev: dev, Logger: logger}, nil
}

// Bounds returns the device's pixel bounds.
func (f *Framebuffer) Bounds() image.Rectangle { return f.dev.Bounds() }

// Show scales img to the whole screen.
func (f *Framebuffer) Show(img image.Image) error {
	Blit(f.dev, img)
	return nil
}

func (f *Framebuffer) Close() error {
	f.dev.Close()
	return nil
}
