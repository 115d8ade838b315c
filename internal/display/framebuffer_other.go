//go:build !linux

package display

import "image"

type Framebuffer struct {
	Logger Logger
}

func OpenFramebuffer(path string, logger Logger) (*Framebuffer, error) {
	return nil, ErrUnsupported
}

func (f *Framebuffer) Bounds() image.Rectangle    { return image.Rectangle{} }
func (f *Framebuffer) Show(img image.Image) error { return ErrUnsupported }
func (f *Framebuffer) Close() error               { return nil }
