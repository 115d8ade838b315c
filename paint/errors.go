package paint

import (
	"errors"
	"fmt"
	"image"
)

// ErrGeometry is returned when a gradient region has its end before its start.
var ErrGeometry = errors.New("paint: gradient end precedes start")

// GeometryError reports the clamped points of a degenerate gradient region.
type GeometryError struct {
	Start image.Point
	End   image.Point
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("paint: gradient end %v precedes start %v after clamping", e.End, e.Start)
}

func (e *GeometryError) Unwrap() error { return ErrGeometry }
