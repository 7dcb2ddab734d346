// Package picture implements the planar image model and the geometric
// transforms that operate on it: crop, pad, box shrink and deinterlace.
// All transforms work on caller-owned buffers with explicit per-plane
// strides; none of them allocate, except the in-place deinterlace which
// needs a single scratch line.
package picture

import (
	"errors"
	"fmt"

	"github.com/kulaginds/avpix/internal/pixfmt"
)

// Errors
var (
	ErrUnsupportedFormat = errors.New("picture: operation does not support this pixel format")
	ErrInvalidDimensions = errors.New("picture: invalid dimensions")
)

// Picture references up to 4 image planes. Plane 0 is always full
// resolution; planes 1 and 2 are chroma, scaled down by the format's
// chroma shifts; plane 3 is alpha. The picture does not own the buffers.
type Picture struct {
	Data     [4][]byte
	Linesize [4]int
}

// PlaneDims returns the dimensions of one plane of a w×h image in format
// f. Chroma planes shrink by the chroma shifts; luma and alpha do not.
func PlaneDims(f pixfmt.PixelFormat, plane, width, height int) (int, int, error) {
	d, err := pixfmt.Lookup(f)
	if err != nil {
		return 0, 0, err
	}
	if plane < 0 || plane > 3 {
		return 0, 0, fmt.Errorf("%w: plane %d", ErrInvalidDimensions, plane)
	}
	if plane == 1 || plane == 2 {
		return width >> d.ChromaShiftX, height >> d.ChromaShiftY, nil
	}
	return width, height, nil
}

// planeCount returns the number of planes a planar format stores.
func planeCount(d pixfmt.Descriptor) int {
	if d.ColorModel == pixfmt.ModelGray {
		return 1
	}
	return int(d.ChannelCount)
}

// Alloc builds a Picture with freshly allocated, tightly packed planes.
// Only planar formats are supported; it exists for tests and callers that
// do not manage their own frame pool.
func Alloc(f pixfmt.PixelFormat, width, height int) (*Picture, error) {
	d, err := pixfmt.Lookup(f)
	if err != nil {
		return nil, err
	}
	if d.StorageLayout != pixfmt.LayoutPlanar {
		return nil, fmt.Errorf("%w: %s is not planar", ErrUnsupportedFormat, f)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	pic := &Picture{}
	for i := 0; i < planeCount(d); i++ {
		pw, ph, err := PlaneDims(f, i, width, height)
		if err != nil {
			return nil, err
		}
		pic.Data[i] = make([]byte, pw*ph)
		pic.Linesize[i] = pw
	}
	return pic, nil
}

// samePlane reports whether two plane slices alias the same memory,
// which switches the deinterlace into its in-place mode.
func samePlane(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// fill sets every byte of b to v.
func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
