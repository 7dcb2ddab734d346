package picture

import (
	"fmt"

	"github.com/kulaginds/avpix/internal/pixfmt"
)

// Crop makes dst view the region of src starting topRows/leftCols into
// the image. Pure offset computation: plane slices are re-based, strides
// are copied, no pixels move. Only planar YUV formats are supported.
//
// Odd offsets are not snapped: the caller is expected to pass offsets
// aligned to the chroma grid, otherwise chroma shifts by a fraction of a
// luma pixel.
func Crop(dst, src *Picture, f pixfmt.PixelFormat, topRows, leftCols int) error {
	d, err := pixfmt.Lookup(f)
	if err != nil {
		return err
	}
	if !pixfmt.IsYUVPlanar(d) {
		return fmt.Errorf("%w: crop requires planar YUV, got %s", ErrUnsupportedFormat, f)
	}
	if topRows < 0 || leftCols < 0 {
		return fmt.Errorf("%w: negative crop band %d/%d", ErrInvalidDimensions, topRows, leftCols)
	}

	xShift := int(d.ChromaShiftX)
	yShift := int(d.ChromaShiftY)

	dst.Data[0] = src.Data[0][topRows*src.Linesize[0]+leftCols:]
	dst.Data[1] = src.Data[1][(topRows>>yShift)*src.Linesize[1]+(leftCols>>xShift):]
	dst.Data[2] = src.Data[2][(topRows>>yShift)*src.Linesize[2]+(leftCols>>xShift):]

	dst.Linesize[0] = src.Linesize[0]
	dst.Linesize[1] = src.Linesize[1]
	dst.Linesize[2] = src.Linesize[2]

	return nil
}
