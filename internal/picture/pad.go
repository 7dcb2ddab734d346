package picture

import (
	"fmt"

	"github.com/kulaginds/avpix/internal/pixfmt"
)

// Pad writes a width×height output image into dst consisting of src
// surrounded by the given borders, filled with fillColor (one value per
// plane). src may be nil, in which case only the borders are written.
// Margins and copy extents are shifted per plane by the chroma shifts;
// only planar YUV formats are supported.
//
// dst linesizes are assumed to equal the padded plane widths.
func Pad(dst, src *Picture, height, width int, f pixfmt.PixelFormat,
	padTop, padBottom, padLeft, padRight int, fillColor [3]byte) error {

	d, err := pixfmt.Lookup(f)
	if err != nil {
		return err
	}
	if !pixfmt.IsYUVPlanar(d) {
		return fmt.Errorf("%w: pad requires planar YUV, got %s", ErrUnsupportedFormat, f)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if padTop < 0 || padBottom < 0 || padLeft < 0 || padRight < 0 ||
		padTop+padBottom >= height || padLeft+padRight >= width {
		return fmt.Errorf("%w: padding %d/%d/%d/%d does not fit %dx%d",
			ErrInvalidDimensions, padTop, padBottom, padLeft, padRight, width, height)
	}

	for i := 0; i < 3; i++ {
		xShift, yShift := 0, 0
		if i > 0 {
			xShift = int(d.ChromaShiftX)
			yShift = int(d.ChromaShiftY)
		}

		wrap := dst.Linesize[i]
		plane := dst.Data[i]
		color := fillColor[i]

		if padTop > 0 || padLeft > 0 {
			fill(plane[:wrap*(padTop>>yShift)+(padLeft>>xShift)], color)
		}

		if padLeft > 0 || padRight > 0 {
			// Right margin of each interior row runs into the left
			// margin of the next one.
			off := wrap*(padTop>>yShift) + wrap - (padRight >> xShift)
			yHeight := (height - 1 - (padTop + padBottom)) >> yShift
			for y := 0; y < yHeight; y++ {
				fill(plane[off:off+((padLeft+padRight)>>xShift)], color)
				off += wrap
			}
		}

		if src != nil {
			copyWidth := (width - padLeft - padRight) >> xShift
			in := 0
			out := wrap*(padTop>>yShift) + (padLeft >> xShift)

			// first interior line
			copy(plane[out:out+copyWidth], src.Data[i][in:in+copyWidth])
			in += src.Linesize[i]

			out = wrap*(padTop>>yShift) + wrap - (padRight >> xShift)
			yHeight := (height - 1 - (padTop + padBottom)) >> yShift
			for y := 0; y < yHeight; y++ {
				fill(plane[out:out+((padLeft+padRight)>>xShift)], color)
				copy(plane[out+((padLeft+padRight)>>xShift):out+((padLeft+padRight)>>xShift)+copyWidth],
					src.Data[i][in:in+copyWidth])
				in += src.Linesize[i]
				out += wrap
			}
		}

		if padBottom > 0 || padRight > 0 {
			off := wrap*((height-padBottom)>>yShift) - (padRight >> xShift)
			fill(plane[off:off+wrap*(padBottom>>yShift)+(padRight>>xShift)], color)
		}
	}

	return nil
}
