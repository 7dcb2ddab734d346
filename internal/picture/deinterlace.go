package picture

import (
	"fmt"

	"github.com/kulaginds/avpix/internal/dsp"
	"github.com/kulaginds/avpix/internal/pixfmt"
)

// deinterlaceFormats is the fixed whitelist of formats the deinterlacer
// accepts.
var deinterlaceFormats = map[pixfmt.PixelFormat]bool{
	pixfmt.YUV420P:  true,
	pixfmt.YUVJ420P: true,
	pixfmt.YUV422P:  true,
	pixfmt.YUVJ422P: true,
	pixfmt.YUV444P:  true,
	pixfmt.YUV411P:  true,
	pixfmt.Gray8:    true,
}

// deinterlaceLine filters one output row from five input taps with
// weights [-1 4 2 4 -1], normalized by 8 with a +4 rounding bias and
// clipped to the valid sample range.
func deinterlaceLine(dst, lumM4, lumM3, lumM2, lumM1, lum []byte, size int) {
	for i := 0; i < size; i++ {
		sum := -int(lumM4[i])
		sum += int(lumM3[i]) << 2
		sum += int(lumM2[i]) << 1
		sum += int(lumM1[i]) << 2
		sum += -int(lum[i])
		dst[i] = dsp.Clip((sum + 4) >> 3)
	}
}

// deinterlaceLineInplace is the aliasing-aware variant: the filtered
// value overwrites the lumM2 row, which the next iteration still needs,
// so the old lumM2 sample is saved into lumM4 (the caller's scratch line)
// before the write. The save must happen between reading lumM2 and
// writing it.
func deinterlaceLineInplace(lumM4, lumM3, lumM2, lumM1, lum []byte, size int) {
	for i := 0; i < size; i++ {
		sum := -int(lumM4[i])
		sum += int(lumM3[i]) << 2
		sum += int(lumM2[i]) << 1
		lumM4[i] = lumM2[i]
		sum += int(lumM1[i]) << 2
		sum += -int(lum[i])
		lumM2[i] = dsp.Clip((sum + 4) >> 3)
	}
}

// deinterlaceBottomField copies top-field rows and synthesizes
// bottom-field rows from two temporally adjacent rows above and below.
// The last bottom row has no future row and reuses the final source row
// as its own lookahead.
func deinterlaceBottomField(dst []byte, dstWrap int, src []byte, srcWrap, width, height int) {
	srcM2 := 0
	srcM1 := 0
	src0 := srcWrap
	srcP1 := src0 + srcWrap
	srcP2 := srcP1 + srcWrap
	d := 0

	for y := 0; y < height-2; y += 2 {
		copy(dst[d:d+width], src[srcM1:srcM1+width])
		d += dstWrap
		deinterlaceLine(dst[d:], src[srcM2:], src[srcM1:], src[src0:], src[srcP1:], src[srcP2:], width)
		srcM2 = src0
		srcM1 = srcP1
		src0 = srcP2
		srcP1 += 2 * srcWrap
		srcP2 += 2 * srcWrap
		d += dstWrap
	}
	copy(dst[d:d+width], src[srcM1:srcM1+width])
	d += dstWrap
	// last line: repeat the final source row as lookahead
	deinterlaceLine(dst[d:], src[srcM2:], src[srcM1:], src[src0:], src[src0:], src[src0:], width)
}

// deinterlaceBottomFieldInplace runs the same filter on a single buffer.
// One scratch line holds the even row that each filtered row would
// otherwise destroy; rows must be processed strictly in order, never in
// parallel, because consecutive iterations share that line.
func deinterlaceBottomFieldInplace(src []byte, srcWrap, width, height int) {
	buf := make([]byte, width) // the single scratch line

	srcM1 := 0
	copy(buf, src[srcM1:srcM1+width])
	src0 := srcWrap
	srcP1 := src0 + srcWrap
	srcP2 := srcP1 + srcWrap

	for y := 0; y < height-2; y += 2 {
		deinterlaceLineInplace(buf, src[srcM1:], src[src0:], src[srcP1:], src[srcP2:], width)
		srcM1 = srcP1
		src0 = srcP2
		srcP1 += 2 * srcWrap
		srcP2 += 2 * srcWrap
	}
	// last line
	deinterlaceLineInplace(buf, src[srcM1:], src[src0:], src[src0:], src[src0:], width)
}

// Deinterlace converts an interlaced picture into a progressive one. Top
// field rows are preserved exactly; bottom field rows are rebuilt with a
// 5-tap filter. When dst and src share plane memory the in-place variant
// runs instead. Both width and height must be multiples of 4.
func Deinterlace(dst, src *Picture, f pixfmt.PixelFormat, width, height int) error {
	if !deinterlaceFormats[f] {
		return fmt.Errorf("%w: deinterlace does not support %s", ErrUnsupportedFormat, f)
	}
	if width <= 0 || height <= 0 || width&3 != 0 || height&3 != 0 {
		return fmt.Errorf("%w: %dx%d (must be positive multiples of 4)", ErrInvalidDimensions, width, height)
	}

	for i := 0; i < 3; i++ {
		if i == 1 {
			switch f {
			case pixfmt.YUV420P, pixfmt.YUVJ420P:
				width >>= 1
				height >>= 1
			case pixfmt.YUV422P, pixfmt.YUVJ422P:
				width >>= 1
			case pixfmt.YUV411P:
				width >>= 2
			}
			if f == pixfmt.Gray8 {
				break
			}
		}
		if samePlane(dst.Data[i], src.Data[i]) {
			deinterlaceBottomFieldInplace(dst.Data[i], dst.Linesize[i], width, height)
		} else {
			deinterlaceBottomField(dst.Data[i], dst.Linesize[i], src.Data[i], src.Linesize[i], width, height)
		}
	}

	return nil
}
