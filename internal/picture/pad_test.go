package picture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulaginds/avpix/internal/pixfmt"
)

func TestPad444Borders(t *testing.T) {
	src, err := Alloc(pixfmt.YUV444P, 4, 4)
	require.NoError(t, err)
	for p := 0; p < 3; p++ {
		for i := range src.Data[p] {
			src.Data[p][i] = byte(p*64 + i + 1)
		}
	}

	dst, err := Alloc(pixfmt.YUV444P, 8, 8)
	require.NoError(t, err)

	color := [3]byte{16, 128, 128}
	require.NoError(t, Pad(dst, src, 8, 8, pixfmt.YUV444P, 2, 2, 2, 2, color))

	for p := 0; p < 3; p++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				got := dst.Data[p][y*8+x]
				if y >= 2 && y < 6 && x >= 2 && x < 6 {
					assert.Equal(t, src.Data[p][(y-2)*4+(x-2)], got, "plane %d interior (%d,%d)", p, y, x)
				} else {
					assert.Equal(t, color[p], got, "plane %d border (%d,%d)", p, y, x)
				}
			}
		}
	}
}

func TestPad420ChromaShiftedMargins(t *testing.T) {
	src, err := Alloc(pixfmt.YUV420P, 4, 4)
	require.NoError(t, err)
	for p := 0; p < 3; p++ {
		for i := range src.Data[p] {
			src.Data[p][i] = 200
		}
	}

	dst, err := Alloc(pixfmt.YUV420P, 8, 8)
	require.NoError(t, err)

	color := [3]byte{0, 50, 60}
	require.NoError(t, Pad(dst, src, 8, 8, pixfmt.YUV420P, 2, 2, 2, 2, color))

	// chroma planes are 4x4 with a 1-sample border
	for p := 1; p < 3; p++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				got := dst.Data[p][y*4+x]
				if y >= 1 && y < 3 && x >= 1 && x < 3 {
					assert.Equal(t, byte(200), got, "plane %d interior (%d,%d)", p, y, x)
				} else {
					assert.Equal(t, color[p], got, "plane %d border (%d,%d)", p, y, x)
				}
			}
		}
	}
}

func TestPadBordersOnlyWithoutSource(t *testing.T) {
	dst, err := Alloc(pixfmt.YUV444P, 6, 6)
	require.NoError(t, err)
	for i := range dst.Data[0] {
		dst.Data[0][i] = 99 // interior must survive untouched
	}

	require.NoError(t, Pad(dst, nil, 6, 6, pixfmt.YUV444P, 1, 1, 1, 1, [3]byte{7, 8, 9}))

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got := dst.Data[0][y*6+x]
			if y >= 1 && y < 5 && x >= 1 && x < 5 {
				assert.Equal(t, byte(99), got, "(%d,%d)", y, x)
			} else {
				assert.Equal(t, byte(7), got, "(%d,%d)", y, x)
			}
		}
	}
}

func TestPadErrors(t *testing.T) {
	dst, err := Alloc(pixfmt.YUV444P, 4, 4)
	require.NoError(t, err)

	err = Pad(dst, nil, 4, 4, pixfmt.RGB24, 1, 1, 1, 1, [3]byte{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = Pad(dst, nil, 4, 4, pixfmt.YUV444P, 2, 2, 1, 1, [3]byte{})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	err = Pad(dst, nil, 4, 4, pixfmt.YUV444P, -1, 0, 0, 0, [3]byte{})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	err = Pad(dst, nil, 0, 4, pixfmt.YUV444P, 0, 0, 0, 0, [3]byte{})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
