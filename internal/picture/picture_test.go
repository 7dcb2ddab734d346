package picture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulaginds/avpix/internal/pixfmt"
)

func TestPlaneDims(t *testing.T) {
	tests := []struct {
		name   string
		format pixfmt.PixelFormat
		plane  int
		wantW  int
		wantH  int
	}{
		{name: "420 luma", format: pixfmt.YUV420P, plane: 0, wantW: 16, wantH: 16},
		{name: "420 cb", format: pixfmt.YUV420P, plane: 1, wantW: 8, wantH: 8},
		{name: "420 cr", format: pixfmt.YUV420P, plane: 2, wantW: 8, wantH: 8},
		{name: "422 chroma", format: pixfmt.YUV422P, plane: 1, wantW: 8, wantH: 16},
		{name: "444 chroma", format: pixfmt.YUV444P, plane: 2, wantW: 16, wantH: 16},
		{name: "411 chroma", format: pixfmt.YUV411P, plane: 1, wantW: 4, wantH: 16},
		{name: "410 chroma", format: pixfmt.YUV410P, plane: 1, wantW: 4, wantH: 4},
		{name: "alpha full res", format: pixfmt.YUVA420P, plane: 3, wantW: 16, wantH: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := PlaneDims(tt.format, tt.plane, 16, 16)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}

	_, _, err := PlaneDims(pixfmt.YUV420P, 4, 16, 16)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, _, err = PlaneDims(pixfmt.PixelFormat(9999), 0, 16, 16)
	assert.ErrorIs(t, err, pixfmt.ErrUnknownFormat)
}

func TestAlloc(t *testing.T) {
	pic, err := Alloc(pixfmt.YUV420P, 16, 8)
	require.NoError(t, err)

	assert.Len(t, pic.Data[0], 16*8)
	assert.Len(t, pic.Data[1], 8*4)
	assert.Len(t, pic.Data[2], 8*4)
	assert.Nil(t, pic.Data[3])
	assert.Equal(t, 16, pic.Linesize[0])
	assert.Equal(t, 8, pic.Linesize[1])

	gray, err := Alloc(pixfmt.Gray8, 10, 10)
	require.NoError(t, err)
	assert.Len(t, gray.Data[0], 100)
	assert.Nil(t, gray.Data[1])
}

func TestAllocErrors(t *testing.T) {
	_, err := Alloc(pixfmt.RGB24, 16, 16)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Alloc(pixfmt.YUV420P, 0, 16)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestSamePlane(t *testing.T) {
	buf := make([]byte, 64)
	assert.True(t, samePlane(buf, buf))
	assert.True(t, samePlane(buf, buf[:32]))
	assert.False(t, samePlane(buf, buf[1:]))
	assert.False(t, samePlane(buf, make([]byte, 64)))
	assert.False(t, samePlane(nil, buf))
}
