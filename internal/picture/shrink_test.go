package picture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatPlane(size int, v byte) []byte {
	p := make([]byte, size)
	for i := range p {
		p[i] = v
	}
	return p
}

func TestShrinkFlatFieldInvariance(t *testing.T) {
	tests := []struct {
		name   string
		factor int
		shrink func(dst []byte, dstWrap int, src []byte, srcWrap, w, h int)
	}{
		{name: "2x2", factor: 2, shrink: Shrink2x2},
		{name: "4x4", factor: 4, shrink: Shrink4x4},
		{name: "8x8", factor: 8, shrink: Shrink8x8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcW := 8 * tt.factor
			src := flatPlane(srcW*srcW, 137)
			dst := make([]byte, 8*8)

			tt.shrink(dst, 8, src, srcW, 8, 8)
			for i, v := range dst {
				assert.Equal(t, byte(137), v, "sample %d", i)
			}
		})
	}
}

func TestShrink2x2Rounding(t *testing.T) {
	// block [0 1; 2 3] sums to 6, rounds to 2
	src := []byte{
		0, 1, 10, 11,
		2, 3, 12, 13,
	}
	dst := make([]byte, 2)

	Shrink2x2(dst, 2, src, 4, 2, 1)
	assert.Equal(t, byte(2), dst[0])
	assert.Equal(t, byte((10+11+12+13+2)>>2), dst[1])
}

func TestShrink4x4Rounding(t *testing.T) {
	src := make([]byte, 4*4)
	for i := range src {
		src[i] = byte(i) // sum 120, +8 >> 4 = 8
	}
	dst := make([]byte, 1)

	Shrink4x4(dst, 1, src, 4, 1, 1)
	assert.Equal(t, byte(8), dst[0])
}

func TestShrink8x8Rounding(t *testing.T) {
	src := make([]byte, 8*8)
	for i := range src {
		src[i] = 1
	}
	src[0] = 33 // sum 96, +32 >> 6 = 2
	dst := make([]byte, 1)

	Shrink8x8(dst, 1, src, 8, 1, 1)
	assert.Equal(t, byte(2), dst[0])
}

func TestShrinkRespectsWraps(t *testing.T) {
	// source wider than the region being shrunk
	srcWrap := 8
	src := make([]byte, srcWrap*4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src[y*srcWrap+x] = 100
		}
		for x := 4; x < 8; x++ {
			src[y*srcWrap+x] = 255 // outside the shrink region
		}
	}

	dst := make([]byte, 4)
	Shrink2x2(dst, 2, src, srcWrap, 2, 2)
	for i := 0; i < 4; i++ {
		assert.Equal(t, byte(100), dst[i])
	}
}
