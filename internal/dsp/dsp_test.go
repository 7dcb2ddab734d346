package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFillsEverySlot(t *testing.T) {
	var c Context
	require.NoError(t, Init(&c, FlagNone))

	assert.NotNil(t, c.GetPixels)
	assert.NotNil(t, c.DiffPixels)
	assert.NotNil(t, c.SumAbsDCTElem)
	assert.NotNil(t, c.PutPixelsClamped)
	assert.NotNil(t, c.PutSignedPixelsClamped)
	assert.NotNil(t, c.AddPixelsClamped)
	assert.NotNil(t, c.FDCT)
	assert.NotNil(t, c.IDCT)
	assert.NotNil(t, c.IDCTPut)
	assert.NotNil(t, c.IDCTAdd)
	assert.NotNil(t, c.EmptyState)

	families := map[string][MetricSlots]MetricFunc{
		"sad":           c.SAD,
		"sse":           c.SSE,
		"hadamard8diff": c.Hadamard8Diff,
		"vsad":          c.VSAD,
		"vsse":          c.VSSE,
		"nsse":          c.NSSE,
	}
	for name, family := range families {
		assert.NotNil(t, family[MetricSize16], "%s size 16", name)
		assert.NotNil(t, family[MetricSize8], "%s size 8", name)
		for slot := 2; slot < MetricSlots; slot++ {
			assert.Nil(t, family[slot], "%s slot %d must stay nil", name, slot)
		}
	}

	for w := 0; w < 2; w++ {
		for v := 0; v < 4; v++ {
			assert.NotNil(t, c.PixAbs[w][v], "pix_abs[%d][%d]", w, v)
		}
	}

	c.EmptyState() // must be callable
}

func TestInitBaselinePermutationIsIdentity(t *testing.T) {
	var c Context
	require.NoError(t, Init(&c, FlagNone))

	assert.Equal(t, PermutationNone, c.IDCTPermutationType)
	for i := 0; i < 64; i++ {
		assert.Equal(t, uint8(i), c.IDCTPermutation[i])
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, uint8(0), Clip(-MaxNegCrop))
	assert.Equal(t, uint8(0), Clip(-1))
	assert.Equal(t, uint8(0), Clip(0))
	assert.Equal(t, uint8(97), Clip(97))
	assert.Equal(t, uint8(255), Clip(255))
	assert.Equal(t, uint8(255), Clip(256))
	assert.Equal(t, uint8(255), Clip(255+MaxNegCrop-1))
}

func block16(fill byte) []byte {
	b := make([]byte, 16*16)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestSADAndSSE(t *testing.T) {
	blk1 := block16(10)
	blk2 := block16(10)

	assert.Equal(t, 0, pixAbs16(blk1, blk2, 16, 16))
	assert.Equal(t, 0, sse16(blk1, blk2, 16, 16))

	blk2[0] = 13 // one sample off by 3
	assert.Equal(t, 3, pixAbs16(blk1, blk2, 16, 16))
	assert.Equal(t, 9, sse16(blk1, blk2, 16, 16))
	assert.Equal(t, 3, pixAbs8(blk1, blk2, 16, 8))
	assert.Equal(t, 9, sse8(blk1, blk2, 16, 8))
}

func TestPixAbsHalfPel(t *testing.T) {
	// reference alternates 10,20 per column; x2 interpolates to 15 with
	// round-up
	blk1 := block16(15)
	blk2 := make([]byte, 16*17)
	for i := range blk2 {
		if i%2 == 0 {
			blk2[i] = 10
		} else {
			blk2[i] = 20
		}
	}

	assert.Equal(t, 0, pixAbs16X2(blk1, blk2, 16, 16))

	// rows alternate 30,40; y2 averages adjacent rows to 35
	for y := 0; y < 17; y++ {
		v := byte(30)
		if y%2 == 1 {
			v = 40
		}
		for x := 0; x < 16; x++ {
			blk2[y*16+x] = v
		}
	}
	blk1 = block16(35)
	assert.Equal(t, 0, pixAbs16Y2(blk1, blk2, 16, 16))
}

func TestVSADIgnoresDCOffset(t *testing.T) {
	// constant offset between the blocks has identical vertical gradients
	blk1 := block16(50)
	blk2 := block16(90)

	assert.Equal(t, 0, vsad16(blk1, blk2, 16, 16))
	assert.Equal(t, 0, vsse16(blk1, blk2, 16, 16))
	assert.NotEqual(t, 0, pixAbs16(blk1, blk2, 16, 16))
}

func TestHadamardZeroForIdenticalBlocks(t *testing.T) {
	blk1 := block16(123)
	blk2 := block16(123)
	assert.Equal(t, 0, hadamard8Diff16(blk1, blk2, 16, 16))
	assert.Equal(t, 0, hadamard8Diff8(blk1, blk2, 16, 8))

	// single-sample difference spreads across all 64 coefficients
	blk2[0] = 124
	assert.Equal(t, 64, hadamard8Diff8(blk1, blk2, 16, 8))
}

func TestNSSEMatchesSSEOnStructurelessBlocks(t *testing.T) {
	blk1 := block16(10)
	blk2 := block16(12)

	// flat blocks have no gradients, so nsse degenerates to sse
	assert.Equal(t, sse16(blk1, blk2, 16, 16), nsse16(blk1, blk2, 16, 16))
}

func TestGetDiffPutPixels(t *testing.T) {
	pixels := make([]byte, 8*8)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	block := make([]int16, 64)
	getPixels(block, pixels, 8)
	for i := 0; i < 64; i++ {
		assert.Equal(t, int16(i), block[i])
	}

	out := make([]byte, 8*8)
	putPixelsClamped(block, out, 8)
	assert.Equal(t, pixels, out)

	// clamping on both ends
	block[0] = -5
	block[1] = 300
	putPixelsClamped(block, out, 8)
	assert.Equal(t, byte(0), out[0])
	assert.Equal(t, byte(255), out[1])

	diff := make([]int16, 64)
	diffPixels(diff, pixels, pixels, 8)
	for _, v := range diff {
		assert.Zero(t, v)
	}
}

func TestPutSignedPixelsClamped(t *testing.T) {
	block := make([]int16, 64)
	block[0] = -128
	block[1] = 127
	block[2] = -200

	out := make([]byte, 8*8)
	putSignedPixelsClamped(block, out, 8)
	assert.Equal(t, byte(0), out[0])
	assert.Equal(t, byte(255), out[1])
	assert.Equal(t, byte(0), out[2])
	assert.Equal(t, byte(128), out[3])
}

func TestAddPixelsClamped(t *testing.T) {
	block := make([]int16, 64)
	block[0] = 100
	block[1] = -100

	out := make([]byte, 8*8)
	for i := range out {
		out[i] = 200
	}
	addPixelsClamped(block, out, 8)
	assert.Equal(t, byte(255), out[0])
	assert.Equal(t, byte(100), out[1])
	assert.Equal(t, byte(200), out[2])
}

func TestSumAbsDCTElem(t *testing.T) {
	block := make([]int16, 64)
	block[0] = -3
	block[63] = 5
	assert.Equal(t, 8, sumAbsDCTElem(block))
}

func TestSetCmp(t *testing.T) {
	var c Context
	require.NoError(t, Init(&c, FlagNone))

	tests := []struct {
		name string
		cmp  CmpType
		want [MetricSlots]MetricFunc
	}{
		{name: "sad", cmp: CmpSAD, want: c.SAD},
		{name: "sse", cmp: CmpSSE, want: c.SSE},
		{name: "hadamard", cmp: CmpHadamard, want: c.Hadamard8Diff},
		{name: "vsad", cmp: CmpVSAD, want: c.VSAD},
		{name: "vsse", cmp: CmpVSSE, want: c.VSSE},
		{name: "nsse", cmp: CmpNSSE, want: c.NSSE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetCmp(&c, tt.cmp)
			require.NoError(t, err)

			blk1 := block16(7)
			blk2 := block16(9)
			assert.Equal(t, tt.want[MetricSize16](blk1, blk2, 16, 16), got[MetricSize16](blk1, blk2, 16, 16))
		})
	}

	_, err := SetCmp(&c, CmpType(99))
	assert.ErrorIs(t, err, ErrUnknownCmp)
}

func TestInitWithCPUFlagsKeepsSemantics(t *testing.T) {
	var base, tuned Context
	require.NoError(t, Init(&base, FlagNone))
	require.NoError(t, Init(&tuned, FlagSSE2|FlagAVX2))

	blk1 := make([]byte, 17*16)
	blk2 := make([]byte, 17*16)
	for i := range blk1 {
		blk1[i] = byte(i * 7)
		blk2[i] = byte(i*3 + 1)
	}

	assert.Equal(t, base.SAD[MetricSize16](blk1, blk2, 16, 16), tuned.SAD[MetricSize16](blk1, blk2, 16, 16))
	assert.Equal(t, base.SSE[MetricSize16](blk1, blk2, 16, 16), tuned.SSE[MetricSize16](blk1, blk2, 16, 16))
	assert.Equal(t, base.VSAD[MetricSize16](blk1, blk2, 16, 16), tuned.VSAD[MetricSize16](blk1, blk2, 16, 16))
	assert.Equal(t, PermutationNone, tuned.IDCTPermutationType)
}
