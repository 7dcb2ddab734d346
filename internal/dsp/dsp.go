// Package dsp holds the DSP capability table: function slots for pixel
// and DCT operations plus motion-comparison metric families, filled with
// portable implementations at initialization and optionally overridden by
// one architecture-specific initializer. Once initialized, a Context is
// immutable and safe for concurrent reads from multiple worker threads.
package dsp

import (
	"errors"
	"fmt"
)

// MaxNegCrop is the negative headroom of the clip table.
const MaxNegCrop = 1024

// CropTable clips a sample index in [-MaxNegCrop, 255+MaxNegCrop) to the
// 0..255 range. Index with CropTable[MaxNegCrop+x].
var CropTable [256 + 2*MaxNegCrop]uint8

// squareTable maps a difference in [-256, 255] to its square. Index with
// squareTable[256+d].
var squareTable [512]uint32

// Clip clamps a sample value to 0..255 through the crop table. x must be
// within [-MaxNegCrop, 255+MaxNegCrop).
func Clip(x int) uint8 {
	return CropTable[MaxNegCrop+x]
}

func init() {
	for i := range CropTable {
		v := i - MaxNegCrop
		switch {
		case v < 0:
			CropTable[i] = 0
		case v > 255:
			CropTable[i] = 255
		default:
			CropTable[i] = uint8(v)
		}
	}
	for i := range squareTable {
		d := i - 256
		squareTable[i] = uint32(d * d)
	}
}

// CPUFlags describes which architecture-specific kernel family is
// eligible for this run. The flags come from an external CPU probe and
// are consumed exactly once, during Init.
type CPUFlags uint32

const (
	FlagSSE2 CPUFlags = 1 << iota
	FlagAVX2
	FlagNEON
)

// FlagNone forces the portable baseline.
const FlagNone CPUFlags = 0

// MetricFunc compares two pixel blocks. blk1 is aligned to the block
// width, blk2 has no alignment guarantee; h is the block height.
type MetricFunc func(blk1, blk2 []byte, stride, h int) int

// Metric family size-variant slots. Slot 0 is the 16-wide variant, slot
// 1 the 8-wide one. Slots 2..5 are reserved for narrower geometries that
// are never requested (width < 8); the baseline leaves them nil and
// callers must check before invoking.
const (
	MetricSize16 = 0
	MetricSize8  = 1

	// MetricSlots is the fixed number of size variants per family.
	MetricSlots = 6
)

// Context is the DSP capability table. Populate it with Init; never
// mutate it afterwards.
type Context struct {
	// pixel ops: interface with the DCT
	GetPixels     func(block []int16, pixels []byte, stride int)
	DiffPixels    func(block []int16, s1, s2 []byte, stride int)
	SumAbsDCTElem func(block []int16) int

	PutPixelsClamped       func(block []int16, pixels []byte, stride int)
	PutSignedPixelsClamped func(block []int16, pixels []byte, stride int)
	AddPixelsClamped       func(block []int16, pixels []byte, stride int)

	// transforms
	FDCT    func(block []int16)
	IDCT    func(block []int16)
	IDCTPut func(dest []byte, stride int, block []int16)
	IDCTAdd func(dest []byte, stride int, block []int16)

	// motion-comparison metric families
	SAD           [MetricSlots]MetricFunc
	SSE           [MetricSlots]MetricFunc
	Hadamard8Diff [MetricSlots]MetricFunc
	VSAD          [MetricSlots]MetricFunc
	VSSE          [MetricSlots]MetricFunc
	NSSE          [MetricSlots]MetricFunc

	// legacy absolute-difference family: [width 16|8][plain, x2, y2, xy2]
	PixAbs [2][4]MetricFunc

	// EmptyState resets any SIMD floating state left behind by the
	// kernels. The integrating codec layer must call it between DSP and
	// float code; the portable baseline has no such state.
	EmptyState func()

	// IDCT input permutation required by the selected IDCT kernel.
	IDCTPermutation     [64]uint8
	IDCTPermutationType PermutationType
}

// Errors
var (
	ErrInvalidPermutation = errors.New("dsp: permutation is not a bijection on 0..63")
	ErrUnknownCmp         = errors.New("dsp: unknown comparison metric")
)

// Init fills every slot of c with the portable baseline, then lets at
// most one architecture-specific initializer (selected by build target
// and gated on flags) override a subset. Every operation slot is set
// after Init; only never-populated metric size variants stay nil.
func Init(c *Context, flags CPUFlags) error {
	c.GetPixels = getPixels
	c.DiffPixels = diffPixels
	c.SumAbsDCTElem = sumAbsDCTElem

	c.PutPixelsClamped = putPixelsClamped
	c.PutSignedPixelsClamped = putSignedPixelsClamped
	c.AddPixelsClamped = addPixelsClamped

	c.FDCT = fdct
	c.IDCT = idct
	c.IDCTPut = idctPut
	c.IDCTAdd = idctAdd

	c.SAD[MetricSize16] = pixAbs16
	c.SAD[MetricSize8] = pixAbs8
	c.SSE[MetricSize16] = sse16
	c.SSE[MetricSize8] = sse8
	c.Hadamard8Diff[MetricSize16] = hadamard8Diff16
	c.Hadamard8Diff[MetricSize8] = hadamard8Diff8
	c.VSAD[MetricSize16] = vsad16
	c.VSAD[MetricSize8] = vsad8
	c.VSSE[MetricSize16] = vsse16
	c.VSSE[MetricSize8] = vsse8
	c.NSSE[MetricSize16] = nsse16
	c.NSSE[MetricSize8] = nsse8

	c.PixAbs[0][0] = pixAbs16
	c.PixAbs[0][1] = pixAbs16X2
	c.PixAbs[0][2] = pixAbs16Y2
	c.PixAbs[0][3] = pixAbs16XY2
	c.PixAbs[1][0] = pixAbs8
	c.PixAbs[1][1] = pixAbs8X2
	c.PixAbs[1][2] = pixAbs8Y2
	c.PixAbs[1][3] = pixAbs8XY2

	c.EmptyState = func() {}

	c.IDCTPermutationType = PermutationNone

	archInit(c, flags)

	perm, err := BuildPermutation(c.IDCTPermutationType)
	if err != nil {
		return fmt.Errorf("dsp: init: %w", err)
	}
	c.IDCTPermutation = perm

	return nil
}

// CmpType selects a comparison metric family, mirroring the codec-level
// cmp configuration knobs.
type CmpType int

const (
	CmpSAD CmpType = iota
	CmpSSE
	CmpHadamard
	CmpVSAD
	CmpVSSE
	CmpNSSE
)

// SetCmp resolves a metric selector against an initialized table.
func SetCmp(c *Context, cmp CmpType) ([MetricSlots]MetricFunc, error) {
	switch cmp {
	case CmpSAD:
		return c.SAD, nil
	case CmpSSE:
		return c.SSE, nil
	case CmpHadamard:
		return c.Hadamard8Diff, nil
	case CmpVSAD:
		return c.VSAD, nil
	case CmpVSSE:
		return c.VSSE, nil
	case CmpNSSE:
		return c.NSSE, nil
	}
	return [MetricSlots]MetricFunc{}, fmt.Errorf("%w: %d", ErrUnknownCmp, int(cmp))
}
