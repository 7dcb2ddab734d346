package dsp

import "fmt"

// PermutationType identifies the coefficient reordering an IDCT kernel
// expects on its input block.
type PermutationType int

const (
	PermutationNone PermutationType = iota
	PermutationLibmpeg2
	PermutationSimple
	PermutationTranspose
	PermutationPartialTranspose
	PermutationSSE2
)

var permutationNames = map[PermutationType]string{
	PermutationNone:             "none",
	PermutationLibmpeg2:         "libmpeg2",
	PermutationSimple:           "simple",
	PermutationTranspose:        "transpose",
	PermutationPartialTranspose: "partial-transpose",
	PermutationSSE2:             "sse2",
}

func (t PermutationType) String() string {
	if name, ok := permutationNames[t]; ok {
		return name
	}
	return fmt.Sprintf("permutation(%d)", int(t))
}

// ZigZagDirect is the base zigzag scan order shared by the block codecs.
var ZigZagDirect = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// simplePermutation interleaves rows the way the simple MMX IDCT reads
// its input.
var simplePermutation = [64]uint8{
	0x00, 0x08, 0x04, 0x09, 0x01, 0x0C, 0x05, 0x0D,
	0x10, 0x18, 0x14, 0x19, 0x11, 0x1C, 0x15, 0x1D,
	0x20, 0x28, 0x24, 0x29, 0x21, 0x2C, 0x25, 0x2D,
	0x12, 0x1A, 0x16, 0x1B, 0x13, 0x1E, 0x17, 0x1F,
	0x02, 0x0A, 0x06, 0x0B, 0x03, 0x0E, 0x07, 0x0F,
	0x30, 0x38, 0x34, 0x39, 0x31, 0x3C, 0x35, 0x3D,
	0x22, 0x2A, 0x26, 0x2B, 0x23, 0x2E, 0x27, 0x2F,
	0x32, 0x3A, 0x36, 0x3B, 0x33, 0x3E, 0x37, 0x3F,
}

// sse2RowPermutation shuffles columns within each row.
var sse2RowPermutation = [8]uint8{0, 4, 1, 5, 2, 6, 3, 7}

// BuildPermutation computes the 64-entry index permutation for a
// permutation type and validates that it is a bijection on 0..63.
func BuildPermutation(t PermutationType) ([64]uint8, error) {
	var perm [64]uint8

	for i := 0; i < 64; i++ {
		switch t {
		case PermutationNone:
			perm[i] = uint8(i)
		case PermutationLibmpeg2:
			perm[i] = uint8((i & 0x38) | ((i & 6) >> 1) | ((i & 1) << 2))
		case PermutationSimple:
			perm[i] = simplePermutation[i]
		case PermutationTranspose:
			perm[i] = uint8((i >> 3) | ((i & 7) << 3))
		case PermutationPartialTranspose:
			perm[i] = uint8((i & 0x24) | ((i & 3) << 3) | ((i >> 3) & 3))
		case PermutationSSE2:
			perm[i] = uint8(i&0x38) | sse2RowPermutation[i&7]
		default:
			return perm, fmt.Errorf("dsp: unknown permutation type %d", int(t))
		}
	}

	if err := checkBijection(perm[:]); err != nil {
		return perm, fmt.Errorf("%s: %w", t, err)
	}
	return perm, nil
}

func checkBijection(perm []uint8) error {
	var seen [64]bool
	for _, p := range perm {
		if int(p) >= len(perm) || seen[p] {
			return ErrInvalidPermutation
		}
		seen[p] = true
	}
	return nil
}

// ScanTable couples a base scan order with its kernel-permutated form.
// RasterEnd[i] is the highest permutated index among the first i+1 scan
// positions, used to bound the coefficient range a partial scan touched.
type ScanTable struct {
	Scan       []uint8
	Permutated [64]uint8
	RasterEnd  [64]uint8
}

// InitScanTable builds a ScanTable for a base scan order under the given
// IDCT permutation. The scan must have exactly 64 entries and visit each
// position once.
func InitScanTable(perm *[64]uint8, scan []uint8) (*ScanTable, error) {
	if len(scan) != 64 {
		return nil, fmt.Errorf("dsp: scan has %d entries, want 64: %w", len(scan), ErrInvalidPermutation)
	}
	if err := checkBijection(scan); err != nil {
		return nil, fmt.Errorf("dsp: scan order: %w", err)
	}

	st := &ScanTable{Scan: scan}

	for i := 0; i < 64; i++ {
		st.Permutated[i] = perm[scan[i]]
	}

	end := -1
	for i := 0; i < 64; i++ {
		if int(st.Permutated[i]) > end {
			end = int(st.Permutated[i])
		}
		st.RasterEnd[i] = uint8(end)
	}

	return st, nil
}
