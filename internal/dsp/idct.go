package dsp

// Fixed-point row/column fast 8x8 IDCT and FDCT. Constants are cosines
// scaled by 2048; the row pass keeps 3 extra bits of precision that the
// column pass removes.

const (
	w1 = 2841 // 2048*sqrt(2)*cos(1*pi/16)
	w2 = 2676 // 2048*sqrt(2)*cos(2*pi/16)
	w3 = 2408 // 2048*sqrt(2)*cos(3*pi/16)
	w5 = 1609 // 2048*sqrt(2)*cos(5*pi/16)
	w6 = 1108 // 2048*sqrt(2)*cos(6*pi/16)
	w7 = 565  // 2048*sqrt(2)*cos(7*pi/16)

	r2 = 181 // 256/sqrt(2)
)

// idct transforms a 64-coefficient block in place. Input coefficients are
// in natural raster order (any kernel-specific permutation has been
// applied while the coefficients were written).
func idct(block []int16) {
	var tmp [64]int32

	// rows
	for y := 0; y < 8; y++ {
		row := y * 8

		if block[row+1] == 0 && block[row+2] == 0 && block[row+3] == 0 &&
			block[row+4] == 0 && block[row+5] == 0 && block[row+6] == 0 &&
			block[row+7] == 0 {
			dc := int32(block[row]) << 3
			for i := 0; i < 8; i++ {
				tmp[row+i] = dc
			}
			continue
		}

		x0 := (int32(block[row+0]) << 11) + 128
		x1 := int32(block[row+4]) << 11
		x2 := int32(block[row+6])
		x3 := int32(block[row+2])
		x4 := int32(block[row+1])
		x5 := int32(block[row+7])
		x6 := int32(block[row+5])
		x7 := int32(block[row+3])

		x8 := w7 * (x4 + x5)
		x4 = x8 + w1*x4
		x5 = x8 - w5*x5
		x8 = w3 * (x6 + x7)
		x6 = x8 - w3*x6
		x7 = x8 - w7*x7

		x8 = x0 + x1
		x0 -= x1
		x1 = w6 * (x3 + x2)
		x2 = x1 - w2*x2
		x3 = x1 + w6*x3
		x1 = x4 + x6
		x4 -= x6
		x6 = x5 + x7
		x5 -= x7

		x7 = x8 + x3
		x8 -= x3
		x3 = x0 + x2
		x0 -= x2
		x2 = (r2 * (x4 + x5)) >> 8
		x4 = (r2 * (x4 - x5)) >> 8

		tmp[row+0] = (x7 + x1) >> 8
		tmp[row+1] = (x3 + x2) >> 8
		tmp[row+2] = (x0 + x4) >> 8
		tmp[row+3] = (x8 + x6) >> 8
		tmp[row+4] = (x8 - x6) >> 8
		tmp[row+5] = (x0 - x4) >> 8
		tmp[row+6] = (x3 - x2) >> 8
		tmp[row+7] = (x7 - x1) >> 8
	}

	// columns
	for x := 0; x < 8; x++ {
		if tmp[8+x] == 0 && tmp[16+x] == 0 && tmp[24+x] == 0 &&
			tmp[32+x] == 0 && tmp[40+x] == 0 && tmp[48+x] == 0 &&
			tmp[56+x] == 0 {
			dc := int16((tmp[x] + 32) >> 6)
			for i := 0; i < 8; i++ {
				block[i*8+x] = dc
			}
			continue
		}

		x0 := (tmp[0+x] << 8) + 8192
		x1 := tmp[32+x] << 8
		x2 := tmp[48+x]
		x3 := tmp[16+x]
		x4 := tmp[8+x]
		x5 := tmp[56+x]
		x6 := tmp[40+x]
		x7 := tmp[24+x]

		x8 := w7 * (x4 + x5)
		x4 = x8 + w1*x4
		x5 = x8 - w5*x5
		x8 = w3 * (x6 + x7)
		x6 = x8 - w3*x6
		x7 = x8 - w7*x7

		x8 = x0 + x1
		x0 -= x1
		x1 = w6 * (x3 + x2)
		x2 = x1 - w2*x2
		x3 = x1 + w6*x3
		x1 = x4 + x6
		x4 -= x6
		x6 = x5 + x7
		x5 -= x7

		x7 = x8 + x3
		x8 -= x3
		x3 = x0 + x2
		x0 -= x2
		x2 = (r2 * (x4 + x5)) >> 8
		x4 = (r2 * (x4 - x5)) >> 8

		block[0*8+x] = int16((x7 + x1) >> 14)
		block[1*8+x] = int16((x3 + x2) >> 14)
		block[2*8+x] = int16((x0 + x4) >> 14)
		block[3*8+x] = int16((x8 + x6) >> 14)
		block[4*8+x] = int16((x8 - x6) >> 14)
		block[5*8+x] = int16((x0 - x4) >> 14)
		block[6*8+x] = int16((x3 - x2) >> 14)
		block[7*8+x] = int16((x7 - x1) >> 14)
	}
}

// idctPut transforms the block and writes the clipped result to dest.
// The block is clobbered.
func idctPut(dest []byte, stride int, block []int16) {
	idct(block)
	putPixelsClamped(block, dest, stride)
}

// idctAdd transforms the block and adds the clipped result onto dest.
// The block is clobbered.
func idctAdd(dest []byte, stride int, block []int16) {
	idct(block)
	addPixelsClamped(block, dest, stride)
}

// fdct transforms a 64-sample block (spatial values or pixel differences)
// into DCT coefficients in place.
func fdct(block []int16) {
	var tmp [64]int32

	// rows
	for y := 0; y < 8; y++ {
		row := y * 8

		x0 := int32(block[row+0])
		x1 := int32(block[row+1])
		x2 := int32(block[row+2])
		x3 := int32(block[row+3])
		x4 := int32(block[row+4])
		x5 := int32(block[row+5])
		x6 := int32(block[row+6])
		x7 := int32(block[row+7])

		x8 := x0 + x7
		x0 -= x7
		x7 = x1 + x6
		x1 -= x6
		x6 = x2 + x5
		x2 -= x5
		x5 = x3 + x4
		x3 -= x4

		x4 = x8 + x5
		x8 -= x5
		x5 = x7 + x6
		x7 -= x6
		x6 = ((x0 + x3) * r2) >> 8
		x0 = ((x0 - x3) * r2) >> 8
		x3 = x1 + x2
		x1 -= x2

		x2 = x4 + x5
		x4 -= x5
		x5 = ((x7 + x8) * r2) >> 8
		x7 = ((x7 - x8) * r2) >> 8

		x8 = x1 + x6
		x1 -= x6
		x6 = x0 + x3
		x0 -= x3

		tmp[row+0] = x2
		tmp[row+1] = (w1*x8 - w7*x6) >> 11
		tmp[row+2] = x5
		tmp[row+3] = (w3*x1 - w5*x0) >> 11
		tmp[row+4] = x4
		tmp[row+5] = (w5*x1 + w3*x0) >> 11
		tmp[row+6] = x7
		tmp[row+7] = (w7*x8 + w1*x6) >> 11
	}

	// columns
	for x := 0; x < 8; x++ {
		x0 := tmp[0+x]
		x1 := tmp[8+x]
		x2 := tmp[16+x]
		x3 := tmp[24+x]
		x4 := tmp[32+x]
		x5 := tmp[40+x]
		x6 := tmp[48+x]
		x7 := tmp[56+x]

		x8 := x0 + x7
		x0 -= x7
		x7 = x1 + x6
		x1 -= x6
		x6 = x2 + x5
		x2 -= x5
		x5 = x3 + x4
		x3 -= x4

		x4 = x8 + x5
		x8 -= x5
		x5 = x7 + x6
		x7 -= x6
		x6 = ((x0 + x3) * r2) >> 8
		x0 = ((x0 - x3) * r2) >> 8
		x3 = x1 + x2
		x1 -= x2

		x2 = x4 + x5
		x4 -= x5
		x5 = ((x7 + x8) * r2) >> 8
		x7 = ((x7 - x8) * r2) >> 8

		x8 = x1 + x6
		x1 -= x6
		x6 = x0 + x3
		x0 -= x3

		block[0*8+x] = int16((x2 + 4) >> 3)
		block[1*8+x] = int16((w1*x8 - w7*x6) >> 14)
		block[2*8+x] = int16((x5 + 2) >> 2)
		block[3*8+x] = int16((w3*x1 - w5*x0) >> 14)
		block[4*8+x] = int16((x4 + 2) >> 2)
		block[5*8+x] = int16((w5*x1 + w3*x0) >> 14)
		block[6*8+x] = int16((x7 + 2) >> 2)
		block[7*8+x] = int16((w7*x8 + w1*x6) >> 14)
	}
}
