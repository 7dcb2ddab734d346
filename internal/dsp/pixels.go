package dsp

// Portable baseline kernels. Block buffers are 64 coefficients in raster
// order; pixel arguments are stride-addressed 8x8 or 16-wide regions.

func getPixels(block []int16, pixels []byte, stride int) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			block[i*8+j] = int16(pixels[i*stride+j])
		}
	}
}

func diffPixels(block []int16, s1, s2 []byte, stride int) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			block[i*8+j] = int16(s1[i*stride+j]) - int16(s2[i*stride+j])
		}
	}
}

func sumAbsDCTElem(block []int16) int {
	sum := 0
	for _, v := range block[:64] {
		if v < 0 {
			sum -= int(v)
		} else {
			sum += int(v)
		}
	}
	return sum
}

func putPixelsClamped(block []int16, pixels []byte, stride int) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			pixels[i*stride+j] = Clip(int(block[i*8+j]))
		}
	}
}

func putSignedPixelsClamped(block []int16, pixels []byte, stride int) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			pixels[i*stride+j] = Clip(int(block[i*8+j]) + 128)
		}
	}
}

func addPixelsClamped(block []int16, pixels []byte, stride int) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			pixels[i*stride+j] = Clip(int(pixels[i*stride+j]) + int(block[i*8+j]))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// avg2 rounds up, matching the half-pel interpolation convention.
func avg2(a, b byte) byte {
	return byte((int(a) + int(b) + 1) >> 1)
}

func avg4(a, b, c, d byte) byte {
	return byte((int(a) + int(b) + int(c) + int(d) + 2) >> 2)
}

func pixAbsN(blk1, blk2 []byte, stride, h, w int) int {
	sum := 0
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			sum += abs(int(blk1[row+x]) - int(blk2[row+x]))
		}
	}
	return sum
}

func pixAbs16(blk1, blk2 []byte, stride, h int) int { return pixAbsN(blk1, blk2, stride, h, 16) }
func pixAbs8(blk1, blk2 []byte, stride, h int) int { return pixAbsN(blk1, blk2, stride, h, 8) }

func pixAbsNX2(blk1, blk2 []byte, stride, h, w int) int {
	sum := 0
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			sum += abs(int(blk1[row+x]) - int(avg2(blk2[row+x], blk2[row+x+1])))
		}
	}
	return sum
}

func pixAbs16X2(blk1, blk2 []byte, stride, h int) int { return pixAbsNX2(blk1, blk2, stride, h, 16) }
func pixAbs8X2(blk1, blk2 []byte, stride, h int) int { return pixAbsNX2(blk1, blk2, stride, h, 8) }

func pixAbsNY2(blk1, blk2 []byte, stride, h, w int) int {
	sum := 0
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			sum += abs(int(blk1[row+x]) - int(avg2(blk2[row+x], blk2[row+x+stride])))
		}
	}
	return sum
}

func pixAbs16Y2(blk1, blk2 []byte, stride, h int) int { return pixAbsNY2(blk1, blk2, stride, h, 16) }
func pixAbs8Y2(blk1, blk2 []byte, stride, h int) int { return pixAbsNY2(blk1, blk2, stride, h, 8) }

func pixAbsNXY2(blk1, blk2 []byte, stride, h, w int) int {
	sum := 0
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			interp := avg4(blk2[row+x], blk2[row+x+1], blk2[row+x+stride], blk2[row+x+stride+1])
			sum += abs(int(blk1[row+x]) - int(interp))
		}
	}
	return sum
}

func pixAbs16XY2(blk1, blk2 []byte, stride, h int) int { return pixAbsNXY2(blk1, blk2, stride, h, 16) }
func pixAbs8XY2(blk1, blk2 []byte, stride, h int) int { return pixAbsNXY2(blk1, blk2, stride, h, 8) }

func sseN(blk1, blk2 []byte, stride, h, w int) int {
	sum := uint32(0)
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			sum += squareTable[256+int(blk1[row+x])-int(blk2[row+x])]
		}
	}
	return int(sum)
}

func sse16(blk1, blk2 []byte, stride, h int) int { return sseN(blk1, blk2, stride, h, 16) }
func sse8(blk1, blk2 []byte, stride, h int) int { return sseN(blk1, blk2, stride, h, 8) }

// vsad scores vertical gradient mismatch between the two blocks.
func vsadN(blk1, blk2 []byte, stride, h, w int) int {
	sum := 0
	for y := 0; y < h-1; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			sum += abs(int(blk1[row+x]) - int(blk1[row+x+stride]) -
				int(blk2[row+x]) + int(blk2[row+x+stride]))
		}
	}
	return sum
}

func vsad16(blk1, blk2 []byte, stride, h int) int { return vsadN(blk1, blk2, stride, h, 16) }
func vsad8(blk1, blk2 []byte, stride, h int) int { return vsadN(blk1, blk2, stride, h, 8) }

func vsseN(blk1, blk2 []byte, stride, h, w int) int {
	sum := uint32(0)
	for y := 0; y < h-1; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			d := int(blk1[row+x]) - int(blk1[row+x+stride]) -
				int(blk2[row+x]) + int(blk2[row+x+stride])
			sum += squareTable[256+d]
		}
	}
	return int(sum)
}

func vsse16(blk1, blk2 []byte, stride, h int) int { return vsseN(blk1, blk2, stride, h, 16) }
func vsse8(blk1, blk2 []byte, stride, h int) int { return vsseN(blk1, blk2, stride, h, 8) }

// nsseWeight balances plain SSE against the noise-preservation term.
const nsseWeight = 8

// nsse is a noise-preserving SSE: plain SSE plus a weighted penalty for
// gradient structure the candidate fails to reproduce.
func nsseN(blk1, blk2 []byte, stride, h, w int) int {
	score1 := sseN(blk1, blk2, stride, h, w)

	score2 := 0
	for y := 0; y < h-1; y++ {
		row := y * stride
		for x := 0; x < w-1; x++ {
			g1 := int(blk1[row+x]) - int(blk1[row+x+1]) -
				int(blk1[row+x+stride]) + int(blk1[row+x+stride+1])
			g2 := int(blk2[row+x]) - int(blk2[row+x+1]) -
				int(blk2[row+x+stride]) + int(blk2[row+x+stride+1])
			score2 += abs(g1) - abs(g2)
		}
	}

	return score1 + abs(score2)*nsseWeight
}

func nsse16(blk1, blk2 []byte, stride, h int) int { return nsseN(blk1, blk2, stride, h, 16) }
func nsse8(blk1, blk2 []byte, stride, h int) int { return nsseN(blk1, blk2, stride, h, 8) }

// hadamard8x8 transforms the 8x8 difference of two blocks and sums the
// absolute transform coefficients.
func hadamard8x8(blk1, blk2 []byte, stride int) int {
	var tmp [64]int

	for i := 0; i < 8; i++ {
		row := i * stride
		for j := 0; j < 8; j++ {
			tmp[i*8+j] = int(blk1[row+j]) - int(blk2[row+j])
		}
	}

	// rows
	for i := 0; i < 8; i++ {
		butterfly8(tmp[i*8:i*8+8:i*8+8], 1)
	}
	// columns
	for j := 0; j < 8; j++ {
		butterfly8(tmp[j:], 8)
	}

	sum := 0
	for _, v := range tmp {
		sum += abs(v)
	}
	return sum
}

// butterfly8 runs a 3-stage Hadamard butterfly over 8 elements spaced
// step apart.
func butterfly8(v []int, step int) {
	a0 := v[0*step] + v[1*step]
	a1 := v[0*step] - v[1*step]
	a2 := v[2*step] + v[3*step]
	a3 := v[2*step] - v[3*step]
	a4 := v[4*step] + v[5*step]
	a5 := v[4*step] - v[5*step]
	a6 := v[6*step] + v[7*step]
	a7 := v[6*step] - v[7*step]

	b0 := a0 + a2
	b1 := a1 + a3
	b2 := a0 - a2
	b3 := a1 - a3
	b4 := a4 + a6
	b5 := a5 + a7
	b6 := a4 - a6
	b7 := a5 - a7

	v[0*step] = b0 + b4
	v[1*step] = b1 + b5
	v[2*step] = b2 + b6
	v[3*step] = b3 + b7
	v[4*step] = b0 - b4
	v[5*step] = b1 - b5
	v[6*step] = b2 - b6
	v[7*step] = b3 - b7
}

// hadamard8Diff16 scores two 8-wide halves of a 16-wide block.
func hadamard8Diff16(blk1, blk2 []byte, stride, h int) int {
	score := hadamard8x8(blk1, blk2, stride)
	score += hadamard8x8(blk1[8:], blk2[8:], stride)
	if h == 16 {
		score += hadamard8x8(blk1[8*stride:], blk2[8*stride:], stride)
		score += hadamard8x8(blk1[8*stride+8:], blk2[8*stride+8:], stride)
	}
	return score
}

func hadamard8Diff8(blk1, blk2 []byte, stride, h int) int {
	return hadamard8x8(blk1, blk2, stride)
}
