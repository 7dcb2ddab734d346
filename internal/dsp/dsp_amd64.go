//go:build amd64

package dsp

// archInit overrides baseline slots with amd64-tuned variants when the
// probe reported the matching CPU features. The tuned kernels keep the
// natural coefficient order, so the permutation type stays unchanged.
func archInit(c *Context, flags CPUFlags) {
	if flags&FlagSSE2 != 0 {
		c.SAD[MetricSize16] = sadWide16
		c.SSE[MetricSize16] = sseWide16
		c.PixAbs[0][0] = sadWide16
	}
	if flags&FlagAVX2 != 0 {
		c.VSAD[MetricSize16] = vsadWide16
	}
}

// sadWide16 is pixAbs16 with the inner loop unrolled two samples at a
// time, which the compiler turns into wider loads on this target.
func sadWide16(blk1, blk2 []byte, stride, h int) int {
	sum := 0
	for y := 0; y < h; y++ {
		row1 := blk1[y*stride : y*stride+16]
		row2 := blk2[y*stride : y*stride+16]
		for x := 0; x < 16; x += 2 {
			sum += abs(int(row1[x]) - int(row2[x]))
			sum += abs(int(row1[x+1]) - int(row2[x+1]))
		}
	}
	return sum
}

func sseWide16(blk1, blk2 []byte, stride, h int) int {
	sum := uint32(0)
	for y := 0; y < h; y++ {
		row1 := blk1[y*stride : y*stride+16]
		row2 := blk2[y*stride : y*stride+16]
		for x := 0; x < 16; x += 2 {
			sum += squareTable[256+int(row1[x])-int(row2[x])]
			sum += squareTable[256+int(row1[x+1])-int(row2[x+1])]
		}
	}
	return int(sum)
}

func vsadWide16(blk1, blk2 []byte, stride, h int) int {
	sum := 0
	for y := 0; y < h-1; y++ {
		row1 := blk1[y*stride : y*stride+stride+16]
		row2 := blk2[y*stride : y*stride+stride+16]
		for x := 0; x < 16; x += 2 {
			sum += abs(int(row1[x]) - int(row1[x+stride]) - int(row2[x]) + int(row2[x+stride]))
			sum += abs(int(row1[x+1]) - int(row1[x+1+stride]) - int(row2[x+1]) + int(row2[x+1+stride]))
		}
	}
	return sum
}
