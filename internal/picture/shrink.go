package picture

// Box shrink: average an N×N block of samples into one output sample with
// asymmetric rounding (+N²/2 before the shift). The rounding is part of
// the contract; flat fields must survive a shrink bit-exactly.

// Shrink2x2 halves a plane in both dimensions. width and height are the
// output dimensions.
func Shrink2x2(dst []byte, dstWrap int, src []byte, srcWrap, width, height int) {
	d, s := 0, 0
	for ; height > 0; height-- {
		s1 := s
		s2 := s + srcWrap
		for x := 0; x < width; x++ {
			dst[d+x] = byte((int(src[s1]) + int(src[s1+1]) + int(src[s2]) + int(src[s2+1]) + 2) >> 2)
			s1 += 2
			s2 += 2
		}
		s += 2 * srcWrap
		d += dstWrap
	}
}

// Shrink4x4 quarters a plane in both dimensions.
func Shrink4x4(dst []byte, dstWrap int, src []byte, srcWrap, width, height int) {
	d, s := 0, 0
	for ; height > 0; height-- {
		s1 := s
		s2 := s1 + srcWrap
		s3 := s2 + srcWrap
		s4 := s3 + srcWrap
		for x := 0; x < width; x++ {
			sum := 0
			for j := 0; j < 4; j++ {
				sum += int(src[s1+j]) + int(src[s2+j]) + int(src[s3+j]) + int(src[s4+j])
			}
			dst[d+x] = byte((sum + 8) >> 4)
			s1 += 4
			s2 += 4
			s3 += 4
			s4 += 4
		}
		s += 4 * srcWrap
		d += dstWrap
	}
}

// Shrink8x8 reduces a plane by 8 in both dimensions.
func Shrink8x8(dst []byte, dstWrap int, src []byte, srcWrap, width, height int) {
	d, s := 0, 0
	for ; height > 0; height-- {
		for x := 0; x < width; x++ {
			sum := 0
			row := s + x*8
			for i := 0; i < 8; i++ {
				for j := 0; j < 8; j++ {
					sum += int(src[row+j])
				}
				row += srcWrap
			}
			dst[d+x] = byte((sum + 32) >> 6)
		}
		s += 8 * srcWrap
		d += dstWrap
	}
}
