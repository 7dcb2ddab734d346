package pixfmt

import "math"

// packed16BitFormats are packed layouts whose average bits per pixel is 16
// regardless of the nominal per-component depth.
var packed16BitFormats = map[PixelFormat]bool{
	YUYV422: true, UYVY422: true,
	RGB565BE: true, RGB565LE: true, RGB555BE: true, RGB555LE: true,
	RGB444BE: true, RGB444LE: true,
	BGR565BE: true, BGR565LE: true, BGR555BE: true, BGR555LE: true,
	BGR444BE: true, BGR444LE: true,
}

// avgBitsPerPixel estimates the storage cost of a format. For subsampled
// planar formats the chroma planes are amortized by the subsampling
// factor; palette formats cost the index, not the expanded color.
func avgBitsPerPixel(f PixelFormat) int {
	d, err := Lookup(f)
	if err != nil {
		return -1
	}

	switch d.StorageLayout {
	case LayoutPacked:
		if packed16BitFormats[f] {
			return 16
		}
		if f == UYYVYY411 {
			return 12
		}
		return int(d.BitDepth) * int(d.ChannelCount)
	case LayoutPlanar:
		if d.ChromaShiftX == 0 && d.ChromaShiftY == 0 {
			return int(d.BitDepth) * int(d.ChannelCount)
		}
		return int(d.BitDepth) + ((2 * int(d.BitDepth)) >> (d.ChromaShiftX + d.ChromaShiftY))
	case LayoutPalette:
		return 8
	}
	return -1
}

// toleranceOrder lists the forbidden-loss masks tried by FindBest, the
// strictest first. A candidate qualifies at a level when its loss has no
// bit in common with the mask.
var toleranceOrder = []Loss{
	LossAll,                                      // no loss of any kind
	LossAll &^ LossAlpha,                         // tolerate alpha loss
	LossAll &^ LossResolution,                    // tolerate chroma coarsening
	LossAll &^ (LossColorspace | LossResolution), // tolerate colorspace change too
	LossAll &^ LossColorQuant,                    // tolerate palette quantization
	LossAll &^ LossDepth,                         // tolerate depth loss
	0,                                            // tolerate everything
}

// findBestAtTolerance scans candidates for the cheapest format whose loss
// against src is fully outside forbidden. Returns None when no candidate
// qualifies.
func findBestAtTolerance(candidates []PixelFormat, src PixelFormat, hasAlpha bool, forbidden Loss) (PixelFormat, error) {
	best := None
	minBits := math.MaxInt

	for _, c := range candidates {
		loss, err := ComputeLoss(c, src, hasAlpha)
		if err != nil {
			return None, err
		}
		if loss&forbidden != 0 {
			continue
		}
		if bits := avgBitsPerPixel(c); bits < minBits {
			minBits = bits
			best = c
		}
	}

	return best, nil
}

// FindBest selects, from a None-terminated candidate list, the format
// that best preserves src. Tolerance levels are tried strictest first;
// the first level with any qualifying candidate wins, and within a level
// the candidate with the lowest average bits per pixel is chosen (ties go
// to list order). The returned Loss is the full loss of the chosen
// format, not masked by the tolerance level.
func FindBest(candidates []PixelFormat, src PixelFormat, hasAlpha bool) (PixelFormat, Loss, error) {
	list, err := trimCandidates(candidates)
	if err != nil {
		return None, 0, err
	}

	for _, forbidden := range toleranceOrder {
		best, err := findBestAtTolerance(list, src, hasAlpha, forbidden)
		if err != nil {
			return None, 0, err
		}
		if best != None {
			loss, err := ComputeLoss(best, src, hasAlpha)
			if err != nil {
				return None, 0, err
			}
			return best, loss, nil
		}
	}

	return None, 0, nil
}

// trimCandidates cuts the list at its None sentinel. A missing sentinel,
// or more entries before it than there are registered formats, means the
// list is not properly terminated or contains duplicates.
func trimCandidates(candidates []PixelFormat) ([]PixelFormat, error) {
	for i, c := range candidates {
		if c == None {
			return candidates[:i], nil
		}
		if i >= FormatCount {
			return nil, ErrMalformedCandidateList
		}
	}
	return nil, ErrMalformedCandidateList
}
