package pixfmt

import "strings"

// Loss is a bitmask of the information categories a format conversion
// would discard.
type Loss uint

const (
	LossDepth      Loss = 1 << iota // sample depth narrows
	LossResolution                  // chroma planes coarsen
	LossColorspace                  // color model cannot hold the source gamut
	LossAlpha                       // alpha channel discarded
	LossColorQuant                  // re-quantization to a palette
	LossChroma                      // color collapsed to gray
)

// LossAll has every loss category set.
const LossAll = LossDepth | LossResolution | LossColorspace | LossAlpha | LossColorQuant | LossChroma

var lossNames = []struct {
	bit  Loss
	name string
}{
	{LossDepth, "depth"},
	{LossResolution, "resolution"},
	{LossColorspace, "colorspace"},
	{LossAlpha, "alpha"},
	{LossColorQuant, "colorquant"},
	{LossChroma, "chroma"},
}

func (l Loss) String() string {
	if l == 0 {
		return "none"
	}
	var parts []string
	for _, n := range lossNames {
		if l&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// depth565To555 lists the format pairs where the destination is nominally
// the same 5-bit depth as the source but the 6-bit green channel still
// collapses. This is a deliberate carve-out in the loss policy, kept as a
// pair table rather than generalized.
var depth565To555 = struct {
	dst map[PixelFormat]bool
	src map[PixelFormat]bool
}{
	dst: map[PixelFormat]bool{RGB555BE: true, RGB555LE: true, BGR555BE: true, BGR555LE: true},
	src: map[PixelFormat]bool{RGB565BE: true, RGB565LE: true, BGR565BE: true, BGR565LE: true},
}

// ComputeLoss returns the loss categories incurred by converting src to
// dst. hasAlpha declares whether the source alpha channel carries real
// data; alpha loss is only reported when it does.
func ComputeLoss(dst, src PixelFormat, hasAlpha bool) (Loss, error) {
	pd, err := Lookup(dst)
	if err != nil {
		return 0, err
	}
	ps, err := Lookup(src)
	if err != nil {
		return 0, err
	}

	var loss Loss

	if pd.BitDepth < ps.BitDepth || (depth565To555.dst[dst] && depth565To555.src[src]) {
		loss |= LossDepth
	}

	if pd.ChromaShiftX > ps.ChromaShiftX || pd.ChromaShiftY > ps.ChromaShiftY {
		loss |= LossResolution
	}

	switch pd.ColorModel {
	case ModelRGB:
		if ps.ColorModel != ModelRGB && ps.ColorModel != ModelGray {
			loss |= LossColorspace
		}
	case ModelGray:
		if ps.ColorModel != ModelGray {
			loss |= LossColorspace
		}
	case ModelYUV:
		if ps.ColorModel != ModelYUV {
			loss |= LossColorspace
		}
	case ModelYUVFullRange:
		if ps.ColorModel != ModelYUVFullRange && ps.ColorModel != ModelYUV &&
			ps.ColorModel != ModelGray {
			loss |= LossColorspace
		}
	default:
		// fail-safe test
		if ps.ColorModel != pd.ColorModel {
			loss |= LossColorspace
		}
	}

	if pd.ColorModel == ModelGray && ps.ColorModel != ModelGray {
		loss |= LossChroma
	}

	if !pd.HasAlpha && ps.HasAlpha && hasAlpha {
		loss |= LossAlpha
	}

	// Grayscale sources are exempt from palette quantization loss.
	if pd.StorageLayout == LayoutPalette &&
		ps.StorageLayout != LayoutPalette && ps.ColorModel != ModelGray {
		loss |= LossColorQuant
	}

	return loss, nil
}
