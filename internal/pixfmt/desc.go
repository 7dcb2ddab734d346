package pixfmt

import "fmt"

// ColorModel classifies the color space of a format.
type ColorModel uint8

const (
	ModelRGB          ColorModel = iota // RGB color space
	ModelGray                           // grayscale
	ModelYUV                            // YUV, studio range (16..235 luma)
	ModelYUVFullRange                   // YUV, full range (JPEG)
)

// StorageLayout classifies how samples are stored.
type StorageLayout uint8

const (
	LayoutPlanar  StorageLayout = iota // one plane per channel
	LayoutPacked                       // channels interleaved in one plane
	LayoutPalette                      // one plane of palette indices
)

// Descriptor holds immutable per-format metadata.
type Descriptor struct {
	ChannelCount  uint8 // number of channels, including alpha
	ColorModel    ColorModel
	StorageLayout StorageLayout
	HasAlpha      bool
	BitDepth      uint8 // per-component sample width
	ChromaShiftX  uint8 // log2 horizontal chroma subsampling
	ChromaShiftY  uint8 // log2 vertical chroma subsampling
}

// descriptors is the process-wide format table. It is write-once static
// data; concurrent reads are safe.
var descriptors = map[PixelFormat]Descriptor{
	// YUV planar
	YUV420P: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1, ChromaShiftY: 1},
	YUV422P: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1},
	YUV444P: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8},
	YUV410P: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 2, ChromaShiftY: 2},
	YUV411P: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 2},
	YUV440P: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftY: 1},

	YUV420P16LE: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 16, ChromaShiftX: 1, ChromaShiftY: 1},
	YUV420P16BE: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 16, ChromaShiftX: 1, ChromaShiftY: 1},
	YUV422P16LE: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 16, ChromaShiftX: 1},
	YUV422P16BE: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 16, ChromaShiftX: 1},
	YUV444P16LE: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 16},
	YUV444P16BE: {ChannelCount: 3, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 16},

	// YUV with alpha plane
	YUVA420P: {ChannelCount: 4, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1, ChromaShiftY: 1},

	// JPEG full-range YUV
	YUVJ420P: {ChannelCount: 3, ColorModel: ModelYUVFullRange, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1, ChromaShiftY: 1},
	YUVJ422P: {ChannelCount: 3, ColorModel: ModelYUVFullRange, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1},
	YUVJ444P: {ChannelCount: 3, ColorModel: ModelYUVFullRange, StorageLayout: LayoutPlanar, BitDepth: 8},
	YUVJ440P: {ChannelCount: 3, ColorModel: ModelYUVFullRange, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftY: 1},

	// YUV packed
	YUYV422:   {ChannelCount: 1, ColorModel: ModelYUV, StorageLayout: LayoutPacked, BitDepth: 8, ChromaShiftX: 1},
	UYVY422:   {ChannelCount: 1, ColorModel: ModelYUV, StorageLayout: LayoutPacked, BitDepth: 8, ChromaShiftX: 1},
	UYYVYY411: {ChannelCount: 1, ColorModel: ModelYUV, StorageLayout: LayoutPacked, BitDepth: 8, ChromaShiftX: 2},

	// semi-planar YUV
	NV12: {ChannelCount: 2, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1, ChromaShiftY: 1},
	NV21: {ChannelCount: 2, ColorModel: ModelYUV, StorageLayout: LayoutPlanar, BitDepth: 8, ChromaShiftX: 1, ChromaShiftY: 1},

	// RGB
	RGB24:    {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 8},
	BGR24:    {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 8},
	ARGB:     {ChannelCount: 4, ColorModel: ModelRGB, StorageLayout: LayoutPacked, HasAlpha: true, BitDepth: 8},
	RGBA:     {ChannelCount: 4, ColorModel: ModelRGB, StorageLayout: LayoutPacked, HasAlpha: true, BitDepth: 8},
	ABGR:     {ChannelCount: 4, ColorModel: ModelRGB, StorageLayout: LayoutPacked, HasAlpha: true, BitDepth: 8},
	BGRA:     {ChannelCount: 4, ColorModel: ModelRGB, StorageLayout: LayoutPacked, HasAlpha: true, BitDepth: 8},
	RGB48BE:  {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 16},
	RGB48LE:  {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 16},
	RGB565BE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	RGB565LE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	RGB555BE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	RGB555LE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	RGB444BE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 4},
	RGB444LE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 4},
	BGR565BE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	BGR565LE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	BGR555BE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	BGR555LE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 5},
	BGR444BE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 4},
	BGR444LE: {ChannelCount: 3, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 4},
	RGB8:     {ChannelCount: 1, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 8},
	RGB4:     {ChannelCount: 1, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 4},
	RGB4Byte: {ChannelCount: 1, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 8},
	BGR8:     {ChannelCount: 1, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 8},
	BGR4:     {ChannelCount: 1, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 4},
	BGR4Byte: {ChannelCount: 1, ColorModel: ModelRGB, StorageLayout: LayoutPacked, BitDepth: 8},

	// gray / mono
	Gray8:     {ChannelCount: 1, ColorModel: ModelGray, StorageLayout: LayoutPlanar, BitDepth: 8},
	Gray16BE:  {ChannelCount: 1, ColorModel: ModelGray, StorageLayout: LayoutPlanar, BitDepth: 16},
	Gray16LE:  {ChannelCount: 1, ColorModel: ModelGray, StorageLayout: LayoutPlanar, BitDepth: 16},
	MonoWhite: {ChannelCount: 1, ColorModel: ModelGray, StorageLayout: LayoutPlanar, BitDepth: 1},
	MonoBlack: {ChannelCount: 1, ColorModel: ModelGray, StorageLayout: LayoutPlanar, BitDepth: 1},

	// palette
	PAL8: {ChannelCount: 4, ColorModel: ModelRGB, StorageLayout: LayoutPalette, HasAlpha: true, BitDepth: 8},
}

func init() {
	// Every registered format must have a descriptor. A gap here is a
	// table maintenance bug, so fail loudly at startup.
	for f := PixelFormat(0); f < formatCount; f++ {
		if _, ok := descriptors[f]; !ok {
			panic(fmt.Sprintf("pixfmt: format %d (%s) has no descriptor", int(f), f))
		}
	}
}

// Lookup returns the descriptor for f. Formats outside the registered set
// are an error, never a default descriptor.
func Lookup(f PixelFormat) (Descriptor, error) {
	d, ok := descriptors[f]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return d, nil
}

// ChromaShift returns the log2 chroma subsampling factors of f.
func ChromaShift(f PixelFormat) (x, y uint8, err error) {
	d, err := Lookup(f)
	if err != nil {
		return 0, 0, err
	}
	return d.ChromaShiftX, d.ChromaShiftY, nil
}

// IsYUVPlanar reports whether d describes a planar YUV format, studio or
// full range.
func IsYUVPlanar(d Descriptor) bool {
	return (d.ColorModel == ModelYUV || d.ColorModel == ModelYUVFullRange) &&
		d.StorageLayout == LayoutPlanar
}
