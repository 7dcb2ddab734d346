// Package pixfmt implements the pixel format capability model: per-format
// descriptors, conversion loss scoring, and the best-destination-format
// search used during codec negotiation.
package pixfmt

import "errors"

// PixelFormat identifies a pixel storage format.
type PixelFormat int

// None terminates candidate lists and marks "no format found".
const None PixelFormat = -1

// Registered pixel formats.
const (
	YUV420P PixelFormat = iota // planar YUV 4:2:0
	YUYV422                    // packed YUV 4:2:2, Y0 Cb Y1 Cr
	RGB24                      // packed RGB 8:8:8
	BGR24                      // packed BGR 8:8:8
	YUV422P                    // planar YUV 4:2:2
	YUV444P                    // planar YUV 4:4:4
	YUV410P                    // planar YUV 4:1:0
	YUV411P                    // planar YUV 4:1:1
	YUV440P                    // planar YUV 4:4:0
	Gray8                      // 8-bit grayscale
	MonoWhite                  // 1-bit monochrome, 0 is white
	MonoBlack                  // 1-bit monochrome, 0 is black
	PAL8                       // 8-bit palette indices into RGBA palette
	YUVJ420P                   // planar YUV 4:2:0, JPEG full range
	YUVJ422P                   // planar YUV 4:2:2, JPEG full range
	YUVJ444P                   // planar YUV 4:4:4, JPEG full range
	YUVJ440P                   // planar YUV 4:4:0, JPEG full range
	UYVY422                    // packed YUV 4:2:2, Cb Y0 Cr Y1
	UYYVYY411                  // packed YUV 4:1:1
	YUVA420P                   // planar YUV 4:2:0 with alpha plane
	NV12                       // planar YUV 4:2:0, interleaved CbCr plane
	NV21                       // planar YUV 4:2:0, interleaved CrCb plane
	ARGB                       // packed ARGB 8:8:8:8
	RGBA                       // packed RGBA 8:8:8:8
	ABGR                       // packed ABGR 8:8:8:8
	BGRA                       // packed BGRA 8:8:8:8
	Gray16BE                   // 16-bit grayscale, big endian
	Gray16LE                   // 16-bit grayscale, little endian
	RGB48BE                    // packed RGB 16:16:16, big endian
	RGB48LE                    // packed RGB 16:16:16, little endian
	RGB565BE                   // packed RGB 5:6:5, big endian
	RGB565LE                   // packed RGB 5:6:5, little endian
	RGB555BE                   // packed RGB 5:5:5, big endian
	RGB555LE                   // packed RGB 5:5:5, little endian
	RGB444BE                   // packed RGB 4:4:4, big endian
	RGB444LE                   // packed RGB 4:4:4, little endian
	BGR565BE                   // packed BGR 5:6:5, big endian
	BGR565LE                   // packed BGR 5:6:5, little endian
	BGR555BE                   // packed BGR 5:5:5, big endian
	BGR555LE                   // packed BGR 5:5:5, little endian
	BGR444BE                   // packed BGR 4:4:4, big endian
	BGR444LE                   // packed BGR 4:4:4, little endian
	RGB8                       // packed RGB 3:3:2
	RGB4                       // packed RGB 1:2:1, two pixels per byte
	RGB4Byte                   // packed RGB 1:2:1, one pixel per byte
	BGR8                       // packed BGR 2:3:3
	BGR4                       // packed BGR 1:2:1, two pixels per byte
	BGR4Byte                   // packed BGR 1:2:1, one pixel per byte
	YUV420P16LE                // planar YUV 4:2:0, 16 bits per sample, LE
	YUV420P16BE                // planar YUV 4:2:0, 16 bits per sample, BE
	YUV422P16LE                // planar YUV 4:2:2, 16 bits per sample, LE
	YUV422P16BE                // planar YUV 4:2:2, 16 bits per sample, BE
	YUV444P16LE                // planar YUV 4:4:4, 16 bits per sample, LE
	YUV444P16BE                // planar YUV 4:4:4, 16 bits per sample, BE

	formatCount
)

// FormatCount is the number of registered pixel formats. Candidate lists
// longer than this are malformed.
const FormatCount = int(formatCount)

// Errors
var (
	ErrUnknownFormat          = errors.New("pixfmt: unknown pixel format")
	ErrMalformedCandidateList = errors.New("pixfmt: candidate list not terminated or longer than expected")
)

var formatNames = map[PixelFormat]string{
	YUV420P: "yuv420p", YUYV422: "yuyv422", RGB24: "rgb24", BGR24: "bgr24",
	YUV422P: "yuv422p", YUV444P: "yuv444p", YUV410P: "yuv410p", YUV411P: "yuv411p",
	YUV440P: "yuv440p", Gray8: "gray8", MonoWhite: "monow", MonoBlack: "monob",
	PAL8: "pal8", YUVJ420P: "yuvj420p", YUVJ422P: "yuvj422p", YUVJ444P: "yuvj444p",
	YUVJ440P: "yuvj440p", UYVY422: "uyvy422", UYYVYY411: "uyyvyy411",
	YUVA420P: "yuva420p", NV12: "nv12", NV21: "nv21",
	ARGB: "argb", RGBA: "rgba", ABGR: "abgr", BGRA: "bgra",
	Gray16BE: "gray16be", Gray16LE: "gray16le",
	RGB48BE: "rgb48be", RGB48LE: "rgb48le",
	RGB565BE: "rgb565be", RGB565LE: "rgb565le",
	RGB555BE: "rgb555be", RGB555LE: "rgb555le",
	RGB444BE: "rgb444be", RGB444LE: "rgb444le",
	BGR565BE: "bgr565be", BGR565LE: "bgr565le",
	BGR555BE: "bgr555be", BGR555LE: "bgr555le",
	BGR444BE: "bgr444be", BGR444LE: "bgr444le",
	RGB8: "rgb8", RGB4: "rgb4", RGB4Byte: "rgb4_byte",
	BGR8: "bgr8", BGR4: "bgr4", BGR4Byte: "bgr4_byte",
	YUV420P16LE: "yuv420p16le", YUV420P16BE: "yuv420p16be",
	YUV422P16LE: "yuv422p16le", YUV422P16BE: "yuv422p16be",
	YUV444P16LE: "yuv444p16le", YUV444P16BE: "yuv444p16be",
}

func (f PixelFormat) String() string {
	if f == None {
		return "none"
	}
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Parse resolves a format name as printed by String.
func Parse(name string) (PixelFormat, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return None, ErrUnknownFormat
}
