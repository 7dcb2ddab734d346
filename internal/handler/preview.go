// Package handler serves synthetic preview frames over a websocket. It is
// the demo surface for the transform suite: the client picks a shrink
// factor, a deinterlace toggle and a list of acceptable pixel formats,
// and receives negotiated planar frames as zstd-compressed payloads.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/kulaginds/avpix/internal/config"
	"github.com/kulaginds/avpix/internal/picture"
	"github.com/kulaginds/avpix/internal/pixfmt"
)

// streamableFormats are the planar formats the preview can render and,
// when asked, deinterlace.
var streamableFormats = map[pixfmt.PixelFormat]bool{
	pixfmt.YUV420P:  true,
	pixfmt.YUVJ420P: true,
	pixfmt.YUV422P:  true,
	pixfmt.YUVJ422P: true,
	pixfmt.YUV444P:  true,
	pixfmt.YUV411P:  true,
	pixfmt.Gray8:    true,
}

type streamOptions struct {
	format      pixfmt.PixelFormat
	loss        pixfmt.Loss
	shrink      int
	deinterlace bool
}

// helloMessage announces the negotiated stream parameters before the
// first frame.
type helloMessage struct {
	Type   string `json:"type"`
	Format string `json:"format"`
	Loss   string `json:"loss"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Shrink int    `json:"shrink"`
}

// Preview streams test-pattern frames to websocket clients.
type Preview struct {
	cfg      *config.Config
	log      *logrus.Logger
	upgrader websocket.Upgrader
	encoder  *zstd.Encoder
}

// New builds a Preview around a validated configuration.
func New(cfg *config.Config, log *logrus.Logger) (*Preview, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(cfg.Preview.ZstdLevel)))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	return &Preview{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 65536,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		encoder: encoder,
	}, nil
}

// parseOptions resolves the stream parameters from query values. The
// output format is negotiated against the client's candidate list; with
// no list (or no acceptable candidate) the configured format streams
// unchanged.
func (p *Preview) parseOptions(q url.Values) (streamOptions, error) {
	opts := streamOptions{shrink: 1}

	srcFormat, err := pixfmt.Parse(p.cfg.Preview.Format)
	if err != nil {
		return opts, fmt.Errorf("configured format: %w", err)
	}
	opts.format = srcFormat

	if list := q.Get("formats"); list != "" {
		var candidates []pixfmt.PixelFormat
		for _, name := range strings.Split(list, ",") {
			f, err := pixfmt.Parse(strings.TrimSpace(name))
			if err != nil {
				return opts, fmt.Errorf("candidate format: %w", err)
			}
			if streamableFormats[f] {
				candidates = append(candidates, f)
			}
		}
		candidates = append(candidates, pixfmt.None)

		best, loss, err := pixfmt.FindBest(candidates, srcFormat, false)
		if err != nil {
			return opts, fmt.Errorf("negotiate format: %w", err)
		}
		if best != pixfmt.None {
			opts.format = best
			opts.loss = loss
		}
	}

	if s := q.Get("shrink"); s != "" {
		factor, err := strconv.Atoi(s)
		if err != nil || (factor != 1 && factor != 2 && factor != 4 && factor != 8) {
			return opts, fmt.Errorf("shrink factor must be 1, 2, 4 or 8, got %q", s)
		}
		if p.cfg.Preview.Width%(factor*4) != 0 || p.cfg.Preview.Height%(factor*4) != 0 {
			return opts, fmt.Errorf("shrink %d does not divide %dx%d into multiples of 4",
				factor, p.cfg.Preview.Width, p.cfg.Preview.Height)
		}
		opts.shrink = factor
	}

	if d := q.Get("deinterlace"); d != "" {
		opts.deinterlace, err = strconv.ParseBool(d)
		if err != nil {
			return opts, fmt.Errorf("deinterlace flag: %w", err)
		}
	}

	return opts, nil
}

// renderFrame produces frame n of the moving test pattern, deinterlaced
// and shrunk per the stream options.
func (p *Preview) renderFrame(opts streamOptions, n int) (*picture.Picture, int, int, error) {
	width, height := p.cfg.Preview.Width, p.cfg.Preview.Height

	pic, err := picture.Alloc(opts.format, width, height)
	if err != nil {
		return nil, 0, 0, err
	}
	drawPattern(pic, opts.format, width, height, n)

	if opts.deinterlace {
		if err := picture.Deinterlace(pic, pic, opts.format, width, height); err != nil {
			return nil, 0, 0, err
		}
	}

	if opts.shrink == 1 {
		return pic, width, height, nil
	}

	outW, outH := width/opts.shrink, height/opts.shrink
	out, err := picture.Alloc(opts.format, outW, outH)
	if err != nil {
		return nil, 0, 0, err
	}

	shrink := picture.Shrink2x2
	switch opts.shrink {
	case 4:
		shrink = picture.Shrink4x4
	case 8:
		shrink = picture.Shrink8x8
	}

	for plane := 0; plane < 3; plane++ {
		if len(out.Data[plane]) == 0 {
			break
		}
		pw, ph, err := picture.PlaneDims(opts.format, plane, outW, outH)
		if err != nil {
			return nil, 0, 0, err
		}
		shrink(out.Data[plane], out.Linesize[plane], pic.Data[plane], pic.Linesize[plane], pw, ph)
	}

	return out, outW, outH, nil
}

// drawPattern fills the planes with a diagonal gradient that drifts by
// frame number, plus a comb offset on odd luma rows so the deinterlacer
// visibly has work to do.
func drawPattern(pic *picture.Picture, f pixfmt.PixelFormat, width, height, n int) {
	for y := 0; y < height; y++ {
		row := y * pic.Linesize[0]
		comb := 0
		if y&1 == 1 {
			comb = 24
		}
		for x := 0; x < width; x++ {
			pic.Data[0][row+x] = byte(x + y + n*2 + comb)
		}
	}

	for plane := 1; plane < 3; plane++ {
		if len(pic.Data[plane]) == 0 {
			return
		}
		pw, ph, err := picture.PlaneDims(f, plane, width, height)
		if err != nil {
			return
		}
		for y := 0; y < ph; y++ {
			row := y * pic.Linesize[plane]
			for x := 0; x < pw; x++ {
				pic.Data[plane][row+x] = byte(128 + (x-y+n)*plane)
			}
		}
	}
}

// frameDigest hashes all plane bytes, used to skip unchanged frames.
func frameDigest(pic *picture.Picture) uint64 {
	h := xxhash.New()
	for plane := 0; plane < 4; plane++ {
		_, _ = h.Write(pic.Data[plane])
	}
	return h.Sum64()
}

// packFrame concatenates the planes and compresses the result.
func (p *Preview) packFrame(pic *picture.Picture) []byte {
	size := 0
	for plane := 0; plane < 4; plane++ {
		size += len(pic.Data[plane])
	}
	raw := make([]byte, 0, size)
	for plane := 0; plane < 4; plane++ {
		raw = append(raw, pic.Data[plane]...)
	}
	return p.encoder.EncodeAll(raw, nil)
}

// Connect upgrades the request and streams frames until the client goes
// away.
func (p *Preview) Connect(w http.ResponseWriter, r *http.Request) {
	opts, err := p.parseOptions(r.URL.Query())
	if err != nil {
		p.log.WithError(err).Warn("bad stream options")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := p.log.WithFields(logrus.Fields{
		"remote": r.RemoteAddr,
		"format": opts.format.String(),
		"shrink": opts.shrink,
	})
	log.Info("preview stream started")

	hello := helloMessage{
		Type:   "hello",
		Format: opts.format.String(),
		Loss:   opts.loss.String(),
		Width:  p.cfg.Preview.Width / opts.shrink,
		Height: p.cfg.Preview.Height / opts.shrink,
		Shrink: opts.shrink,
	}
	helloData, err := json.Marshal(hello)
	if err != nil {
		log.WithError(err).Error("marshal hello")
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, helloData); err != nil {
		log.WithError(err).Warn("send hello")
		return
	}

	// the read pump only detects client close
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(p.cfg.Preview.FPS))
	defer ticker.Stop()

	var lastDigest uint64
	for n := 0; ; n++ {
		select {
		case <-done:
			log.Info("preview stream closed by client")
			return
		case <-ticker.C:
		}

		frame, _, _, err := p.renderFrame(opts, n)
		if err != nil {
			log.WithError(err).Error("render frame")
			return
		}

		digest := frameDigest(frame)
		if digest == lastDigest {
			continue
		}
		lastDigest = digest

		payload := p.packFrame(frame)
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			log.WithError(err).Warn("send frame")
			return
		}
		log.WithFields(logrus.Fields{
			"frame": n,
			"bytes": len(payload),
		}).Debug("frame sent")
	}
}
