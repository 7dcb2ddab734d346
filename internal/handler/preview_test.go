package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulaginds/avpix/internal/config"
	"github.com/kulaginds/avpix/internal/pixfmt"
)

func testPreview(t *testing.T) *Preview {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Preview.Width = 32
	cfg.Preview.Height = 16
	cfg.Preview.FPS = 100

	log := logrus.New()
	log.SetOutput(io.Discard)

	p, err := New(cfg, log)
	require.NoError(t, err)
	return p
}

func TestParseOptionsDefaults(t *testing.T) {
	p := testPreview(t)

	opts, err := p.parseOptions(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, pixfmt.YUV420P, opts.format)
	assert.Equal(t, 1, opts.shrink)
	assert.False(t, opts.deinterlace)
}

func TestParseOptionsNegotiatesFormat(t *testing.T) {
	p := testPreview(t)

	q := url.Values{}
	q.Set("formats", "yuv444p,gray8")
	opts, err := p.parseOptions(q)
	require.NoError(t, err)

	// 4:4:4 keeps everything the 4:2:0 source has; gray drops color
	assert.Equal(t, pixfmt.YUV444P, opts.format)
	assert.Equal(t, pixfmt.Loss(0), opts.loss)
}

func TestParseOptionsKeepsSourceWhenNoCandidateFits(t *testing.T) {
	p := testPreview(t)

	q := url.Values{}
	q.Set("formats", "rgb24") // packed, not streamable
	opts, err := p.parseOptions(q)
	require.NoError(t, err)

	assert.Equal(t, pixfmt.YUV420P, opts.format)
}

func TestParseOptionsErrors(t *testing.T) {
	p := testPreview(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown candidate", key: "formats", value: "notaformat"},
		{name: "bad shrink factor", key: "shrink", value: "3"},
		{name: "shrink too deep for dimensions", key: "shrink", value: "8"},
		{name: "bad deinterlace flag", key: "deinterlace", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(tt.key, tt.value)
			_, err := p.parseOptions(q)
			assert.Error(t, err)
		})
	}
}

func TestRenderFrameDimensions(t *testing.T) {
	p := testPreview(t)

	opts := streamOptions{format: pixfmt.YUV420P, shrink: 2}
	frame, w, h, err := p.renderFrame(opts, 0)
	require.NoError(t, err)

	assert.Equal(t, 16, w)
	assert.Equal(t, 8, h)
	assert.Len(t, frame.Data[0], 16*8)
	assert.Len(t, frame.Data[1], 8*4)
	assert.Len(t, frame.Data[2], 8*4)
}

func TestRenderFrameDeterministicPerIndex(t *testing.T) {
	p := testPreview(t)
	opts := streamOptions{format: pixfmt.YUV422P, shrink: 1, deinterlace: true}

	a, _, _, err := p.renderFrame(opts, 3)
	require.NoError(t, err)
	b, _, _, err := p.renderFrame(opts, 3)
	require.NoError(t, err)
	c, _, _, err := p.renderFrame(opts, 4)
	require.NoError(t, err)

	assert.Equal(t, frameDigest(a), frameDigest(b))
	assert.NotEqual(t, frameDigest(a), frameDigest(c))
}

func TestPackFrameRoundTrip(t *testing.T) {
	p := testPreview(t)

	opts := streamOptions{format: pixfmt.Gray8, shrink: 1}
	frame, _, _, err := p.renderFrame(opts, 0)
	require.NoError(t, err)

	packed := p.packFrame(frame)

	decoder, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer decoder.Close()

	raw, err := decoder.DecodeAll(packed, nil)
	require.NoError(t, err)
	assert.Equal(t, frame.Data[0], raw)
}

func TestConnectStreamsFrames(t *testing.T) {
	p := testPreview(t)

	server := httptest.NewServer(http.HandlerFunc(p.Connect))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?formats=yuv444p&shrink=2"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, msgType)

	var hello helloMessage
	require.NoError(t, json.Unmarshal(data, &hello))
	assert.Equal(t, "hello", hello.Type)
	assert.Equal(t, "yuv444p", hello.Format)
	assert.Equal(t, 16, hello.Width)
	assert.Equal(t, 8, hello.Height)

	msgType, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)

	decoder, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer decoder.Close()

	raw, err := decoder.DecodeAll(payload, nil)
	require.NoError(t, err)
	assert.Len(t, raw, 3*16*8)
}

func TestConnectRejectsBadOptions(t *testing.T) {
	p := testPreview(t)

	server := httptest.NewServer(http.HandlerFunc(p.Connect))
	defer server.Close()

	resp, err := http.Get(server.URL + "?shrink=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
