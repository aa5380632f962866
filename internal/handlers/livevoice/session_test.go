package livevoice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/audio"
	"github.com/agrovoice/kisanbhai/pkg/audio/ring"
)

// dialFakeUpstream stands up a local websocket endpoint that decodes
// every realtimeInput message and reports its media chunk sizes.
func dialFakeUpstream(t *testing.T, chunkSizes chan<- int) *Upstream {
	t.Helper()

	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var in realtimeInputMessage
			if err := json.Unmarshal(data, &in); err != nil {
				t.Errorf("bad upstream message: %v", err)
				return
			}
			for _, chunk := range in.RealtimeInput.MediaChunks {
				pcm, err := audio.DecodeBase64(chunk.Data)
				if err != nil {
					t.Errorf("chunk not base64: %v", err)
					return
				}
				chunkSizes <- len(pcm)
			}
		}
	}))
	t.Cleanup(ts.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return &Upstream{conn: conn}
}

func TestCaptureFramesAreRechunkedForUpstream(t *testing.T) {
	chunkSizes := make(chan int, 8)
	s := &Session{
		ID:       uuid.New(),
		upstream: dialFakeUpstream(t, chunkSizes),
		capture:  ring.New(8),
		cfg: config.SpeechConfig{
			CaptureRate:  16000,
			FrameSamples: 4096,
		},
		logger:  Logger.BuildLogger(false),
		started: time.Now(),
		done:    make(chan struct{}),
	}

	// A batched client upload of 10000 samples, larger than one frame.
	pcm := make([]byte, 10000*2)
	s.handleCapture(WSMessage{
		Type: MessageTypeAudio,
		Data: CaptureFrame{Data: audio.EncodeBase64(pcm)},
	})

	want := []int{4096 * 2, 4096 * 2, (10000 - 2*4096) * 2}
	for i, w := range want {
		select {
		case got := <-chunkSizes:
			if got != w {
				t.Errorf("chunk %d: want %d bytes, got %d", i, w, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for chunk %d", i)
		}
	}
	select {
	case got := <-chunkSizes:
		t.Errorf("unexpected extra chunk of %d bytes", got)
	case <-time.After(50 * time.Millisecond):
	}
}
