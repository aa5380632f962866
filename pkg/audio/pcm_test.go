package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	// One second of mono s16le at playback rate.
	pcm := make([]byte, PlaybackRate*2)
	if d := Duration(pcm, PlaybackRate); d != time.Second {
		t.Errorf("want 1s, got %v", d)
	}
	if d := Duration(nil, PlaybackRate); d != 0 {
		t.Errorf("empty buffer: want 0, got %v", d)
	}
}

func TestFrames(t *testing.T) {
	// 4096-sample frames out of a 10000-sample capture buffer.
	pcm := make([]byte, 10000*2)
	frames := Frames(pcm, 4096)
	if len(frames) != 3 {
		t.Fatalf("want 3 frames, got %d", len(frames))
	}
	if len(frames[0]) != 4096*2 || len(frames[1]) != 4096*2 {
		t.Errorf("full frames should be %d bytes", 4096*2)
	}
	if len(frames[2]) != (10000-2*4096)*2 {
		t.Errorf("tail frame: want %d bytes, got %d", (10000-2*4096)*2, len(frames[2]))
	}
}

func TestBase64RoundTrip(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x7f, 0x80, 0xff}
	got, err := DecodeBase64(EncodeBase64(pcm))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("round trip mismatch: %v != %v", got, pcm)
	}
	if _, err := DecodeBase64("not$$base64"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestWAVHeader(t *testing.T) {
	h := WAVHeader(48000, PlaybackRate)
	if len(h) != 44 {
		t.Fatalf("header must be 44 bytes, got %d", len(h))
	}
	if string(h[0:4]) != "RIFF" || string(h[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if rate := binary.LittleEndian.Uint32(h[24:28]); rate != PlaybackRate {
		t.Errorf("sample rate: want %d, got %d", PlaybackRate, rate)
	}
	if dl := binary.LittleEndian.Uint32(h[40:44]); dl != 48000 {
		t.Errorf("data length: want 48000, got %d", dl)
	}
}
