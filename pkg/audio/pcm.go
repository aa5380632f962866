// Package audio holds the PCM plumbing shared by one-shot speech synthesis
// and the live voice session: base64 framing, frame splitting, duration math
// and wav containers. Wire format everywhere is signed 16-bit little-endian
// PCM, mono; 24000 Hz for synthesized playback, 16000 Hz for live capture.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	PlaybackRate = 24000
	CaptureRate  = 16000
	bytesPerSample = 2
)

// EncodeBase64 wraps raw PCM bytes for transport.
func EncodeBase64(pcm []byte) string {
	return base64.StdEncoding.EncodeToString(pcm)
}

// DecodeBase64 unwraps transported PCM bytes.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("audio: decode base64: %w", err)
	}
	return data, nil
}

// Duration reports the playback time of a mono s16le buffer at rate Hz.
func Duration(pcm []byte, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	samples := len(pcm) / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(rate)
}

// Frames splits a capture buffer into fixed-size frames of frameSamples
// mono samples each; a short tail is returned as the final frame.
func Frames(pcm []byte, frameSamples int) [][]byte {
	frameBytes := frameSamples * bytesPerSample
	if frameBytes <= 0 || len(pcm) == 0 {
		return nil
	}
	var frames [][]byte
	for off := 0; off < len(pcm); off += frameBytes {
		end := off + frameBytes
		if end > len(pcm) {
			end = len(pcm)
		}
		frames = append(frames, pcm[off:end])
	}
	return frames
}

// WAVHeader renders a 44-byte RIFF header for a mono 16-bit stream of
// dataLen PCM bytes, for clients that want a directly playable blob.
func WAVHeader(dataLen int, rate int) []byte {
	const channels = 1
	const bitsPerSample = 16

	h := make([]byte, 44)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(36+dataLen))
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1)
	binary.LittleEndian.PutUint16(h[22:24], channels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(rate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(rate*channels*bitsPerSample/8))
	binary.LittleEndian.PutUint16(h[32:34], channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataLen))
	return h
}
