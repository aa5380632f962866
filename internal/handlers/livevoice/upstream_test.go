package livevoice

import (
	"testing"
)

func TestDecodeServerFrameAudio(t *testing.T) {
	frame := []byte(`{
		"serverContent": {
			"modelTurn": {
				"parts": [
					{"inlineData": {"mimeType": "audio/pcm;rate=24000", "data": "QUJD"}},
					{"inlineData": {"mimeType": "audio/pcm;rate=24000", "data": "REVG"}}
				]
			}
		}
	}`)

	ev, err := decodeServerFrame(frame)
	if err != nil {
		t.Fatalf("decodeServerFrame returned error: %v", err)
	}
	if len(ev.Audio) != 2 {
		t.Fatalf("expected 2 audio chunks, got %d", len(ev.Audio))
	}
	if ev.Audio[0] != "QUJD" || ev.Audio[1] != "REVG" {
		t.Errorf("audio chunks out of order: %v", ev.Audio)
	}
	if ev.Interrupted || ev.TurnComplete || ev.SetupDone {
		t.Errorf("unexpected flags set: %+v", ev)
	}
}

func TestDecodeServerFrameInterrupted(t *testing.T) {
	ev, err := decodeServerFrame([]byte(`{"serverContent": {"interrupted": true}}`))
	if err != nil {
		t.Fatalf("decodeServerFrame returned error: %v", err)
	}
	if !ev.Interrupted {
		t.Error("expected interrupted flag")
	}
	if len(ev.Audio) != 0 {
		t.Errorf("expected no audio, got %d chunks", len(ev.Audio))
	}
}

func TestDecodeServerFrameTurnComplete(t *testing.T) {
	ev, err := decodeServerFrame([]byte(`{"serverContent": {"turnComplete": true}}`))
	if err != nil {
		t.Fatalf("decodeServerFrame returned error: %v", err)
	}
	if !ev.TurnComplete {
		t.Error("expected turnComplete flag")
	}
}

func TestDecodeServerFrameSetupComplete(t *testing.T) {
	ev, err := decodeServerFrame([]byte(`{"setupComplete": {}}`))
	if err != nil {
		t.Fatalf("decodeServerFrame returned error: %v", err)
	}
	if !ev.SetupDone {
		t.Error("expected setupDone flag")
	}
}

func TestDecodeServerFrameCollectsText(t *testing.T) {
	frame := []byte(`{
		"serverContent": {
			"modelTurn": {"parts": [{"text": "Water the "}, {"text": "wheat field."}]}
		}
	}`)

	ev, err := decodeServerFrame(frame)
	if err != nil {
		t.Fatalf("decodeServerFrame returned error: %v", err)
	}
	if ev.Text != "Water the wheat field." {
		t.Errorf("expected concatenated text, got %q", ev.Text)
	}
}

func TestDecodeServerFrameRejectsGarbage(t *testing.T) {
	if _, err := decodeServerFrame([]byte("not json")); err == nil {
		t.Error("expected error for malformed frame")
	}
}

func TestDecodeDataCaptureFrame(t *testing.T) {
	// Data arrives as map[string]interface{} after generic JSON decoding.
	raw := map[string]interface{}{"data": "QUJD", "sampleRate": float64(16000)}

	frame, ok := decodeData[CaptureFrame](raw)
	if !ok {
		t.Fatal("expected capture frame to decode")
	}
	if frame.Data != "QUJD" {
		t.Errorf("expected data QUJD, got %q", frame.Data)
	}
	if frame.SampleRate != 16000 {
		t.Errorf("expected sample rate 16000, got %d", frame.SampleRate)
	}
}

func TestDecodeDataTextMessage(t *testing.T) {
	raw := map[string]interface{}{"content": "kya mausam hai"}

	msg, ok := decodeData[TextMessage](raw)
	if !ok {
		t.Fatal("expected text message to decode")
	}
	if msg.Content != "kya mausam hai" {
		t.Errorf("unexpected content %q", msg.Content)
	}
}
