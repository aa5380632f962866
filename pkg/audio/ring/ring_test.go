package ring

import (
	"bytes"
	"testing"
	"time"
)

func TestPushPopRoundTrip(t *testing.T) {
	buffer := New(1024)

	if buffer.Capacity() != 1024 {
		t.Errorf("Expected capacity 1024, got %d", buffer.Capacity())
	}

	frame := Frame{
		Data:       []byte{1, 2, 3, 4, 5},
		Timestamp:  time.Now(),
		SampleRate: 16000,
	}

	if err := buffer.Push(frame); err != nil {
		t.Fatalf("Failed to push: %v", err)
	}

	popped, ok := buffer.Pop()
	if !ok {
		t.Fatal("Failed to pop")
	}

	if !bytes.Equal(popped.Data, frame.Data) {
		t.Errorf("Data mismatch: expected %v, got %v", frame.Data, popped.Data)
	}
	if popped.SampleRate != frame.SampleRate {
		t.Errorf("Expected sample rate %d, got %d", frame.SampleRate, popped.SampleRate)
	}
	if popped.Timestamp.UnixNano() != frame.Timestamp.UnixNano() {
		t.Errorf("Timestamp mismatch")
	}
}

func TestPopOnEmptyBuffer(t *testing.T) {
	buffer := New(256)
	if _, ok := buffer.Pop(); ok {
		t.Error("Pop on empty buffer should report !ok")
	}
}

func TestPushEvictsOldestWhenFull(t *testing.T) {
	// Room for roughly three small frames.
	buffer := New(128)

	for i := 0; i < 10; i++ {
		frame := Frame{
			Data:       []byte{byte(i), byte(i), byte(i), byte(i)},
			Timestamp:  time.Now(),
			SampleRate: 16000,
		}
		if err := buffer.Push(frame); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}

	// The survivors must be the newest frames, in order.
	var got []byte
	for {
		f, ok := buffer.Pop()
		if !ok {
			break
		}
		got = append(got, f.Data[0])
	}
	if len(got) == 0 {
		t.Fatal("buffer should retain recent frames")
	}
	for i := 1; i < len(got); i++ {
		if got[i] != got[i-1]+1 {
			t.Fatalf("frames out of order after eviction: %v", got)
		}
	}
	if got[len(got)-1] != 9 {
		t.Errorf("newest frame must survive eviction, got %v", got)
	}
}

func TestPushRejectsOversizedFrame(t *testing.T) {
	buffer := New(64)
	frame := Frame{Data: make([]byte, 256), Timestamp: time.Now(), SampleRate: 16000}
	if err := buffer.Push(frame); err == nil {
		t.Error("expected error for frame larger than the buffer")
	}
}

func TestReset(t *testing.T) {
	buffer := New(256)
	buffer.Push(Frame{Data: []byte{1}, Timestamp: time.Now(), SampleRate: 16000})
	buffer.Reset()
	if _, ok := buffer.Pop(); ok {
		t.Error("buffer should be empty after reset")
	}
}
