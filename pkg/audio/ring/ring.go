// Package ring buffers live microphone frames between the client socket
// and the model upstream. When the upstream stalls, the oldest frames are
// dropped first: live speech is only useful fresh.
package ring

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/smallnest/ringbuffer"
)

// Frame is one captured microphone chunk.
type Frame struct {
	Data       []byte // s16le mono samples
	Timestamp  time.Time
	SampleRate int32
}

const frameHeaderSize = 8 + 4 + 4 // timestamp + sampleRate + dataLen

func (f *Frame) MarshalBinary() ([]byte, error) {
	buf := make([]byte, frameHeaderSize+len(f.Data))
	offset := 0
	binary.LittleEndian.PutUint64(buf[offset:], uint64(f.Timestamp.UnixNano()))
	offset += 8
	binary.LittleEndian.PutUint32(buf[offset:], uint32(f.SampleRate))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(f.Data)))
	offset += 4
	copy(buf[offset:], f.Data)
	return buf, nil
}

func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < frameHeaderSize {
		return errors.New("frame too short")
	}
	offset := 0
	f.Timestamp = time.Unix(0, int64(binary.LittleEndian.Uint64(data[offset:])))
	offset += 8
	f.SampleRate = int32(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	dataLen := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	if len(data) < offset+dataLen {
		return errors.New("frame data truncated")
	}
	f.Data = make([]byte, dataLen)
	copy(f.Data, data[offset:offset+dataLen])
	return nil
}

// Buffer is a bounded frame queue over a byte ring. Frames are stored
// size-prefixed; Push evicts whole frames from the front when full.
type Buffer struct {
	size int
	rb   *ringbuffer.RingBuffer
}

func New(size int) *Buffer {
	return &Buffer{
		size: size,
		rb:   ringbuffer.New(size),
	}
}

func (b *Buffer) Capacity() int { return b.size }

// Push appends a frame, evicting the oldest frames if space is needed.
func (b *Buffer) Push(f Frame) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	required := len(data) + 4
	if required > b.rb.Capacity() {
		return errors.New("audio frame too large for buffer")
	}

	for b.rb.Free() < required {
		if !b.dropOldest() {
			b.rb.Reset()
			break
		}
	}

	sizeBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(sizeBytes, uint32(len(data)))
	if _, err := b.rb.Write(sizeBytes); err != nil {
		return err
	}
	_, err = b.rb.Write(data)
	return err
}

// Pop removes and returns the oldest frame.
func (b *Buffer) Pop() (Frame, bool) {
	if b.rb.IsEmpty() {
		return Frame{}, false
	}

	sizeBytes := make([]byte, 4)
	if n, err := b.rb.Read(sizeBytes); err != nil || n != 4 {
		return Frame{}, false
	}
	size := int(binary.LittleEndian.Uint32(sizeBytes))

	data := make([]byte, size)
	if n, err := b.rb.Read(data); err != nil || n != size {
		return Frame{}, false
	}

	var f Frame
	if err := f.UnmarshalBinary(data); err != nil {
		return Frame{}, false
	}
	return f, true
}

// Reset discards all buffered frames.
func (b *Buffer) Reset() {
	b.rb.Reset()
}

func (b *Buffer) dropOldest() bool {
	if b.rb.IsEmpty() {
		return false
	}
	sizeBytes := make([]byte, 4)
	if n, err := b.rb.Read(sizeBytes); err != nil || n != 4 {
		return false
	}
	size := int(binary.LittleEndian.Uint32(sizeBytes))
	if size > 0 {
		skip := make([]byte, size)
		if n, err := b.rb.Read(skip); err != nil || n != size {
			return false
		}
	}
	return true
}
