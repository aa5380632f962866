// Package schedule places decoded audio chunks back to back on a session
// timeline so that streamed playback never gaps or overlaps. A Scheduler is
// owned by exactly one goroutine, the live session's receive loop, so it
// carries no locks; completion timers report back through Completions and
// the owner acks them with Complete.
package schedule

import (
	"time"

	"github.com/agrovoice/kisanbhai/pkg/audio"
)

// Chunk is one decoded PCM payload awaiting playback.
type Chunk struct {
	Data []byte // s16le mono
	Rate int
}

// Duration reports how long the chunk plays for.
func (c Chunk) Duration() time.Duration {
	return audio.Duration(c.Data, c.Rate)
}

// Sink receives scheduled chunks together with their start offset on the
// session timeline.
type Sink interface {
	Play(id uint64, start time.Duration, c Chunk) error
}

type Scheduler struct {
	sink Sink
	// now reports elapsed session time; playback can never be scheduled
	// in the past, so starts clamp to it.
	now func() time.Duration

	nextStart   time.Duration
	nextID      uint64
	active      map[uint64]struct{}
	completions chan uint64
	timers      map[uint64]*time.Timer
	quit        chan struct{}
}

func New(sink Sink, now func() time.Duration) *Scheduler {
	if now == nil {
		start := time.Now()
		now = func() time.Duration { return time.Since(start) }
	}
	return &Scheduler{
		sink:        sink,
		now:         now,
		active:      make(map[uint64]struct{}),
		completions: make(chan uint64, 64),
		timers:      make(map[uint64]*time.Timer),
		quit:        make(chan struct{}),
	}
}

// Enqueue schedules c immediately after the last queued chunk, or at the
// current session time if the queue has drained. It returns the assigned
// chunk id and its start offset.
func (s *Scheduler) Enqueue(c Chunk) (uint64, time.Duration, error) {
	start := s.nextStart
	if now := s.now(); start < now {
		start = now
	}
	s.nextID++
	id := s.nextID
	if err := s.sink.Play(id, start, c); err != nil {
		return 0, 0, err
	}
	s.active[id] = struct{}{}
	s.nextStart = start + c.Duration()

	delay := s.nextStart - s.now()
	if delay < 0 {
		delay = 0
	}
	// A fired timer must never lose its id: a dropped completion would
	// leave the chunk active forever. Blocked sends unwind on Close.
	s.timers[id] = time.AfterFunc(delay, func() {
		select {
		case s.completions <- id:
		case <-s.quit:
		}
	})
	return id, start, nil
}

// Completions yields ids of chunks whose playback window has elapsed. The
// owning loop must drain it and call Complete for each id.
func (s *Scheduler) Completions() <-chan uint64 { return s.completions }

// Complete drops id from the active set.
func (s *Scheduler) Complete(id uint64) {
	delete(s.active, id)
	delete(s.timers, id)
}

// Active reports how many chunks are queued or playing.
func (s *Scheduler) Active() int { return len(s.active) }

// NextStart reports where the next chunk would land on the timeline.
func (s *Scheduler) NextStart() time.Duration { return s.nextStart }

// Reset abandons all pending playback. Used on interruption events from the
// upstream model and on session teardown.
func (s *Scheduler) Reset() {
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	for id := range s.active {
		delete(s.active, id)
	}
	s.nextStart = s.now()
}

// Close releases any timer callbacks still waiting to report completion.
// Only the owning goroutine may call it, once, when the session ends.
func (s *Scheduler) Close() {
	s.Reset()
	close(s.quit)
}
