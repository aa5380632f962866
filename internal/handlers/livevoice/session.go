package livevoice

import (
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/audio"
	"github.com/agrovoice/kisanbhai/pkg/audio/ring"
	"github.com/agrovoice/kisanbhai/pkg/audio/schedule"
)

// Session bridges one client connection to one upstream live stream.
// Microphone frames land in a ring buffer so client bursts never block
// the upstream writer; model audio is placed back to back on the session
// timeline by the scheduler before it is pushed to the client.
type Session struct {
	ID        uuid.UUID
	ProfileID uuid.UUID

	conn     *websocket.Conn
	upstream *Upstream
	capture  *ring.Buffer
	sched    *schedule.Scheduler
	cfg      config.SpeechConfig
	logger   *Logger.Logger

	started time.Time
	writeMu sync.Mutex

	closeOnce sync.Once
	done      chan struct{}
}

// NewSession wires a freshly upgraded client connection to an upstream
// stream. The session owns both connections and closes them on teardown.
func NewSession(profileID uuid.UUID, conn *websocket.Conn, upstream *Upstream, cfg *config.Settings, logger *Logger.Logger) *Session {
	s := &Session{
		ID:        uuid.New(),
		ProfileID: profileID,
		conn:      conn,
		upstream:  upstream,
		capture:   ring.New(cfg.Live.BufferSize),
		cfg:       cfg.Speech,
		logger:    logger,
		started:   time.Now(),
		done:      make(chan struct{}),
	}
	s.sched = schedule.New(playbackSink{s}, func() time.Duration {
		return time.Since(s.started)
	})
	return s
}

// playbackSink pushes scheduled chunks to the client as they are placed
// on the timeline; actual playback timing is the client's job.
type playbackSink struct{ s *Session }

func (p playbackSink) Play(id uint64, start time.Duration, c schedule.Chunk) error {
	return p.s.send(MessageTypeAudio, PlaybackChunk{
		ID:         id,
		Data:       base64.StdEncoding.EncodeToString(c.Data),
		SampleRate: c.Rate,
		StartMs:    start.Milliseconds(),
	})
}

// Run drives the session until either side disconnects. The upstream
// pump owns the scheduler; the client loop only feeds the capture ring
// and forwards frames upward.
func (s *Session) Run() {
	defer s.teardown()

	if err := s.send(MessageTypeReady, map[string]string{"sessionId": s.ID.String()}); err != nil {
		s.logger.Errorf("live session %s: ready push failed: %v", s.ID, err)
		return
	}

	go s.pumpUpstream()
	s.readClient()
}

// readClient consumes client messages until the connection drops.
func (s *Session) readClient() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Errorf("live session %s: client read error: %v", s.ID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("INVALID_MESSAGE", "Invalid message format")
			continue
		}

		switch msg.Type {
		case MessageTypeAudio:
			s.handleCapture(msg)
		case MessageTypeText:
			s.handleText(msg)
		case MessageTypeClose:
			return
		default:
			s.logger.Warnf("live session %s: unknown message type %q", s.ID, msg.Type)
		}
	}
}

// handleCapture buffers the frame and drains the ring to the upstream.
// The ring evicts oldest frames under pressure, so a slow upstream costs
// stale audio rather than memory.
func (s *Session) handleCapture(msg WSMessage) {
	frame, ok := decodeData[CaptureFrame](msg.Data)
	if !ok || frame.Data == "" {
		s.sendError("INVALID_AUDIO", "Malformed audio frame")
		return
	}

	pcm, err := audio.DecodeBase64(frame.Data)
	if err != nil {
		s.sendError("INVALID_AUDIO", "Audio frame is not valid base64")
		return
	}

	rate := frame.SampleRate
	if rate == 0 {
		rate = s.cfg.CaptureRate
	}
	if err := s.capture.Push(ring.Frame{
		Data:       pcm,
		Timestamp:  time.Now(),
		SampleRate: int32(rate),
	}); err != nil {
		s.logger.Warnf("live session %s: capture frame dropped: %v", s.ID, err)
		return
	}

	for {
		f, ok := s.capture.Pop()
		if !ok {
			break
		}
		// Clients may batch; the upstream expects fixed-size frames.
		for _, chunk := range audio.Frames(f.Data, s.cfg.FrameSamples) {
			if err := s.upstream.SendAudio(audio.EncodeBase64(chunk)); err != nil {
				s.logger.Errorf("live session %s: upstream audio write failed: %v", s.ID, err)
				s.teardown()
				return
			}
		}
	}
}

func (s *Session) handleText(msg WSMessage) {
	text, ok := decodeData[TextMessage](msg.Data)
	if !ok || text.Content == "" {
		s.sendError("INVALID_TEXT", "Empty text message")
		return
	}
	if err := s.upstream.SendText(text.Content); err != nil {
		s.logger.Errorf("live session %s: upstream text write failed: %v", s.ID, err)
		s.teardown()
	}
}

// pumpUpstream is the single owner of the scheduler. Model audio chunks
// enqueue back to back; an interruption abandons everything queued and
// tells the client to flush its playback.
func (s *Session) pumpUpstream() {
	defer s.teardown()
	defer s.sched.Close()

	events := make(chan *ServerEvent)
	errs := make(chan error, 1)
	go func() {
		for {
			ev, err := s.upstream.Read()
			if err != nil {
				errs <- err
				return
			}
			select {
			case events <- ev:
			case <-s.done:
				return
			}
		}
	}()

	for {
		select {
		case <-s.done:
			return
		case id := <-s.sched.Completions():
			s.sched.Complete(id)
		case err := <-errs:
			s.logger.Infof("live session %s: upstream closed: %v", s.ID, err)
			return
		case ev := <-events:
			s.handleServerEvent(ev)
		}
	}
}

func (s *Session) handleServerEvent(ev *ServerEvent) {
	if ev.Interrupted {
		s.sched.Reset()
		if err := s.send(MessageTypeInterrupted, nil); err != nil {
			s.logger.Errorf("live session %s: interrupt push failed: %v", s.ID, err)
		}
		return
	}

	for _, b64 := range ev.Audio {
		pcm, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			s.logger.Warnf("live session %s: bad audio chunk from upstream: %v", s.ID, err)
			continue
		}
		if _, _, err := s.sched.Enqueue(schedule.Chunk{Data: pcm, Rate: s.cfg.PlaybackRate}); err != nil {
			s.logger.Errorf("live session %s: playback push failed: %v", s.ID, err)
			return
		}
	}

	if ev.Text != "" {
		if err := s.send(MessageTypeText, TextMessage{Content: ev.Text}); err != nil {
			s.logger.Errorf("live session %s: text push failed: %v", s.ID, err)
		}
	}

	if ev.TurnComplete {
		if err := s.send(MessageTypeTurnDone, nil); err != nil {
			s.logger.Errorf("live session %s: turn push failed: %v", s.ID, err)
		}
	}
}

func (s *Session) send(t MessageType, data interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(WSMessage{
		Type:      t,
		Data:      data,
		SessionID: s.ID.String(),
		Timestamp: time.Now(),
	})
}

func (s *Session) sendError(code, message string) {
	if err := s.send(MessageTypeError, ErrorMessage{Code: code, Message: message}); err != nil {
		s.logger.Errorf("live session %s: error push failed: %v", s.ID, err)
	}
}

func (s *Session) teardown() {
	// The scheduler stays untouched here; it belongs to the upstream
	// pump, which closes it on its own way out.
	s.closeOnce.Do(func() {
		close(s.done)
		s.capture.Reset()
		if err := s.upstream.Close(); err != nil {
			s.logger.Debugf("live session %s: upstream close: %v", s.ID, err)
		}
		if err := s.conn.Close(); err != nil {
			s.logger.Debugf("live session %s: client close: %v", s.ID, err)
		}
	})
}

// decodeData recovers a typed payload from the loosely typed Data field.
func decodeData[T any](data interface{}) (T, bool) {
	var out T
	raw, err := json.Marshal(data)
	if err != nil {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}
