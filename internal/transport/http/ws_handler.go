package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"heritage-quiz-service/internal/app"
	"heritage-quiz-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// WSHandler drives a live quiz session over a websocket. The server owns the
// one-second countdown and moves on by itself when the time runs out.
type WSHandler struct {
	service      *app.QuizService
	upgrader     websocket.Upgrader
	tickInterval time.Duration
}

// WSOption customizes a WSHandler.
type WSOption func(*WSHandler)

// WithTickInterval changes how often the countdown is ticked.
func WithTickInterval(d time.Duration) WSOption {
	return func(h *WSHandler) {
		if d > 0 {
			h.tickInterval = d
		}
	}
}

func NewWSHandler(service *app.QuizService, opts ...WSOption) *WSHandler {
	h := &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		tickInterval: time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option *int `json:"option"`
}

type lifelinePayload struct {
	Kind string `json:"kind"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type tickPayload struct {
	TimeRemaining int `json:"timeRemaining"`
}

type timeExpiredPayload struct {
	Index int `json:"index"`
}

type completedPayload struct {
	Result  domain.Result     `json:"result"`
	Summary app.ResultSummary `json:"summary"`
}

// ServeWS upgrades the request and runs the session loop until the client leaves.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := context.WithoutCancel(r.Context())
	view, err := h.service.Get(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				_ = conn.Close()
				return
			}
		}
	}()

	inbound := make(chan inboundMessage)
	done := make(chan struct{})
	go func() {
		defer close(inbound)
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case inbound <- msg:
			case <-done:
				return
			}
		}
	}()

	s := &wsSession{id: sessionID, service: h.service, send: send, writerDone: writerDone}
	s.emit("session", view)

	ticker := time.NewTicker(h.tickInterval)
	defer ticker.Stop()
	tickC := ticker.C
	if view.Status == app.StatusCompleted {
		tickC = nil
	}

loop:
	for {
		select {
		case msg, ok := <-inbound:
			if !ok {
				break loop
			}
			if s.dispatch(ctx, msg) {
				tickC = nil
			}
		case <-tickC:
			if s.tick(ctx) {
				tickC = nil
			}
		case <-writerDone:
			break loop
		}
	}

	close(done)
	close(send)
	<-writerDone
}

// wsSession holds the per-connection state. Only the ServeWS loop goroutine
// uses it, so session operations on one connection never interleave.
type wsSession struct {
	id         string
	service    *app.QuizService
	send       chan<- outboundMessage
	writerDone <-chan struct{}
}

func (s *wsSession) emit(typ string, payload any) {
	select {
	case s.send <- outboundMessage{Type: typ, Payload: payload}:
	case <-s.writerDone:
	}
}

func (s *wsSession) emitError(err error) {
	_, code := errorStatus(err)
	s.emit("error", apiError{Code: code, Message: err.Error()})
}

// dispatch applies one client message and reports whether the session is now completed.
func (s *wsSession) dispatch(ctx context.Context, msg inboundMessage) bool {
	switch msg.Type {
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Option == nil {
			s.emit("error", apiError{Code: "INVALID_BODY", Message: "invalid answer payload"})
			return false
		}
		outcome, err := s.service.SubmitAnswer(ctx, s.id, *payload.Option)
		if err != nil {
			s.emitError(err)
			return errors.Is(err, domain.ErrSessionCompleted)
		}
		s.emit("answerResult", outcome)
		return false
	case "next":
		outcome, err := s.service.Advance(ctx, s.id)
		if err != nil {
			s.emitError(err)
			return errors.Is(err, domain.ErrSessionCompleted)
		}
		return s.emitAdvance(ctx, outcome)
	case "previous":
		if _, err := s.service.Previous(ctx, s.id); err != nil {
			s.emitError(err)
			return errors.Is(err, domain.ErrSessionCompleted)
		}
		return s.emitQuestion(ctx)
	case "lifeline":
		var payload lifelinePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			s.emit("error", apiError{Code: "INVALID_BODY", Message: "invalid lifeline payload"})
			return false
		}
		kind, err := domain.ParseLifeline(payload.Kind)
		if err != nil {
			s.emitError(err)
			return false
		}
		res, err := s.service.UseLifeline(ctx, s.id, kind)
		if err != nil {
			s.emitError(err)
			return errors.Is(err, domain.ErrSessionCompleted)
		}
		s.emit("lifeline", res)
		if res.Advance != nil {
			return s.emitAdvance(ctx, *res.Advance)
		}
		return false
	default:
		s.emit("error", apiError{Code: "UNSUPPORTED", Message: "unsupported message type"})
		return false
	}
}

// tick runs one countdown step and advances on expiry. It reports whether the
// countdown should stop for good.
func (s *wsSession) tick(ctx context.Context) bool {
	res, err := s.service.Tick(ctx, s.id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionCompleted) {
			return true
		}
		s.emitError(err)
		return errors.Is(err, domain.ErrSessionNotFound)
	}
	switch res.Outcome {
	case app.TickContinue:
		s.emit("tick", tickPayload{TimeRemaining: res.TimeRemaining})
	case app.TickTimeExpired:
		view, err := s.service.Get(ctx, s.id)
		if err != nil {
			s.emitError(err)
			return true
		}
		s.emit("timeExpired", timeExpiredPayload{Index: view.Index})
		outcome, err := s.service.Advance(ctx, s.id)
		if err != nil {
			s.emitError(err)
			return errors.Is(err, domain.ErrSessionCompleted)
		}
		return s.emitAdvance(ctx, outcome)
	}
	return false
}

func (s *wsSession) emitAdvance(ctx context.Context, outcome app.AdvanceOutcome) bool {
	if !outcome.Completed {
		return s.emitQuestion(ctx)
	}
	summary, err := s.service.Summary(ctx, s.id)
	if err != nil {
		s.emitError(err)
		return true
	}
	s.emit("completed", completedPayload{Result: outcome.Result, Summary: summary})
	return true
}

func (s *wsSession) emitQuestion(ctx context.Context) bool {
	view, err := s.service.Get(ctx, s.id)
	if err != nil {
		s.emitError(err)
		return false
	}
	s.emit("question", view)
	return view.Status == app.StatusCompleted
}
