package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glint-ui/glint/internal/errors"
	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/mount"
	"github.com/glint-ui/glint/pkg/reactive"
	"github.com/glint-ui/glint/pkg/render"
)

const tracerName = "glint"

// Session is one connected client: a WebSocket, a Document, and a root
// Owner. Every event dispatch and effect rerun for this session happens
// on its read loop goroutine, so the document needs no locking.
type Session struct {
	id     uint64
	conn   *websocket.Conn
	config *Config
	logger *slog.Logger

	doc      *dom.Document
	owner    *reactive.Owner
	root     RootComponent
	renderer *render.Renderer
	tracer   trace.Tracer

	metrics *serverMetrics

	// pending buffers mutations emitted during the current dispatch.
	pending []dom.Mutation

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newSession(id uint64, conn *websocket.Conn, root RootComponent,
	config *Config, logger *slog.Logger, metrics *serverMetrics) *Session {

	s := &Session{
		id:       id,
		conn:     conn,
		config:   config,
		logger:   logger.With("session", id),
		doc:      dom.NewDocument(),
		owner:    reactive.NewOwner(nil),
		root:     root,
		renderer: render.NewRenderer(render.Config{IncludeIDs: true}),
		tracer:   otel.Tracer(tracerName),
		metrics:  metrics,
	}

	s.doc.Observe(func(m dom.Mutation) {
		s.pending = append(s.pending, m)
	})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uint64 { return s.id }

// Document returns the session's live document.
func (s *Session) Document() *dom.Document { return s.doc }

// Start mounts the root component and sends the init frame.
func (s *Session) Start() error {
	_, err := mount.Render((func() *dom.Node)(s.root), s.doc.Body(), &mount.Options{
		Document: s.doc,
		Owner:    s.owner,
	})
	if err != nil {
		return err
	}
	dom.Flush()

	// The handshake carries the whole tree; mutations emitted while
	// mounting are subsumed by it.
	s.pending = s.pending[:0]

	html, err := s.renderer.RenderChildrenToString(s.doc.Body())
	if err != nil {
		return err
	}
	return s.send(initFrame{Type: frameInit, HTML: html, Root: s.doc.Body().ID()})
}

// ReadLoop processes incoming frames until the connection closes.
func (s *Session) ReadLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var frame eventFrame
		if err := unmarshalFrame(msg, &frame); err != nil {
			s.logger.Error("frame decode error", "error", err)
			continue
		}
		if frame.Type != frameEvent {
			s.logger.Warn("unknown frame type", "type", frame.Type)
			continue
		}

		s.handleEvent(frame)
	}
}

// handleEvent dispatches one browser event into the document and
// streams the resulting mutations back as a patch frame.
func (s *Session) handleEvent(frame eventFrame) {
	start := time.Now()
	s.metrics.eventReceived(frame.Event)

	_, span := s.tracer.Start(context.Background(), "glint.event",
		trace.WithAttributes(
			attribute.String("event.type", frame.Event),
			attribute.Int64("event.node", int64(frame.Node)),
			attribute.Int64("session.id", int64(s.id)),
		))
	defer span.End()

	target := s.doc.NodeByID(frame.Node)
	if target == nil {
		gerr := errors.New("S002").WithDetail("node %d", frame.Node)
		s.logger.Warn("event for unknown node", "error", gerr)
		span.SetStatus(codes.Error, gerr.Error())
		return
	}

	if frame.Value != "" {
		target.SetValue(frame.Value)
	}

	target.DispatchEvent(&dom.Event{
		Type:    frame.Event,
		Target:  target,
		Value:   frame.Value,
		Checked: frame.Checked,
		Key:     frame.Key,
	})

	// onMount callbacks and async children scheduled by the dispatch.
	dom.Flush()

	if err := s.flushPatches(); err != nil {
		s.logger.Error("patch send failed", "error", err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "")
	s.metrics.eventHandled(frame.Event, time.Since(start))
}

// flushPatches encodes and sends the buffered mutations, if any.
func (s *Session) flushPatches() error {
	if len(s.pending) == 0 {
		return nil
	}

	enc := newPatchEncoder(s.renderer)
	for _, m := range s.pending {
		if err := enc.add(m); err != nil {
			return err
		}
	}
	s.pending = s.pending[:0]

	if len(enc.ops) == 0 {
		return nil
	}
	s.metrics.patchesSent(len(enc.ops))
	return s.send(patchFrame{Type: framePatch, Ops: enc.ops})
}

// send writes one JSON frame. Safe for concurrent use.
func (s *Session) send(frame any) error {
	data, err := marshalFrame(frame)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Close disposes the session's reactive graph and closes the socket.
// Safe to call twice.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.owner.Dispose()
		s.conn.Close()
		s.logger.Info("session closed")
	})
}
