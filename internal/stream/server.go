package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	game "go-particle-field/internal/app"
	"go-particle-field/internal/event"
	"go-particle-field/internal/system"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const sendBuffer = 3

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	conn    *websocket.Conn
	send    chan []byte
	visible bool
}

// Server steps one shared field at a fixed rate and broadcasts projected frames to websocket
// clients. The field runs while at least one client reports its section visible.
type Server struct {
	app        *game.FieldApp
	tickRate   int
	maxClients int
	logger     *zap.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	visible int
	frameNo uint32
}

// NewServer wraps app. With no clients the field is paused.
func NewServer(app *game.FieldApp, tickRate, maxClients int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		app:        app,
		tickRate:   tickRate,
		maxClients: maxClients,
		logger:     logger,
		clients:    make(map[*client]struct{}),
	}
	s.dispatchGate(event.SectionLeft)
	return s
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Active reports whether the shared field is running.
func (s *Server) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Field.Active()
}

// Run ticks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances the field by one frame and broadcasts it. Nothing is sent while the field is
// paused. Returns the number of clients the frame was queued for.
func (s *Server) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.app.Update(1 / float64(s.tickRate)) {
		return 0
	}
	s.frameNo++
	data := EncodeFrame(nil, s.app.Frame(), s.frameNo)

	queued := 0
	for c := range s.clients {
		select {
		case c.send <- data:
			queued++
		default:
			s.logger.Debug("client channel is full, dropping frame",
				zap.String("remote", c.conn.RemoteAddr().String()))
		}
	}
	return queued
}

// ServeHTTP upgrades the request and serves one client until it disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer), visible: true}

	s.mu.Lock()
	if len(s.clients) >= s.maxClients {
		s.mu.Unlock()
		s.logger.Warn("max clients reached", zap.Int("max", s.maxClients))
		_ = conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	s.setVisible(c, true, true)
	cam := s.app.Projector.Camera
	c.send <- EncodeViewport(cam.Width, cam.Height)
	c.send <- EncodeFrame(nil, s.app.Frame(), s.frameNo)
	s.mu.Unlock()

	s.logger.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))
	go writePump(c, s.logger)

	defer func() {
		s.mu.Lock()
		s.setVisible(c, false, false)
		delete(s.clients, c)
		close(c.send)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("client disconnected", zap.String("remote", conn.RemoteAddr().String()))
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", zap.Error(err))
			}
			return
		}
		if mt != websocket.BinaryMessage {
			continue
		}
		in, err := DecodeInput(message)
		if err != nil {
			s.logger.Debug("bad input", zap.Error(err))
			continue
		}

		s.mu.Lock()
		s.app.PointerTracker.Move(int(in.X), int(in.Y), event.PointerMouse)
		s.setVisible(c, in.Visible != 0, false)
		s.mu.Unlock()
	}
}

// setVisible обновляет видимость секции у клиента; при переходе 0 <-> 1 видимых
// клиентов поле получает событие секции. Вызывается под s.mu.
func (s *Server) setVisible(c *client, visible, joined bool) {
	if !joined && c.visible == visible {
		return
	}
	c.visible = visible
	prev := s.visible
	if visible {
		s.visible++
	} else {
		s.visible--
	}
	switch {
	case prev == 0 && s.visible > 0:
		s.dispatchGate(event.SectionEnteredBack)
	case prev > 0 && s.visible == 0:
		s.dispatchGate(event.SectionLeft)
	}
}

func (s *Server) dispatchGate(t event.EventType) {
	s.app.EventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.SectionData{Name: system.HomeSection},
	})
}

func writePump(c *client, logger *zap.Logger) {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			logger.Debug("write to client failed", zap.Error(err))
			_ = c.conn.Close()
			// дочитываем канал, пока обработчик не закроет его
			for range c.send {
			}
			return
		}
	}
}
