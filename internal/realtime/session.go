package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 256
)

var errSessionClosed = errors.New("session closed")

// Session is one live websocket connection. Outbound events are marshaled
// into envelopes and queued on a buffered channel drained by the write pump;
// a session whose buffer is full drops the event rather than block the
// gateway.
type Session struct {
	id   string
	conn *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

func newSession(conn *websocket.Conn) *Session {
	return &Session{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Send(event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	select {
	case <-s.done:
		return errSessionClosed
	case s.send <- frame:
		return nil
	default:
		logrus.Warnf("session %s send buffer full, dropping %s", s.id, event)
		return errSessionClosed
	}
}

func (s *Session) close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case frame := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, nil)
			return
		}
	}
}

// Serve runs a connection's full lifecycle: attach, read loop, detach. It
// blocks until the transport disconnects. Events arriving on this connection
// are processed in order; in-flight store operations started before a
// disconnect run to completion and their side effects stand.
func (g *Gateway) Serve(conn *websocket.Conn) {
	session := newSession(conn)
	g.Attach(session)

	defer func() {
		g.Detach(session)
		session.close()
	}()

	go session.writePump()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Warnf("session %s read error: %v", session.id, err)
			}
			return
		}
		g.Dispatch(context.Background(), session, raw)
	}
}
