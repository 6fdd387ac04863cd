package mux

import (
	"encoding/json"
	"hobbitname-server/pkg/namegen"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const wsPath = "/name/ws"

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

type wsNameRequest struct {
	Gender string `json:"gender"`
}

type wsNameResponse struct {
	Name  string `json:"name,omitempty"`
	Error string `json:"error,omitempty"`
}

// getNameWS answers every name request sent over the socket with a fresh name
func (m *Mux) getNameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		log := logrus.WithField("requestID", requestID(r))
		send := make(chan wsNameResponse, 16)
		writerDone := make(chan struct{})

		go m.webSocketWriteLoop(conn, send, writerDone, log)
		m.webSocketReadLoop(conn, send, writerDone, log)

		close(send)
		<-writerDone
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, send <-chan wsNameResponse, done chan<- struct{}, log *logrus.Entry) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			log.WithField("message", msg).Trace("sending message to client")
			if err := conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, send chan<- wsNameResponse, writerDone <-chan struct{}, log *logrus.Entry) {
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		select {
		case send <- m.roll(b):
		case <-writerDone:
			return
		}
	}
}

func (m *Mux) roll(b []byte) wsNameResponse {
	var req wsNameRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return wsNameResponse{Error: "could not parse request"}
	}

	gender, err := namegen.ParseGender(req.Gender)
	if err != nil {
		return wsNameResponse{Error: err.Error()}
	}

	name, err := m.generator.Generate(gender)
	if err != nil {
		return wsNameResponse{Error: err.Error()}
	}

	return wsNameResponse{Name: name}
}
