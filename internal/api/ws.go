package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/logging"
	"github.com/ericogr/joust-arena/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

const (
	wsTypeState   = "state"
	wsTypeError   = "error"
	wsTypeCommand = "command"
)

type wsOut struct {
	Type  string      `json:"type"`
	State *game.State `json:"state,omitempty"`
	Error string      `json:"error,omitempty"`
}

type wsIn struct {
	Type    string         `json:"type"`
	Command engine.Command `json:"command"`
}

// StateFeed upgrades to a websocket that pushes every new game state.
// Clients may also send {"type":"command","command":{...}} messages; the
// outcome arrives through the feed, refusals as error messages.
func (h *GameHandler) StateFeed(c *gin.Context) {
	states, cancel, err := h.session.Subscribe()
	if err != nil {
		msg := constants.ErrTooManySubscribers
		if errors.Is(err, service.ErrSessionClosed) {
			msg = constants.ErrServiceUnavailable
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyError: msg})
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("websocket upgrade failed", err, logging.Fields{constants.LogFieldRemote: c.ClientIP()})
		return
	}
	defer conn.Close()
	logging.Info("ws: connect", logging.Fields{constants.LogFieldRemote: c.ClientIP()})

	refusals := make(chan string, 4)
	done := make(chan struct{})
	go h.wsReader(conn, refusals, done)

	writeWait := time.Duration(constants.WebsocketWriteWaitMS) * time.Millisecond
	for {
		var msg wsOut
		select {
		case <-done:
			logging.Info("ws: closed", logging.Fields{constants.LogFieldRemote: c.ClientIP()})
			return
		case st, ok := <-states:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			msg = wsOut{Type: wsTypeState, State: &st}
		case reason := <-refusals:
			msg = wsOut{Type: wsTypeError, Error: reason}
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			logging.Debug("ws: write failed", logging.Fields{constants.LogFieldReason: err.Error()})
			return
		}
	}
}

func (h *GameHandler) wsReader(conn *websocket.Conn, refusals chan<- string, done chan<- struct{}) {
	defer close(done)
	for {
		var in wsIn
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		if in.Type != wsTypeCommand {
			continue
		}
		if _, err := h.session.Submit(context.Background(), in.Command); err != nil {
			select {
			case refusals <- err.Error():
			default:
			}
		}
	}
}
