package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и комнатой. Клиент - это read-only
// зеркало: все мутации идут намерениями через конвейер комнаты, обратно
// летят broadcast-проекции и адресные результаты.
type Client struct {
	Room *engine.Room
	Conn *websocket.Conn
	Send chan api.ServerMessage
	UID  string

	updates chan api.StateView
}

func NewClient(room *engine.Room, conn *websocket.Conn, uid string) *Client {
	if uid == "" {
		uid = utils.GenerateID()
	}
	return &Client{
		Room: room,
		Conn: conn,
		Send: make(chan api.ServerMessage, 64),
		UID:  uid,
	}
}

// readPump читает намерения от клиента и прогоняет через комнату
func (c *Client) readPump() {
	defer func() {
		if c.updates != nil {
			c.Room.Hub.Unsubscribe(c.updates)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithFields(logrus.Fields{
			"room": c.Room.Code,
			"uid":  c.UID,
		}).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Подписка на broadcast и первый снимок состояния
	c.updates = c.Room.Hub.Subscribe()
	go func() {
		for view := range c.updates {
			v := view
			select {
			case c.Send <- api.ServerMessage{Kind: "state", State: &v}:
			default:
				// Медленное зеркало отстает, следующий broadcast его догонит
			}
		}
		close(c.Send)
	}()

	snapshot := c.Room.Snapshot()
	c.Send <- api.ServerMessage{Kind: "state", State: &snapshot}

	logger.Log.WithFields(logrus.Fields{
		"room": c.Room.Code,
		"uid":  c.UID,
	}).Info("Client connected")

	for {
		var env api.IntentEnvelope
		if err := c.Conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("WS read error")
			}
			return
		}

		intent := domain.Intent{
			Type:    domain.ParseIntent(env.Type),
			UID:     c.UID,
			Payload: env.Payload,
		}

		outcome := c.Room.Submit(intent)
		result := engine.BuildIntentResult(env.Type, outcome)
		select {
		case c.Send <- api.ServerMessage{Kind: "result", Result: &result}:
		default:
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
