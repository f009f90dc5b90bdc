package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const tickerBacklog = 10

// TickerItem is one entry on the live news ticker: a new announcement or
// notice pushed to connected browsers and the mobile shell.
type TickerItem struct {
	Kind      string `json:"kind"` // announcement | notice
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	TitleMr   string `json:"title_mr"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"created_at"`
}

// TickerHub broadcasts ticker items and replays a short backlog to new
// subscribers. The channel is public - no auth on upgrade.
type TickerHub struct {
	*Hub
	mu     sync.RWMutex
	recent []TickerItem
}

func NewTickerHub() *TickerHub {
	return &TickerHub{Hub: NewHub()}
}

// Publish pushes an item to all subscribers and remembers it for replay.
func (t *TickerHub) Publish(item TickerItem) {
	item.CreatedAt = time.Now().Unix()
	t.mu.Lock()
	t.recent = append(t.recent, item)
	if len(t.recent) > tickerBacklog {
		t.recent = t.recent[len(t.recent)-tickerBacklog:]
	}
	t.mu.Unlock()
	t.BroadcastAll(map[string]interface{}{"type": "item", "item": item})
}

func (t *TickerHub) backlog() []TickerItem {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]TickerItem, len(t.recent))
	copy(out, t.recent)
	return out
}

// UpgradeTickerWS upgrades a connection onto the public ticker channel and
// replays the recent backlog.
func UpgradeTickerWS(hub *TickerHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		client := &Client{Send: make(chan []byte, 64)}
		hub.Register(client)
		defer client.Close()
		data, _ := json.Marshal(map[string]interface{}{"type": "backlog", "items": hub.backlog()})
		client.Send <- data
		go writePump(client, conn)
		readPump(conn)
	}
}

// writePump copies messages from client.Send to the connection.
func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection until the peer goes away.
func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
