// internal/interfaces/http/handlers/events.go
package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pawtopia/storefront/internal/domain/cart"
	"github.com/pawtopia/storefront/internal/domain/catalog"
	"github.com/pawtopia/storefront/internal/domain/storefront"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Event is one message pushed to the page
type Event struct {
	Type    string      `json:"type"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// inbound is what the page sends: a UI action, or a suggestion query
type inbound struct {
	storefront.Action
	Suggest *string `json:"suggest,omitempty"`
}

// EventsHandler streams cart changes and toasts to a page over a WebSocket
// and accepts debounced input actions from it
type EventsHandler struct {
	sessions *storefront.Registry
	upgrader websocket.Upgrader
	log      logrus.FieldLogger
}

// NewEventsHandler creates a new events handler. allowedOrigins empty or
// containing "*" accepts any origin.
func NewEventsHandler(sessions *storefront.Registry, allowedOrigins []string, log logrus.FieldLogger) *EventsHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &EventsHandler{
		sessions: sessions,
		log:      log.WithField("component", "events"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowed) == 0 || allowed["*"] || allowed[origin]
			},
		},
	}
}

// conn serializes writes; gorilla allows one concurrent writer
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) send(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(e)
}

func (c *conn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Stream handles GET /events
func (h *EventsHandler) Stream(c *gin.Context) {
	s, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Debug("WebSocket upgrade failed")
		return
	}
	defer ws.Close()
	out := &conn{ws: ws}

	stopCart := s.OnCartChange(func(b cart.Badge) {
		count := b.Count
		_ = out.send(Event{Type: "cartUpdated", Count: &count})
	})
	defer stopCart()

	stopToasts := s.Listen(storefront.NotifierFunc(func(message string) {
		_ = out.send(Event{Type: "toast", Message: message})
	}))
	defer stopToasts()

	count := s.Cart(c.Request.Context()).Badge.Count
	if err := out.send(Event{Type: "cartUpdated", Count: &count}); err != nil {
		return
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := out.ping(); err != nil {
					return
				}
			}
		}
	}()

	ws.SetReadLimit(64 << 10)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := c.Request.Context()
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Debug("WebSocket closed")
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = out.send(Event{Type: "error", Error: "invalid message"})
			continue
		}

		if msg.Suggest != nil {
			s.Suggest(*msg.Suggest, func(got []catalog.Suggestion) {
				_ = out.send(Event{Type: "suggestions", Data: got})
			})
			continue
		}

		s.Debounced(ctx, msg.Action, func(o storefront.Outcome, err error) {
			if err != nil {
				_ = out.send(Event{Type: "error", Error: err.Error(), Data: o})
				return
			}
			_ = out.send(Event{Type: "outcome", Data: o})
		})
	}
}
