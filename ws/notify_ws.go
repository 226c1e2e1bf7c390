package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
)

// NotifyHub pushes reservation changes to connected admin-panel clients.
type NotifyHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Notification
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Notification is the wire payload sent to the panel.
type Notification struct {
	Event       string              `json:"event"`
	Reservation *entity.Reservation `json:"reservation"`
	At          time.Time           `json:"at"`
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Notification),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run handles register/unregister/broadcast until the process exits.
func (h *NotifyHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ReservationChanged implements services.ReservationNotifier.
func (h *NotifyHub) ReservationChanged(res *entity.Reservation, event string) {
	h.broadcast <- Notification{Event: event, Reservation: res, At: time.Now()}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/notifications (behind the admin auth middleware).
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// Drain reads so close frames are processed; the panel never sends data.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
