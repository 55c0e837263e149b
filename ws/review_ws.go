package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"backend/entity"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ReviewHub กระจายรีวิวใหม่ให้ทุก client ที่เปิดหน้าร้านนั้นอยู่
type ReviewHub struct {
	clients    map[uint]map[*websocket.Conn]bool // storeID -> set of clients
	broadcast  chan BroadcastReview
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	stores     *services.StoreService
}

// Subscription = client หนึ่งตัวที่ดูร้านหนึ่งร้าน
type Subscription struct {
	Conn    *websocket.Conn
	StoreID uint
}

// BroadcastReview = รีวิวใหม่ที่จะส่งให้ทุกคนที่ดูร้านนี้
type BroadcastReview struct {
	StoreID uint
	Review  *entity.Review
}

func NewReviewHub(stores *services.StoreService) *ReviewHub {
	return &ReviewHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastReview),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		stores:     stores,
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *ReviewHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.StoreID] == nil {
				h.clients[sub.StoreID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.StoreID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.StoreID][sub.Conn]; ok {
				delete(h.clients[sub.StoreID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.StoreID] {
				if err := conn.WriteJSON(msg.Review); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.StoreID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyReview เรียกจาก controller หลังสร้างรีวิวสำเร็จ
func (h *ReviewHub) NotifyReview(storeID uint, review *entity.Review) {
	h.broadcast <- BroadcastReview{StoreID: storeID, Review: review}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/stores/:id/reviews (public — รีวิวอ่านได้ทุกคน)
func (h *ReviewHub) HandleWebSocket(c *gin.Context) {
	storeIDStr := c.Param("id")
	var storeID uint
	fmt.Sscan(storeIDStr, &storeID)

	// --- ตรวจสอบว่าร้านนี้มีจริงไหม
	if _, err := h.stores.Get(storeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
		return
	}

	// --- Upgrade HTTP → WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, StoreID: storeID}
	h.register <- sub

	// อ่านทิ้งไปเรื่อย ๆ จนกว่า client จะหลุด (feed นี้ส่งทางเดียว)
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
