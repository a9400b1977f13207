package main

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mudanzasBack/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

type wsClient struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	topics map[string]bool
}

// writeJSON serializes data writes. The hub and the ping loop share the
// socket and gorilla/websocket forbids concurrent writers.
func (c *wsClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return c.conn.WriteJSON(v)
}

func (c *wsClient) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

type registration struct {
	userID int
	client *wsClient
}

type unreg struct {
	userID int
	client *wsClient
}

type subscription struct {
	userID    int
	topic     string
	subscribe bool
}

// WebSocketManager fans events out to connected clients by topic. All
// access to the clients map happens on the Run goroutine.
type WebSocketManager struct {
	clients     map[int]*wsClient
	events      chan models.Event
	register    chan registration
	unregister  chan unreg
	subscribers chan subscription
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:     make(map[int]*wsClient),
		events:      make(chan models.Event, 64),
		register:    make(chan registration),
		unregister:  make(chan unreg),
		subscribers: make(chan subscription),
	}
}

// Publish queues an event for delivery to every subscriber of its topic.
// Drops the event when the hub is saturated, delivery is best effort.
func (ws *WebSocketManager) Publish(event models.Event) {
	select {
	case ws.events <- event:
	default:
		log.Printf("WS publish drop: topic=%s type=%s", event.Topic, event.Type)
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case reg := <-ws.register:
			if old, ok := ws.clients[reg.userID]; ok && old != reg.client {
				_ = old.conn.Close()
			}
			reg.client.topics[models.TopicFeed] = true
			ws.clients[reg.userID] = reg.client
			log.Printf("WS register user=%d", reg.userID)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.userID]; ok && cur == u.client {
				_ = cur.conn.Close()
				delete(ws.clients, u.userID)
				log.Printf("WS unregister user=%d", u.userID)
			}

		case sub := <-ws.subscribers:
			if client, ok := ws.clients[sub.userID]; ok {
				if sub.subscribe {
					client.topics[sub.topic] = true
				} else {
					delete(client.topics, sub.topic)
				}
			}

		case event := <-ws.events:
			for id, client := range ws.clients {
				if !client.topics[event.Topic] {
					continue
				}
				if err := client.writeJSON(event); err != nil {
					log.Printf("WS send error to=%d: %v", id, err)
					_ = client.conn.Close()
					delete(ws.clients, id)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame from the client must be { "userId": <int> }. After that
// the client sends subscribe/unsubscribe frames to pick its topics.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		UserID int `json:"userId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == 0 {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	client := &wsClient{conn: conn, topics: make(map[string]bool)}
	app.wsManager.register <- registration{userID: hello.UserID, client: client}

	go pingLoop(app.wsManager, client, hello.UserID)
	go handleSubscriptionFrames(client, hello.UserID, app.wsManager)
}

func pingLoop(ws *WebSocketManager, client *wsClient, uid int) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		if err := client.ping(); err != nil {
			_ = writeClose(client.conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{userID: uid, client: client}
			return
		}
	}
}

func handleSubscriptionFrames(client *wsClient, userID int, wsManager *WebSocketManager) {
	conn := client.conn
	defer func() {
		wsManager.unregister <- unreg{userID: userID, client: client}
		_ = conn.Close()
	}()

	for {
		var frame struct {
			Action string `json:"action"`
			Topic  string `json:"topic"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}

		switch frame.Action {
		case "subscribe":
			if frame.Topic == "" {
				continue
			}
			wsManager.subscribers <- subscription{userID: userID, topic: frame.Topic, subscribe: true}
		case "unsubscribe":
			wsManager.subscribers <- subscription{userID: userID, topic: frame.Topic, subscribe: false}
		default:
			log.Printf("WS unknown action from user=%d: %q", userID, frame.Action)
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
