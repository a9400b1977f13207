package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mudanzasBack/internal/models"
)

func dialTestHub(t *testing.T) (*application, *websocket.Conn, func()) {
	t.Helper()

	app := &application{wsManager: NewWebSocketManager()}
	go app.wsManager.Run()

	srv := httptest.NewServer(http.HandlerFunc(app.WebSocketHandler))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}

	return app, conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestHubDeliversFeedEvents(t *testing.T) {
	app, conn, cleanup := dialTestHub(t)
	defer cleanup()

	if err := conn.WriteJSON(map[string]int{"userId": 7}); err != nil {
		t.Fatalf("hello: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	app.wsManager.Publish(models.Event{
		Type:    "request.created",
		Topic:   models.TopicFeed,
		Payload: map[string]int{"id": 1},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event models.Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.Type != "request.created" || event.Topic != models.TopicFeed {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestHubTopicSubscription(t *testing.T) {
	app, conn, cleanup := dialTestHub(t)
	defer cleanup()

	if err := conn.WriteJSON(map[string]int{"userId": 8}); err != nil {
		t.Fatalf("hello: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	// not yet subscribed to the chat topic
	app.wsManager.Publish(models.Event{Type: "message.created", Topic: models.ChatTopic(5)})

	if err := conn.WriteJSON(map[string]string{"action": "subscribe", "topic": models.ChatTopic(5)}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	app.wsManager.Publish(models.Event{Type: "message.created", Topic: models.ChatTopic(5), Payload: map[string]int{"id": 2}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event models.Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.Topic != models.ChatTopic(5) {
		t.Fatalf("unexpected topic: %q", event.Topic)
	}
}

func TestClientSerializesConcurrentWrites(t *testing.T) {
	const writers, perWriter = 4, 5

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &wsClient{conn: conn, topics: make(map[string]bool)}

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perWriter; j++ {
					_ = client.ping()
					_ = client.writeJSON(models.Event{Type: "request.created", Topic: models.TopicFeed})
				}
			}()
		}
		wg.Wait()
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < writers*perWriter; i++ {
		var event models.Event
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("read event %d: %v", i, err)
		}
		if event.Topic != models.TopicFeed {
			t.Fatalf("unexpected topic %q", event.Topic)
		}
	}
}
