package tradefeed

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: BarterRoom,
	}

	hub.register <- client

	data, _ := json.Marshal(feedEvent{Event: "listing-created", Timestamp: time.Now().Unix()})
	hub.broadcast <- broadcastMsg{Room: BarterRoom, Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

// A slow client gets dropped by the broadcast loop when its buffer
// fills; the later connection teardown unregisters the same client.
// The hub must survive that second removal.
func TestUnregisterAfterBroadcastDrop(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{Send: make(chan []byte), Room: BarterRoom}
	hub.register <- slow

	// nobody drains Send, so the broadcast drops the client
	hub.broadcast <- broadcastMsg{Room: BarterRoom, Data: []byte(`{"event":"listing-created"}`)}

	// readPump teardown path
	hub.unregister <- slow

	// the loop must still be serving other clients
	live := &Client{Send: make(chan []byte, 1), Room: BarterRoom}
	hub.register <- live
	hub.broadcast <- broadcastMsg{Room: BarterRoom, Data: []byte(`{"event":"listing-updated"}`)}

	select {
	case <-live.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped serving after duplicate unregister")
	}
}

func TestBroadcastReachesOnlyBarterRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	barter := &Client{Send: make(chan []byte, 10), Room: BarterRoom}
	other := &Client{Send: make(chan []byte, 10), Room: "elsewhere"}
	hub.register <- barter
	hub.register <- other

	hub.Broadcast("trade-proposed", map[string]string{"itemId": "1"})

	select {
	case got := <-barter.Send:
		var ev feedEvent
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatal(err)
		}
		if ev.Event != "trade-proposed" {
			t.Fatalf("unexpected event: %s", ev.Event)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for barter event")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other room should not receive barter events, got %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
