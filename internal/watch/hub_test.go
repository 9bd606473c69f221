package watch

import (
	"encoding/json"
	"testing"
	"time"
)

func receiveMessage(t *testing.T, ch chan []byte) ExportMessage {
	t.Helper()
	select {
	case data := <-ch:
		var msg ExportMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("broadcast is not valid JSON: %v", err)
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return ExportMessage{}
	}
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client

	hub.Broadcast(ExportMessage{
		Type:        "export",
		Path:        "model.ifc",
		EntityCount: 42,
		FileSize:    1024,
	})

	msg := receiveMessage(t, client.send)
	if msg.Type != "export" {
		t.Errorf("Type = %q, want export", msg.Type)
	}
	if msg.EntityCount != 42 || msg.FileSize != 1024 {
		t.Errorf("counts = %d/%d, want 42/1024", msg.EntityCount, msg.FileSize)
	}
	if msg.Timestamp == "" {
		t.Error("Timestamp not stamped on broadcast")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("received a message instead of channel close")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}
}
