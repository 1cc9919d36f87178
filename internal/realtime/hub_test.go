package realtime

import (
	"testing"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestHubBroadcastByChannel(t *testing.T) {
	hub := NewSSEHub(testLogger(t))

	subscriber := hub.NewSSEClient(uuid.New())
	hub.AddChannel(subscriber, "workflow")
	bystander := hub.NewSSEClient(uuid.New())

	hub.Broadcast(SSEMessage{Channel: "workflow", Event: SSEEventStageAdvanced})

	select {
	case msg := <-subscriber.Outbound:
		if msg.Event != SSEEventStageAdvanced {
			t.Fatalf("event = %q", msg.Event)
		}
	default:
		t.Fatal("subscriber did not receive broadcast")
	}

	select {
	case msg := <-bystander.Outbound:
		t.Fatalf("bystander received %+v", msg)
	default:
	}
}

func TestHubSlowClientDropped(t *testing.T) {
	hub := NewSSEHub(testLogger(t))
	client := hub.NewSSEClient(uuid.New())
	hub.AddChannel(client, "workflow")

	// fill the outbound buffer; further broadcasts must not block
	for i := 0; i < cap(client.Outbound)+5; i++ {
		hub.Broadcast(SSEMessage{Channel: "workflow", Event: SSEEventIdeaCreated})
	}
}

func TestHubRemoveClient(t *testing.T) {
	hub := NewSSEHub(testLogger(t))
	client := hub.NewSSEClient(uuid.New())
	hub.AddChannel(client, "workflow")

	hub.RemoveClient(client)

	// channel is closed after removal
	if _, ok := <-client.Outbound; ok {
		t.Fatal("outbound channel should be closed")
	}

	// broadcasting after removal must not panic or deliver
	hub.Broadcast(SSEMessage{Channel: "workflow", Event: SSEEventIdeaCreated})
}
