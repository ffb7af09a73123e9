package events

import (
	"testing"
	"time"

	"github.com/holiman/uint256"

	"ftl/types"
)

func testAddress(b byte) types.Address {
	var addr types.Address
	addr[0] = b
	return addr
}

func TestEventBus(t *testing.T) {
	eventBus := NewEventBus(0)

	id, eventChan := eventBus.Subscribe()

	// Verify subscription count
	if count := eventBus.GetTotalSubscriptions(); count != 1 {
		t.Errorf("Expected 1 subscriber, got %d", count)
	}

	event := NewTransfer(testAddress(1), testAddress(2), uint256.NewInt(100))

	// Publish event in goroutine to avoid blocking
	go func() {
		eventBus.Publish(event)
	}()

	// Wait for event
	select {
	case receivedEvent := <-eventChan:
		if receivedEvent.Type() != EventTransfer {
			t.Errorf("Expected Transfer, got %s", receivedEvent.Type())
		}
		if receivedEvent.Value().Uint64() != 100 {
			t.Errorf("Expected value 100, got %s", receivedEvent.Value())
		}
	case <-time.After(1 * time.Second):
		t.Error("Timeout waiting for event")
	}

	// Test unsubscribe
	eventBus.Unsubscribe(id)

	if count := eventBus.GetTotalSubscriptions(); count != 0 {
		t.Errorf("Expected 0 subscribers after unsubscribe, got %d", count)
	}
}

func TestLedgerEvents(t *testing.T) {
	from := testAddress(1)
	to := testAddress(2)

	transfer := NewTransfer(from, to, uint256.NewInt(100))
	if transfer.Type() != EventTransfer {
		t.Errorf("Expected Transfer, got %s", transfer.Type())
	}
	if transfer.From() == nil || *transfer.From() != from {
		t.Errorf("Expected from %s, got %v", from, transfer.From())
	}
	if transfer.To() == nil || *transfer.To() != to {
		t.Errorf("Expected to %s, got %v", to, transfer.To())
	}

	mint := NewMint(to, uint256.NewInt(10000))
	if mint.From() != nil {
		t.Errorf("Expected mint event without source, got %v", mint.From())
	}
	if mint.To() == nil || *mint.To() != to {
		t.Errorf("Expected mint recipient %s, got %v", to, mint.To())
	}

	approval := NewApproval(from, to, uint256.NewInt(50))
	if approval.Type() != EventApproval {
		t.Errorf("Expected Approval, got %s", approval.Type())
	}
	if approval.Owner() != from || approval.Spender() != to {
		t.Errorf("Unexpected approval parties: %s -> %s", approval.Owner(), approval.Spender())
	}
}

func TestRouterSinkOrdering(t *testing.T) {
	router := NewRouter(nil)
	recorder := NewRecorder()
	router.AddSink(recorder)

	first := NewMint(testAddress(1), uint256.NewInt(10000))
	second := NewTransfer(testAddress(1), testAddress(2), uint256.NewInt(100))
	third := NewApproval(testAddress(1), testAddress(3), uint256.NewInt(50))

	router.Emit(first)
	router.Emit(second)
	router.Emit(third)

	recorded := recorder.Events()
	if len(recorded) != 3 {
		t.Fatalf("Expected 3 recorded events, got %d", len(recorded))
	}
	if recorded[0] != LedgerEvent(first) || recorded[1] != LedgerEvent(second) || recorded[2] != LedgerEvent(third) {
		t.Error("Events recorded out of emission order")
	}
}

func TestSinksOnlyRouterSubscribe(t *testing.T) {
	router := NewRouter(nil)
	recorder := NewRecorder()
	router.AddSink(recorder)

	id, ch := router.Subscribe()
	if id != "" || ch != nil {
		t.Errorf("Expected no subscription on a sinks-only router, got id %q", id)
	}

	// Sinks still receive emitted events
	router.Emit(NewApproval(testAddress(1), testAddress(2), uint256.NewInt(10)))
	if len(recorder.Events()) != 1 {
		t.Errorf("Expected 1 recorded event, got %d", len(recorder.Events()))
	}
}

func TestMultipleSubscribers(t *testing.T) {
	eventBus := NewEventBus(0)

	_, eventChan1 := eventBus.Subscribe()
	_, eventChan2 := eventBus.Subscribe()

	if count := eventBus.GetTotalSubscriptions(); count != 2 {
		t.Errorf("Expected 2 subscribers, got %d", count)
	}

	event := NewApproval(testAddress(1), testAddress(2), uint256.NewInt(25))
	go eventBus.Publish(event)

	for i, ch := range []chan LedgerEvent{eventChan1, eventChan2} {
		select {
		case receivedEvent := <-ch:
			if receivedEvent.Type() != EventApproval {
				t.Errorf("Subscriber %d: expected Approval, got %s", i, receivedEvent.Type())
			}
		case <-time.After(1 * time.Second):
			t.Errorf("Subscriber %d: timeout waiting for event", i)
		}
	}
}
