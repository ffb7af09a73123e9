package events

import (
	"sync"
)

// Sink receives every emitted event synchronously, in commit order.
// Sinks observe the ledger; they must not influence it, so they return
// nothing.
type Sink interface {
	Record(event LedgerEvent)
}

// Router delivers ledger events to ordered sinks first, then to the
// asynchronous bus. The ledger emits through the router only after the
// corresponding state mutation committed; failed operations emit
// nothing.
type Router struct {
	bus   *EventBus
	mu    sync.RWMutex
	sinks []Sink
}

// NewRouter creates a Router around bus. A nil bus is allowed for
// hosts that only want sinks.
func NewRouter(bus *EventBus) *Router {
	return &Router{bus: bus}
}

// AddSink registers a synchronous sink. Sinks receive events in the
// order they were emitted.
func (r *Router) AddSink(sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
}

// Emit publishes an event to all sinks and subscribers
func (r *Router) Emit(event LedgerEvent) {
	r.mu.RLock()
	sinks := r.sinks
	r.mu.RUnlock()

	for _, sink := range sinks {
		sink.Record(event)
	}
	if r.bus != nil {
		r.bus.Publish(event)
	}
}

// Subscribe subscribes to the underlying bus. A sinks-only router has
// no bus to subscribe to and returns a nil channel.
func (r *Router) Subscribe() (SubscriberID, chan LedgerEvent) {
	if r.bus == nil {
		return "", nil
	}
	return r.bus.Subscribe()
}

// Recorder is a Sink collecting events in memory, in emission order.
// Tests use it to assert on the observation stream.
type Recorder struct {
	mu     sync.Mutex
	events []LedgerEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (rec *Recorder) Record(event LedgerEvent) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.events = append(rec.events, event)
}

// Events returns a snapshot of everything recorded so far
func (rec *Recorder) Events() []LedgerEvent {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	snapshot := make([]LedgerEvent, len(rec.events))
	copy(snapshot, rec.events)
	return snapshot
}

func (rec *Recorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.events = nil
}
