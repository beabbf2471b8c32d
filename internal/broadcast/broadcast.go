package broadcast

import (
	"careercatch/internal/events"
	"sync"
)

type EventMessage struct {
	Event string
	Msg   string
}

// Broadcaster fans session events out to SSE clients. Slow clients are
// skipped, never blocked on.
type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan EventMessage]bool
}

func NewBroadcaster(bus *events.Bus) *Broadcaster {
	b := &Broadcaster{
		Clients: make(map[chan EventMessage]bool),
	}
	go func() {
		for ev := range bus.PhaseChanges {
			b.Broadcast("phaseChange", ev.SessionID+":"+ev.Phase)
		}
	}()
	return b
}

func (b *Broadcaster) Subscribe() chan EventMessage {
	ch := make(chan EventMessage, 10)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan EventMessage) {
	b.Mu.Lock()
	delete(b.Clients, ch)
	b.Mu.Unlock()
	close(ch)
}

func (b *Broadcaster) Broadcast(event string, message string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- EventMessage{Event: event, Msg: message}:
		default:
			// skip clients with full data channels
		}
	}
}
