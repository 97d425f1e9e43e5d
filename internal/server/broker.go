package server

import (
	"encoding/json"
	"sync"

	"github.com/jason-s-yu/monopoly/internal/game"
)

// Broker fans game events out to websocket subscribers.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan []byte]struct{})}
}

// Subscribe returns a channel that receives JSON-encoded game events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends ev to every subscriber. It never blocks; slow subscribers miss events.
func (b *Broker) Publish(ev game.GameEvent) {
	data, _ := json.Marshal(ev)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
		}
	}
	b.mu.RUnlock()
}
