package events

import "sync"

// Subscriber is a channel receiving published events.
type Subscriber chan Event

// Bus is a fan-out pub/sub bus for catalog events. Publish never blocks:
// a subscriber that cannot keep up drops events.
type Bus struct {
	subscribers map[Subscriber]struct{}
	mutex       sync.RWMutex
	closed      bool
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Subscriber]struct{}),
	}
}

func (b *Bus) Subscribe() Subscriber {
	ch := make(Subscriber, 100)
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}
	return ch
}

func (b *Bus) Unsubscribe(ch Subscriber) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Publish broadcasts an event to all registered subscribers.
func (b *Bus) Publish(event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	for subscriber := range b.subscribers {
		select {
		case subscriber <- event:
		default:
			// subscriber buffer full, drop
		}
	}
}

// Close unsubscribes everyone; further Subscribe calls return closed
// channels.
func (b *Bus) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for subscriber := range b.subscribers {
		delete(b.subscribers, subscriber)
		close(subscriber)
	}
}
