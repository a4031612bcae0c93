package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"vboxmanager/pkg/logging"
)

// Handler processes an event synchronously on the publishing goroutine.
type Handler func(Event)

// Filter determines if an event should be delivered
type Filter func(Event) bool

// Subscription represents a subscription to events
type Subscription struct {
	ID      string
	Filter  Filter
	Handler Handler
	Closed  bool
	mu      sync.RWMutex
}

// Close stops delivery to the subscription
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
}

// IsClosed returns whether the subscription is closed
func (s *Subscription) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Closed
}

// Bus provides publish/subscribe for VM service events.
type Bus interface {
	// Publish delivers an event to every matching subscriber. Handlers run
	// in subscription order before Publish returns.
	Publish(event Event)

	// Subscribe creates a subscription with a handler function
	Subscribe(filter Filter, handler Handler) *Subscription

	// Unsubscribe removes a subscription
	Unsubscribe(subscription *Subscription)

	// Close closes the bus and all subscriptions
	Close()
}

// Metrics tracks bus activity
type Metrics struct {
	TotalSubscriptions  int
	ActiveSubscriptions int
	EventsPublished     int64
	EventsDelivered     int64
	LastEventTime       time.Time
	EventsByType        map[Type]int64
}

// DefaultBus is the default implementation of Bus
type DefaultBus struct {
	subscriptions []*Subscription
	metrics       Metrics
	mu            sync.RWMutex
	closed        bool
}

// NewBus creates a new event bus
func NewBus() *DefaultBus {
	return &DefaultBus{
		metrics: Metrics{EventsByType: make(map[Type]int64)},
	}
}

// Publish publishes an event to all subscribers
func (b *DefaultBus) Publish(event Event) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]*Subscription, len(b.subscriptions))
	copy(subs, b.subscriptions)
	b.mu.RUnlock()

	delivered := 0
	for _, sub := range subs {
		if sub.IsClosed() {
			continue
		}
		if sub.Filter != nil && !sub.Filter(event) {
			continue
		}
		b.invoke(sub.Handler, event)
		delivered++
	}

	b.mu.Lock()
	b.metrics.EventsPublished++
	b.metrics.EventsByType[event.Type]++
	b.metrics.LastEventTime = event.Timestamp
	b.metrics.EventsDelivered += int64(delivered)
	b.mu.Unlock()
}

func (b *DefaultBus) invoke(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("EventBus", "Handler for %s panicked: %v", event.Type, r)
		}
	}()
	handler(event)
}

func (b *DefaultBus) add(sub *Subscription) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	sub.ID = uuid.NewString()
	b.subscriptions = append(b.subscriptions, sub)
	b.metrics.TotalSubscriptions++
	b.metrics.ActiveSubscriptions++
	return sub
}

// Subscribe creates a subscription with a handler function
func (b *DefaultBus) Subscribe(filter Filter, handler Handler) *Subscription {
	return b.add(&Subscription{Filter: filter, Handler: handler})
}

// Unsubscribe removes a subscription
func (b *DefaultBus) Unsubscribe(subscription *Subscription) {
	if subscription == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscriptions {
		if sub == subscription {
			sub.Close()
			b.subscriptions = append(b.subscriptions[:i], b.subscriptions[i+1:]...)
			b.metrics.ActiveSubscriptions--
			return
		}
	}
}

// Metrics returns a copy of the bus counters
func (b *DefaultBus) Metrics() Metrics {
	b.mu.RLock()
	defer b.mu.RUnlock()

	metrics := b.metrics
	metrics.EventsByType = make(map[Type]int64, len(b.metrics.EventsByType))
	for k, v := range b.metrics.EventsByType {
		metrics.EventsByType[k] = v
	}
	return metrics
}

// Close closes the bus and all subscriptions
func (b *DefaultBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for _, sub := range b.subscriptions {
		sub.Close()
	}
	b.subscriptions = nil
	b.metrics.ActiveSubscriptions = 0
}

// FilterByType creates a filter that matches events of specific types
func FilterByType(types ...Type) Filter {
	set := make(map[Type]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return func(event Event) bool {
		return set[event.Type]
	}
}

// FilterByMachine creates a filter that matches events about one machine
func FilterByMachine(id uuid.UUID) Filter {
	return func(event Event) bool {
		return event.MachineID == id
	}
}

// CombineFilters combines multiple filters with AND logic
func CombineFilters(filters ...Filter) Filter {
	return func(event Event) bool {
		for _, filter := range filters {
			if !filter(event) {
				return false
			}
		}
		return true
	}
}
