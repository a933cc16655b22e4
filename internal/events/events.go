// Package events is a small in-process pub/sub used to deliver store
// change notifications to live observers (goal and suggestion lists).
// Delivery is asynchronous and best-effort: observers are idempotent
// readers that re-query the store, so a dropped notification only
// delays a refresh.
package events

import "sync"

// Event is one change notification.
type Event struct {
	Topic   string `json:"topic"`
	Kind    string `json:"kind"` // e.g. "goal", "suggestion", "summary"
	Date    string `json:"date"` // YYYY-MM-DD
	Payload any    `json:"payload,omitempty"`
}

type subscriber struct {
	topic string
	ch    chan Event
}

// Subject fans events out to subscribers by topic.
type Subject struct {
	mu     sync.RWMutex
	subs   map[int64]*subscriber
	nextID int64
}

// NewSubject creates an empty Subject.
func NewSubject() *Subject {
	return &Subject{subs: make(map[int64]*subscriber)}
}

// Subscribe registers for events on a topic. The returned cancel func
// must be called to release the subscription; the channel is closed by
// cancel.
func (s *Subject) Subscribe(topic string, buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	sub := &subscriber{topic: topic, ch: make(chan Event, buffer)}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = sub
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if cur, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(cur.ch)
		}
		s.mu.Unlock()
	}
	return sub.ch, cancel
}

// Publish delivers an event to every subscriber of its topic. Slow
// subscribers with full buffers are skipped rather than blocked.
func (s *Subject) Publish(evt Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		if sub.topic != evt.Topic {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
		}
	}
}
