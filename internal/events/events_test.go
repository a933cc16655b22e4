package events

import "testing"

func TestPublishReachesMatchingTopicOnly(t *testing.T) {
	s := NewSubject()

	a, cancelA := s.Subscribe("user-1/2026-08-31", 4)
	defer cancelA()
	b, cancelB := s.Subscribe("user-1/2026-09-01", 4)
	defer cancelB()

	s.Publish(Event{Topic: "user-1/2026-08-31", Kind: "goal", Date: "2026-08-31"})

	select {
	case evt := <-a:
		if evt.Kind != "goal" {
			t.Errorf("event = %+v", evt)
		}
	default:
		t.Fatal("subscriber on matching topic got nothing")
	}
	select {
	case evt := <-b:
		t.Errorf("wrong-topic subscriber got %+v", evt)
	default:
	}
}

func TestPublishSkipsFullBuffers(t *testing.T) {
	s := NewSubject()
	ch, cancel := s.Subscribe("t", 1)
	defer cancel()

	s.Publish(Event{Topic: "t", Kind: "goal"})
	s.Publish(Event{Topic: "t", Kind: "summary"}) // dropped, buffer full

	if evt := <-ch; evt.Kind != "goal" {
		t.Errorf("first event = %+v", evt)
	}
	select {
	case evt := <-ch:
		t.Errorf("dropped event delivered: %+v", evt)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	s := NewSubject()
	ch, cancel := s.Subscribe("t", 1)
	cancel()

	if _, ok := <-ch; ok {
		t.Error("channel still open after cancel")
	}
	// Publishing after cancel must not panic.
	s.Publish(Event{Topic: "t"})
	// Double cancel is safe.
	cancel()
}
