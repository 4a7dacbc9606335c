package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishSubscribe(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	var got []Event
	dispatcher.Subscribe(EventStudentEnrolled, func(ctx context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	dispatcher.Subscribe(EventEnrollmentCancelled, func(ctx context.Context, event Event) error {
		t.Fatal("handler for different event type must not fire")
		return nil
	})

	event := Event{ID: "e-1", Type: EventStudentEnrolled, StudentID: "s-1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e-1" {
		t.Fatalf("unexpected delivery: %+v", got)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(EventStudentRegistered, func(ctx context.Context, event Event) error {
		return errors.New("first handler failed")
	})
	dispatcher.Subscribe(EventStudentRegistered, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventStudentRegistered}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !secondCalled {
		t.Fatalf("second handler must run despite first handler error")
	}
}
