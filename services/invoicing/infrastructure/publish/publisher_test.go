package publish

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	domainevents "github.com/ghuser/invoicing/services/invoicing/domain/events"
)

type fakeBus struct {
	topics   []string
	payloads []*message.Message
	err      error
}

func (b *fakeBus) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	if b.err != nil {
		return b.err
	}
	for _, msg := range msgs {
		b.topics = append(b.topics, topic)
		b.payloads = append(b.payloads, msg)
	}
	return nil
}

func TestDomainEventPublisher_PublishAll(t *testing.T) {
	t.Run("publishes each event on its own topic", func(t *testing.T) {
		bus := &fakeBus{}
		pub := NewDomainEventPublisher(bus)

		issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		dueAt := issuedAt.AddDate(0, 0, 30)
		evts := []domainevents.DomainEvent{
			domainevents.NewInvoiceIssued("INV-1", issuedAt, dueAt),
			domainevents.NewInvoicePaid("INV-1", issuedAt.Add(time.Hour)),
		}

		if err := pub.PublishAll(context.Background(), evts); err != nil {
			t.Fatalf("PublishAll: %v", err)
		}

		if len(bus.topics) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(bus.topics))
		}
		if bus.topics[0] != domainevents.TopicInvoiceIssued || bus.topics[1] != domainevents.TopicInvoicePaid {
			t.Fatalf("unexpected topics: %v", bus.topics)
		}

		var payload map[string]any
		if err := json.Unmarshal(bus.payloads[0].Payload, &payload); err != nil {
			t.Fatalf("payload is not valid JSON: %v", err)
		}
		if payload["invoice_id"] != "INV-1" {
			t.Fatalf("expected invoice_id INV-1, got %v", payload["invoice_id"])
		}
		if bus.payloads[0].Metadata.Get("aggregate_id") != "INV-1" {
			t.Fatal("aggregate_id metadata not set")
		}
		if bus.payloads[0].Metadata.Get("occurred_at") == "" {
			t.Fatal("occurred_at metadata not set")
		}
	})

	t.Run("empty batch publishes nothing", func(t *testing.T) {
		bus := &fakeBus{}
		pub := NewDomainEventPublisher(bus)

		if err := pub.PublishAll(context.Background(), nil); err != nil {
			t.Fatalf("PublishAll: %v", err)
		}
		if len(bus.topics) != 0 {
			t.Fatalf("expected no messages, got %d", len(bus.topics))
		}
	})

	t.Run("bus failure surfaces with the topic", func(t *testing.T) {
		bus := &fakeBus{err: errors.New("connection refused")}
		pub := NewDomainEventPublisher(bus)

		evts := []domainevents.DomainEvent{
			domainevents.NewInvoiceVoided("INV-1", time.Now().UTC()),
		}
		err := pub.PublishAll(context.Background(), evts)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, bus.err) {
			t.Fatalf("expected wrapped bus error, got %v", err)
		}
	})
}
