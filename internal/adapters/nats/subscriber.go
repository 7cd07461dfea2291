package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// PrefetchConsumer is the durable consumer that warms destination briefings.
const PrefetchConsumer = "briefing-prefetch"

// Subscriber implements ports.EventSubscriber using NATS JetStream.
type Subscriber struct {
	conn *nats.Conn
	js   nats.JetStreamContext
	subs []*nats.Subscription
}

// NewSubscriber creates a subscriber with its own NATS connection.
func NewSubscriber(url string) (*Subscriber, error) {
	conn, err := RawConn(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	if err := ensureStream(js); err != nil {
		return nil, err
	}
	return &Subscriber{conn: conn, js: js}, nil
}

// SubscribeFlightSearches delivers every search event to handler through the
// durable prefetch consumer. A handler error redelivers the message, up to
// three attempts; undecodable messages are terminated.
func (s *Subscriber) SubscribeFlightSearches(ctx context.Context, handler func(ctx context.Context, event *domain.FlightSearched) error) error {
	sub, err := s.js.Subscribe(SearchSubjects, func(msg *nats.Msg) {
		var event domain.FlightSearched
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			slog.Warn("drop malformed search event", "subject", msg.Subject, "error", err)
			_ = msg.Term()
			return
		}
		if err := handler(ctx, &event); err != nil {
			_ = msg.NakWithDelay(2 * time.Second)
			return
		}
		_ = msg.Ack()
	},
		nats.Durable(PrefetchConsumer),
		nats.ManualAck(),
		nats.MaxDeliver(3),
		nats.DeliverNew(),
	)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

// Close unsubscribes and drains.
func (s *Subscriber) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	_ = s.conn.Drain()
}
