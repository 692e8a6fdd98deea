package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

// Publisher is the subset of *nats.Conn the bridge needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSBridge forwards bus events to NATS subjects "<prefix>.<event type>".
type NATSBridge struct {
	pub    Publisher
	prefix string
	logger interfaces.Logger
}

// NewNATSBridge creates a bridge publishing through pub.
func NewNATSBridge(pub Publisher, prefix string, logger interfaces.Logger) *NATSBridge {
	return &NATSBridge{pub: pub, prefix: prefix, logger: logger}
}

// Connect dials NATS with the reconnect handlers used across our services.
// The returned cleanup drains the connection.
func Connect(url, clientName string, logger interfaces.Logger) (*nats.Conn, func(), error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", interfaces.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", interfaces.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("failed to drain NATS connection", interfaces.Error(err))
		}
	}
	return nc, cleanup, nil
}

// Attach subscribes the bridge to each event type on bus.
func (b *NATSBridge) Attach(bus interfaces.EventBus, eventTypes ...string) error {
	for _, t := range eventTypes {
		if err := bus.Subscribe(t, &HandlerFunc{Type: "nats-bridge", Fn: b.forward}); err != nil {
			return err
		}
	}
	return nil
}

// Subject returns the NATS subject for an event type.
func (b *NATSBridge) Subject(eventType string) string {
	if b.prefix == "" {
		return eventType
	}
	return b.prefix + "." + eventType
}

func (b *NATSBridge) forward(_ context.Context, event interfaces.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := b.Subject(event.EventType())
	if err := b.pub.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("published event",
		interfaces.String("subject", subject),
		interfaces.String("aggregate_id", event.AggregateID()))
	return nil
}
