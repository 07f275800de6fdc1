// Package relay forwards the store event log to NATS.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "recharge.events"

// Static errors for err113 compliance.
var (
	ErrEventsClientRequired = errors.New("events client is required")
	ErrPublisherRequired    = errors.New("publisher is required")
)

// Publisher sends a message to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Flusher is implemented by publishers that buffer, such as *nats.Conn.
type Flusher interface {
	Flush() error
}

// Relay walks /events and publishes each event to
// "<prefix>.<object_type>.<verb>".
type Relay struct {
	events    recharge.EventsClient
	publisher Publisher
	prefix    string
	logger    recharge.Logger
}

// Option configures a Relay.
type Option func(*Relay)

// WithSubjectPrefix sets the subject prefix.
func WithSubjectPrefix(prefix string) Option {
	return func(r *Relay) {
		r.prefix = strings.Trim(prefix, ".")
	}
}

// WithLogger sets the logger.
func WithLogger(logger recharge.Logger) Option {
	return func(r *Relay) {
		r.logger = logger
	}
}

// New creates a relay reading from events and writing to publisher.
func New(events recharge.EventsClient, publisher Publisher, opts ...Option) (*Relay, error) {
	if events == nil {
		return nil, ErrEventsClientRequired
	}

	if publisher == nil {
		return nil, ErrPublisherRequired
	}

	relay := &Relay{
		events:    events,
		publisher: publisher,
		prefix:    DefaultSubjectPrefix,
		logger:    recharge.NoopLogger{},
	}

	for _, opt := range opts {
		opt(relay)
	}

	if relay.prefix == "" {
		relay.prefix = DefaultSubjectPrefix
	}

	return relay, nil
}

// Subject returns the subject an event is published to.
func (r *Relay) Subject(event recharge.Object) string {
	return r.prefix + "." + subjectToken(event.Field("object_type")) + "." + subjectToken(event.Field("verb"))
}

// Run publishes every event matching query and returns how many were sent.
// It stops at the first publish failure.
func (r *Relay) Run(ctx context.Context, query recharge.Query) (int, error) {
	published := 0

	err := r.events.Walk(ctx, query, func(page []recharge.Object) error {
		for _, event := range page {
			err := r.publish(event)
			if err != nil {
				return err
			}

			published++
		}

		r.logger.Debug("Relayed events page", map[string]interface{}{
			"page_size": len(page),
			"published": published,
		})

		return nil
	})
	if err != nil {
		return published, fmt.Errorf("relaying events: %w", err)
	}

	if flusher, ok := r.publisher.(Flusher); ok {
		err = flusher.Flush()
		if err != nil {
			return published, fmt.Errorf("flushing publisher: %w", err)
		}
	}

	r.logger.Info("Relayed events", map[string]interface{}{
		"published": published,
		"prefix":    r.prefix,
	})

	return published, nil
}

func (r *Relay) publish(event recharge.Object) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event %s: %w", event.Field("id"), err)
	}

	subject := r.Subject(event)

	err = r.publisher.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing event %s to %s: %w", event.Field("id"), subject, err)
	}

	return nil
}

// subjectToken turns a field into a single NATS subject token.
func subjectToken(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "unknown"
	}

	return strings.Map(func(char rune) rune {
		switch char {
		case '.', '*', '>', ' ', '\t':
			return '_'
		default:
			return char
		}
	}, value)
}
