package relay_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/recharge-client/internal/relay"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

var errPublish = errors.New("nats down")

type message struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	messages []message
	flushed  int
	failAt   int
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.failAt > 0 && len(p.messages)+1 == p.failAt {
		return errPublish
	}

	p.messages = append(p.messages, message{subject: subject, data: data})

	return nil
}

func (p *fakePublisher) Flush() error {
	p.flushed++

	return nil
}

type fakeEvents struct {
	recharge.EventsClient

	pages [][]recharge.Object
	query recharge.Query
}

func (e *fakeEvents) Walk(ctx context.Context, query recharge.Query, fn func(page []recharge.Object) error) error {
	e.query = query

	for _, page := range e.pages {
		err := fn(page)
		if err != nil {
			return err
		}
	}

	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := relay.New(nil, &fakePublisher{})
	require.ErrorIs(t, err, relay.ErrEventsClientRequired)

	_, err = relay.New(&fakeEvents{}, nil)
	require.ErrorIs(t, err, relay.ErrPublisherRequired)
}

func TestRelay_Subject(t *testing.T) {
	t.Parallel()

	r, err := relay.New(&fakeEvents{}, &fakePublisher{}, relay.WithSubjectPrefix("shop.events."))
	require.NoError(t, err)

	tests := []struct {
		event recharge.Object
		want  string
	}{
		{recharge.Object{"object_type": "charge", "verb": "created"}, "shop.events.charge.created"},
		{recharge.Object{"object_type": "Subscription", "verb": "next charge.date"}, "shop.events.subscription.next_charge_date"},
		{recharge.Object{"verb": "deleted"}, "shop.events.unknown.deleted"},
		{recharge.Object{"object_type": "order", "verb": "*"}, "shop.events.order._"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Subject(tt.event))
	}
}

func TestRelay_Run(t *testing.T) {
	t.Parallel()

	events := &fakeEvents{pages: [][]recharge.Object{
		{
			{"id": float64(1), "object_type": "charge", "verb": "created"},
			{"id": float64(2), "object_type": "order", "verb": "processed"},
		},
		{
			{"id": float64(3), "object_type": "subscription", "verb": "cancelled"},
		},
	}}
	publisher := &fakePublisher{}

	r, err := relay.New(events, publisher)
	require.NoError(t, err)

	query := recharge.NewQuery().With("created_at_min", "2024-01-01")

	published, err := r.Run(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 3, published)
	assert.Equal(t, query, events.query)
	assert.Equal(t, 1, publisher.flushed)

	require.Len(t, publisher.messages, 3)
	assert.Equal(t, "recharge.events.charge.created", publisher.messages[0].subject)
	assert.Equal(t, "recharge.events.subscription.cancelled", publisher.messages[2].subject)

	var decoded map[string]interface{}

	require.NoError(t, json.Unmarshal(publisher.messages[1].data, &decoded))
	assert.Equal(t, "processed", decoded["verb"])
}

func TestRelay_RunStopsOnPublishFailure(t *testing.T) {
	t.Parallel()

	events := &fakeEvents{pages: [][]recharge.Object{{
		{"id": float64(1), "object_type": "charge", "verb": "created"},
		{"id": float64(2), "object_type": "charge", "verb": "updated"},
		{"id": float64(3), "object_type": "charge", "verb": "deleted"},
	}}}
	publisher := &fakePublisher{failAt: 2}

	r, err := relay.New(events, publisher)
	require.NoError(t, err)

	published, err := r.Run(context.Background(), nil)
	require.ErrorIs(t, err, errPublish)
	assert.Contains(t, err.Error(), "recharge.events.charge.updated")
	assert.Equal(t, 1, published)
	assert.Equal(t, 0, publisher.flushed)
}
