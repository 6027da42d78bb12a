package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp.Publishing
	exchanges []string
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchanges = append(f.exchanges, exchange)
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "tattoo.events"}

	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	event := MessageCreated{MessageID: 7, UserID: 1, SalonID: 2, IsFromUser: true, Timestamp: ts}
	require.NoError(t, p.Publish(context.Background(), RoutingMessageCreated, event))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "tattoo.events", ch.exchanges[0])
	assert.Equal(t, RoutingMessageCreated, ch.keys[0])
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	var got MessageCreated
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
	assert.Equal(t, event.MessageID, got.MessageID)
	assert.True(t, ts.Equal(got.Timestamp))
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &RabbitPublisher{ch: ch, exchange: "tattoo.events"}

	err := p.Publish(context.Background(), RoutingSubscriptionCreated, SubscriptionCreated{SubscriptionID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestRabbitPublisher_UnmarshalablePayload(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "tattoo.events"}

	err := p.Publish(context.Background(), "bad", make(chan int))
	assert.Error(t, err)
	assert.Empty(t, ch.published)
}

func TestRabbitPublisher_CancelledContext(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "tattoo.events"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, RoutingMessageCreated, MessageCreated{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ch.published)
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "tattoo.events"}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestRetry(t *testing.T) {
	errDial := errors.New("connection refused")

	tests := []struct {
		name       string
		attempts   int
		failures   int
		wantErr    bool
		wantCalls  int
		wantSleeps int
	}{
		{name: "первая попытка успешна", attempts: 3, failures: 0, wantCalls: 1, wantSleeps: 0},
		{name: "успех после сбоев", attempts: 3, failures: 2, wantCalls: 3, wantSleeps: 2},
		{name: "все попытки неудачны", attempts: 3, failures: 5, wantErr: true, wantCalls: 3, wantSleeps: 2},
		{name: "одна попытка без паузы", attempts: 1, failures: 5, wantErr: true, wantCalls: 1, wantSleeps: 0},
		{name: "нулевое число попыток", attempts: 0, failures: 5, wantErr: true, wantCalls: 1, wantSleeps: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var sleeps []time.Duration
			dial := func() (int, error) {
				calls++
				if calls <= tt.failures {
					return 0, errDial
				}
				return 42, nil
			}

			got, err := retry(dial, tt.attempts, time.Second, func(d time.Duration) { sleeps = append(sleeps, d) })

			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, sleeps, tt.wantSleeps)
			for _, d := range sleeps {
				assert.Equal(t, time.Second, d)
			}
			if tt.wantErr {
				assert.ErrorIs(t, err, errDial)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 42, got)
		})
	}
}

func TestNoop(t *testing.T) {
	var p Noop
	assert.NoError(t, p.Publish(context.Background(), RoutingMessageCreated, MessageCreated{}))
	assert.NoError(t, p.Close())
}
