package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublishEvent(t *testing.T) {
	fw := &fakeWriter{}
	p := NewProducerWithWriter(fw)

	event := map[string]interface{}{"type": "user_registered", "login": "alice"}
	require.NoError(t, p.PublishEvent(context.Background(), "user_events", "42", event))
	require.Len(t, fw.msgs, 1)
	require.Equal(t, "user_events", fw.msgs[0].Topic)
	require.Equal(t, []byte("42"), fw.msgs[0].Key)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &got))
	require.Equal(t, "user_registered", got["type"])
	require.Equal(t, "alice", got["login"])
}

func TestPublishEventMarshalError(t *testing.T) {
	fw := &fakeWriter{}
	p := NewProducerWithWriter(fw)

	require.Error(t, p.PublishEvent(context.Background(), "user_events", "1", func() {}))
	require.Empty(t, fw.msgs)
}
