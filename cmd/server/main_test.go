package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gifthub/gifthub/internal/events"
)

type closeRecorder struct {
	closed bool
}

func (w *closeRecorder) WriteMessages(_ context.Context, _ ...kafka.Message) error { return nil }

func (w *closeRecorder) Close() error {
	w.closed = true
	return nil
}

func TestShutdownClosesResources(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	w := &closeRecorder{}
	producer := events.NewProducerWithWriter(w)

	srv := &http.Server{Addr: ":0", Handler: http.NewServeMux()}

	shutdown(srv, db, producer)

	require.True(t, w.closed, "kafka writer not closed")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Error(t, sqlDB.Ping(), "db connection still open")
}

func TestShutdownWithoutProducer(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	srv := &http.Server{Addr: ":0", Handler: http.NewServeMux()}

	shutdown(srv, db, nil)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Error(t, sqlDB.Ping())
}
