package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/notepad/pkg/clock"
	"tableflip.dev/notepad/pkg/note"
	"tableflip.dev/notepad/pkg/store"
)

func seqIDs() store.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("note-%d", n)
	}
}

func newService(t *testing.T, at time.Time) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	svc := New(note.SampleSeeds(at), "Georgia", clock.Fixed{At: at}, zap.New(core), store.WithIDFunc(seqIDs()))
	return svc, logs
}

func TestGreetingUsesFixedZone(t *testing.T) {
	// 02:30 UTC is 09:30 in UTC+7.
	at := time.Date(2025, time.June, 30, 2, 30, 0, 0, time.UTC)
	svc, _ := newService(t, at)
	ctx := context.Background()

	assert.Equal(t, "Selamat pagi, Georgia!", svc.Greeting(ctx))
	assert.Equal(t, clock.Morning, svc.Bucket(ctx))
	assert.Equal(t, "Selamat malam, Georgia!", svc.GreetingAt(at.Add(10*time.Hour)))
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2025, time.June, 30, 2, 5, 0, 0, time.UTC)
	svc, _ := newService(t, at)
	notes := svc.Notes(context.Background())
	require.Len(t, notes, 3)
	assert.Equal(t, "09:05 (UTC+7)", svc.Timestamp(notes[0]))
	assert.Equal(t, "08:05 (UTC+7)", svc.Timestamp(notes[1]))
	assert.Equal(t, "07:05 (UTC+7)", svc.Timestamp(notes[2]))
}

func TestTapsDriveStore(t *testing.T) {
	svc, logs := newService(t, time.Now())
	ctx := context.Background()

	assert.True(t, svc.OnNoteTap(ctx, "note-1"))
	assert.Equal(t, "note-1", svc.Snapshot(ctx).SelectedID)

	assert.True(t, svc.OnCompleteTap(ctx, "note-1"))
	assert.Empty(t, svc.Snapshot(ctx).SelectedID)
	assert.False(t, svc.OnNoteTap(ctx, "note-1"))
	assert.False(t, svc.OnCompleteTap(ctx, "nope"))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "note tap", entries[0].Message)
	assert.Equal(t, "active-selected", entries[0].ContextMap()["state"])
	assert.Equal(t, "completed", entries[1].ContextMap()["state"])
	assert.Equal(t, false, entries[3].ContextMap()["changed"])
	assert.NotContains(t, entries[3].ContextMap(), "state")
}

func TestNewDefaults(t *testing.T) {
	svc := New(nil, "", nil, nil)
	ctx := context.Background()
	assert.Empty(t, svc.Notes(ctx))
	assert.False(t, svc.OnNoteTap(ctx, "x"))
	assert.NotEmpty(t, svc.Greeting(ctx))

	bare := &Service{Store: store.New(nil)}
	assert.NotEmpty(t, bare.Greeting(ctx))
	assert.False(t, bare.OnCompleteTap(ctx, "x"))
}
