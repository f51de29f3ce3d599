package payload

import (
	"context"
	"os"
	"testing"
	"time"

	"cardpanel/internal/card"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherStartStop(t *testing.T) {
	path := writePayload(t, Sample())

	w, err := NewWatcher(path, func(*card.Result) {})
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	require.True(t, w.IsWatching())

	w.Stop()
	require.False(t, w.IsWatching())

	// Stop is idempotent
	w.Stop()
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writePayload(t, Sample())

	results := make(chan *card.Result, 4)
	w, err := NewWatcher(path, func(r *card.Result) {
		results <- r
	})
	require.NoError(t, err)
	w.debounceDur = 50 * time.Millisecond

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	updated := &card.Result{Err: "card lookup failed"}
	data, err := Encode(updated)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	select {
	case got := <-results:
		require.Equal(t, "card lookup failed", got.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("expected reload after payload write")
	}
}

func TestWatcherKeepsLastPayloadOnBadWrite(t *testing.T) {
	path := writePayload(t, Sample())

	results := make(chan *card.Result, 4)
	w, err := NewWatcher(path, func(r *card.Result) {
		results <- r
	})
	require.NoError(t, err)
	w.debounceDur = 50 * time.Millisecond

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	// A load failure must not invoke the callback.
	select {
	case <-results:
		t.Fatal("unexpected reload for malformed payload")
	case <-time.After(500 * time.Millisecond):
	}
}
