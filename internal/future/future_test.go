package future

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFirstWins(t *testing.T) {
	f := New[int]()
	require.True(t, f.Resolve(1))
	assert.False(t, f.Resolve(2), "second resolve must be a no-op")
	assert.False(t, f.Fail(errors.New("late")), "fail after resolve must be a no-op")

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFailFirstWins(t *testing.T) {
	f := New[string]()
	boom := errors.New("boom")
	require.True(t, f.Fail(boom))
	assert.False(t, f.Resolve("late"))

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, f.Err(), boom)
}

func TestFailNilBecomesDismissed(t *testing.T) {
	f := New[int]()
	require.True(t, f.Fail(nil))
	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, ErrDismissed)
}

func TestAwaitBlocksUntilResolved(t *testing.T) {
	f := New[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Resolve(42)
	}()
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestAwaitHonorsContextWithoutConsuming(t *testing.T) {
	f := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, f.Settled(), "context cancellation must not settle the future")

	require.True(t, f.Resolve(7))
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestConcurrentResolversExactlyOneWins(t *testing.T) {
	for range 50 {
		f := New[int]()
		var wins sync.WaitGroup
		results := make(chan bool, 2)
		wins.Add(2)
		go func() {
			defer wins.Done()
			results <- f.Resolve(1)
		}()
		go func() {
			defer wins.Done()
			results <- f.Fail(ErrDismissed)
		}()
		wins.Wait()
		close(results)

		won := 0
		for ok := range results {
			if ok {
				won++
			}
		}
		assert.Equal(t, 1, won, "exactly one resolution must win")
	}
}

func TestDoneChannelCloses(t *testing.T) {
	f := New[int]()
	select {
	case <-f.Done():
		t.Fatal("done channel closed before resolution")
	default:
	}
	f.Resolve(1)
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("done channel not closed after resolution")
	}
}
