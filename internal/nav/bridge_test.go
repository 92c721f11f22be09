package nav

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navkit/internal/future"
)

func TestBridgeCompleteResolvesAndHides(t *testing.T) {
	b := &Bridge[bool]{}
	transitions := []bool{}
	b.SetOnChange(func() { transitions = append(transitions, b.Visible()) })

	f := b.Arm()
	assert.True(t, b.Visible())

	require.True(t, b.Complete(true))
	assert.False(t, b.Visible())

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, []bool{true, false}, transitions, "visible must transition true then false exactly once")
}

func TestBridgeDismissResolvesCancellation(t *testing.T) {
	b := &Bridge[bool]{}
	f := b.Arm()

	require.True(t, b.Dismiss())
	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, future.ErrDismissed)
	assert.False(t, b.Visible())
}

func TestBridgeStaleCompleteIsNoOp(t *testing.T) {
	b := &Bridge[bool]{}
	f := b.Arm()
	require.True(t, b.Dismiss())

	// A button press on a now-stale UI reference after forced dismissal.
	assert.False(t, b.Complete(true))
	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, future.ErrDismissed, "outcome must stay the original cancellation")
}

func TestBridgeDismissWhenIdleIsNoOp(t *testing.T) {
	b := &Bridge[bool]{}
	assert.False(t, b.Dismiss())
	assert.False(t, b.Complete(true))
}

func TestBridgeArmWhileArmedReturnsExistingCell(t *testing.T) {
	b := &Bridge[int]{}
	first := b.Arm()
	second := b.Arm()
	assert.Same(t, first, second, "double arm must not orphan the outstanding await")
}

func TestBridgeCompleteDismissRaceResolvesOnce(t *testing.T) {
	for range 100 {
		b := &Bridge[bool]{}
		f := b.Arm()

		var wg sync.WaitGroup
		results := make(chan bool, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			results <- b.Complete(true)
		}()
		go func() {
			defer wg.Done()
			results <- b.Dismiss()
		}()
		wg.Wait()
		close(results)

		won := 0
		for ok := range results {
			if ok {
				won++
			}
		}
		assert.Equal(t, 1, won, "exactly one of complete/dismiss must win")
		require.True(t, f.Settled())
		assert.False(t, b.Visible())
	}
}
