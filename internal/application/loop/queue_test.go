package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FlushRunsOnlyEarlierRequests(t *testing.T) {
	q := &Queue{}
	order := []int{}

	q.RequestFrame(func() {
		order = append(order, 1)
		q.RequestFrame(func() { order = append(order, 3) })
	})
	q.RequestFrame(func() { order = append(order, 2) })

	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, q.Len())

	assert.Equal(t, 1, q.Flush())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, q.Flush())
}

func TestNewTicker_Interval(t *testing.T) {
	assert.Equal(t, time.Second/60, NewTicker(60).Interval())
	assert.Equal(t, time.Second/30, NewTicker(30).Interval())
	assert.Equal(t, time.Second/60, NewTicker(0).Interval(), "default framerate")
}

func TestTicker_RunDrivesController(t *testing.T) {
	tk := NewTicker(1000)
	c := NewController(tk)
	calls := 0
	c.Install(func() error {
		calls++
		return nil
	})
	c.Arm()
	c.Kick()

	errDone := errors.New("done")
	err := tk.Run(context.Background(), func() error {
		if c.Frames() >= 5 {
			return errDone
		}
		return nil
	})

	require.ErrorIs(t, err, errDone)
	assert.Equal(t, 5, calls)
}

func TestTicker_RunStopsOnContext(t *testing.T) {
	tk := NewTicker(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, tk.Run(ctx, nil))
}
