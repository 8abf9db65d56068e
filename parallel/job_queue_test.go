package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueRunsAllJobs(t *testing.T) {
	queue := CreateJobQueue(4, 3)
	defer queue.Close()

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		require.NoError(t, queue.Add(func() error {
			count.Add(1)
			return nil
		}))
	}
	require.NoError(t, queue.Wait())
	assert.EqualValues(t, 100, count.Load())
}

func TestJobQueueCollectsErrors(t *testing.T) {
	queue := CreateJobQueue(1, 2)
	defer queue.Close()

	first := errors.New("first")
	second := errors.New("second")
	require.NoError(t, queue.Add(func() error { return first }))
	require.NoError(t, queue.Add(func() error { return nil }))
	require.NoError(t, queue.Add(func() error { return second }))

	err := queue.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestJobQueueRejectsNil(t *testing.T) {
	queue := CreateJobQueue(1, 0)
	defer queue.Close()

	assert.Error(t, queue.Add(nil))
	assert.NoError(t, queue.Wait())
}
