package concurrency

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceManager(t *testing.T) {

	buffers := make([][]uint64, 4)
	for i := range buffers {
		buffers[i] = make([]uint64, 16)
	}

	m := NewResourceManager(buffers)

	var runs atomic.Int64

	for i := 0; i < 64; i++ {
		m.Run(func(buffer []uint64) error {
			for j := range buffer {
				buffer[j]++
			}
			runs.Add(1)
			return nil
		})
	}

	require.NoError(t, m.Wait())
	require.Equal(t, int64(64), runs.Load())

	// Work is spread over the pool: each buffer entry counts the tasks
	// that checked it out, summing to the number of tasks.
	total := uint64(0)
	for i := range buffers {
		total += buffers[i][0]
	}
	require.Equal(t, uint64(64), total)
}

func TestResourceManagerError(t *testing.T) {

	m := NewResourceManager([]int{0, 1})

	m.Run(func(int) error { return fmt.Errorf("task failed") })

	require.Error(t, m.Wait())
}
