package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/cpu"
)

// tileTask pairs a tile with the RNG seed its worker must use
type tileTask struct {
	tile Tile
	seed int64
}

// runTilePool fans the tasks out to a fixed set of workers. Each worker owns
// its own RNG (seeded per task) and writes only to its task's pixel region,
// so no synchronization on the frame buffer is needed. Cancellation stops
// the feed; tiles already picked up run to completion.
func runTilePool(ctx context.Context, workers int, tasks []tileTask, render func(tileTask)) error {
	taskCh := make(chan tileTask)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				render(task)
			}
		}()
	}

	var err error
feed:
	for _, task := range tasks {
		if ctx.Err() != nil {
			err = ctx.Err()
			break
		}
		select {
		case taskCh <- task:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(taskCh)
	wg.Wait()
	return err
}

// defaultWorkers picks a worker count matching the logical CPU count
func defaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
