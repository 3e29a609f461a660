package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// WorkerPool runs tile tasks on a fixed number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run distributes the tiles over the workers and blocks until every worker
// has finished. It returns the first error reported by a task; remaining
// queued tasks are still drained so Run always joins all workers.
func (wp *WorkerPool) Run(tiles []*Tile, render func(worker int, task TileTask) error) error {
	taskQueue := make(chan TileTask, len(tiles))
	for i, tile := range tiles {
		taskQueue <- TileTask{Tile: tile, TaskID: i}
	}
	close(taskQueue)

	numWorkers := min(wp.numWorkers, max(1, len(tiles)))

	var g errgroup.Group
	for id := 0; id < numWorkers; id++ {
		id := id
		g.Go(func() error {
			var firstErr error
			for task := range taskQueue {
				if firstErr != nil {
					continue
				}
				firstErr = render(id, task)
			}
			return firstErr
		})
	}
	return g.Wait()
}
