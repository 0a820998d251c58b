package renderer

import (
	"runtime"
	"sync"
)

// WorkerPool distributes framebuffer rows across a fixed set of workers.
// Rows are independent: each reads only immutable scene data and writes only
// its own framebuffer cells, so no synchronization beyond the task channel
// is needed.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with the given number of workers.
// A count <= 0 means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders rows [0, rowCount) by calling renderRow from the pool's
// workers and blocks until all rows are done. With a single worker the rows
// run in order on one goroutine.
func (wp *WorkerPool) Run(rowCount int, renderRow func(row int)) {
	if wp.numWorkers == 1 {
		for row := 0; row < rowCount; row++ {
			renderRow(row)
		}
		return
	}

	tasks := make(chan int, rowCount)
	for row := 0; row < rowCount; row++ {
		tasks <- row
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range tasks {
				renderRow(row)
			}
		}()
	}
	wg.Wait()
}
