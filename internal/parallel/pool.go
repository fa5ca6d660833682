package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool runs work items on a fixed number of goroutines that live for
// the rest of the process.
//
// Every worker owns a queue. A worker whose queue is empty steals from the
// others before blocking, so uneven items still spread across the pool.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	queues []chan func()
}

// NewWorkerPool starts a pool of n workers. n <= 0 means GOMAXPROCS.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(8, n*4)

	p := &WorkerPool{queues: make([]chan func(), n)}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	for i := range n {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(id int) {
	own := p.queues[id]
	for {
		select {
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}
		(<-own)()
	}
}

// steal takes one item from any queue other than id's.
func (p *WorkerPool) steal(id int) func() {
	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case fn := <-q:
			return fn
		default:
		}
	}
	return nil
}

// Run executes every item and returns when all have finished. Items are
// dealt round-robin to the worker queues.
func (p *WorkerPool) Run(work []func()) {
	if len(work) == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		p.queues[i%len(p.queues)] <- func() {
			defer wg.Done()
			fn()
		}
	}
	wg.Wait()
}

// Bands splits rows [0, n) into contiguous bands and runs fn for each band
// on the pool. size is the band height; size <= 0 picks a height that
// gives every worker about four bands.
func (p *WorkerPool) Bands(n, size int, fn func(y0, y1 int)) {
	if n <= 0 {
		return
	}
	if size <= 0 {
		size = max(1, (n+p.Workers()*4-1)/(p.Workers()*4))
	}
	work := make([]func(), 0, (n+size-1)/size)
	for y0 := 0; y0 < n; y0 += size {
		y1 := min(y0+size, n)
		work = append(work, func() { fn(y0, y1) })
	}
	p.Run(work)
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return len(p.queues)
}
