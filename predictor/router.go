package predictor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Router fronts N Workers (one per accelerator or CPU partition),
// routing Predict calls round-robin via an atomic counter and
// broadcasting weight updates to every worker.
type Router struct {
	workers []*Worker
	next    uint64

	heartbeatStop chan struct{}
	samples       uint64 // atomic, reset each heartbeat tick
}

// NewRouter starts a router over workers. workers must be non-empty.
func NewRouter(workers []*Worker) (*Router, error) {
	if len(workers) == 0 {
		return nil, errors.New("predictor: router requires at least one worker")
	}
	return &Router{workers: workers}, nil
}

// Predict routes encoding to the next worker in round-robin order.
func (r *Router) Predict(encoding []float32) (*Future, error) {
	i := atomic.AddUint64(&r.next, 1) % uint64(len(r.workers))
	f, err := r.workers[i].Predict(encoding)
	if err == nil {
		atomic.AddUint64(&r.samples, 1)
	}
	return f, err
}

// UpdateWeights broadcasts a weight update to every worker, collecting
// every worker's error (if any) into a single aggregate error.
func (r *Router) UpdateWeights(masters []Model) error {
	if len(masters) != len(r.workers) {
		return errors.New("predictor: one master model required per worker")
	}
	var errs error
	for i, w := range r.workers {
		if err := w.UpdateWeights(masters[i]); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// Stop stops every worker and the heartbeat loop, draining in
// parallel and waiting for at most ctx's remaining lifetime. Workers
// still draining when ctx is done are left to finish in the
// background and are reported as a timeout error.
func (r *Router) Stop(ctx context.Context) error {
	r.StopHeartbeat()

	done := make(chan int, len(r.workers))
	for i, w := range r.workers {
		go func(i int, w *Worker) {
			w.Stop()
			done <- i
		}(i, w)
	}

	remaining := make(map[int]bool, len(r.workers))
	for i := range r.workers {
		remaining[i] = true
	}
	for len(remaining) > 0 {
		select {
		case i := <-done:
			delete(remaining, i)
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "predictor: %d worker(s) still draining", len(remaining))
		}
	}
	return nil
}

// StartHeartbeat reports aggregate samples/sec across all workers
// every interval, via report, until StopHeartbeat is called.
func (r *Router) StartHeartbeat(interval time.Duration, report func(samplesPerSec float64)) {
	r.heartbeatStop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n := atomic.SwapUint64(&r.samples, 0)
				report(float64(n) / interval.Seconds())
			case <-r.heartbeatStop:
				return
			}
		}
	}()
}

// StopHeartbeat stops a running heartbeat loop. It is a no-op if none
// is running.
func (r *Router) StopHeartbeat() {
	if r.heartbeatStop != nil {
		close(r.heartbeatStop)
		r.heartbeatStop = nil
	}
}
