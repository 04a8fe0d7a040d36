package predictor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// workerState mirrors the {Running, Paused, Stopped} state machine
// from the design: pause() blocks until queues drain, resume()
// reopens the gate, stop() is terminal.
type workerState int32

const (
	stateRunning workerState = iota
	statePaused
	stateStopped
)

type request struct {
	encoding []float32
	future   *Future
}

// Worker is one batch-builder + inference pipeline driving a single
// Model instance. A Worker owns exactly one goroutine; Predict,
// Pause, Resume, UpdateWeights and Stop are all safe to call
// concurrently from other goroutines.
type Worker struct {
	model Model
	cfg   Config

	requests chan request
	pauseReq chan chan struct{}
	resumeCh chan struct{}
	stopCh   chan struct{}
	stopped  chan struct{}

	state   int32 // atomic workerState
	served  uint64
	wg      sync.WaitGroup
}

// NewWorker validates cfg and starts model's batch-builder/inference
// loop in a background goroutine.
func NewWorker(model Model, cfg Config) (*Worker, error) {
	if err := cfg.IsValid(); err != nil {
		return nil, err
	}
	w := &Worker{
		model:    model,
		cfg:      cfg,
		requests: make(chan request, cfg.queueCapacity()),
		pauseReq: make(chan chan struct{}),
		resumeCh: make(chan struct{}),
		stopCh:   make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	atomic.StoreInt32(&w.state, int32(stateRunning))
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Predict enqueues encoding for batched inference and returns a Future
// for its result. It returns ErrStopped if the worker has already been
// stopped.
func (w *Worker) Predict(encoding []float32) (*Future, error) {
	if workerState(atomic.LoadInt32(&w.state)) == stateStopped {
		return nil, ErrStopped
	}
	f := newFuture()
	select {
	case w.requests <- request{encoding: encoding, future: f}:
		return f, nil
	case <-w.stopped:
		return nil, ErrStopped
	}
}

// Pause blocks until the in-flight batch (if any) completes, then
// halts further batch-building until Resume is called.
func (w *Worker) Pause() {
	ack := make(chan struct{})
	select {
	case w.pauseReq <- ack:
		<-ack
	case <-w.stopped:
	}
}

// Resume releases a paused Worker.
func (w *Worker) Resume() {
	select {
	case w.resumeCh <- struct{}{}:
	case <-w.stopped:
	}
}

// UpdateWeights pauses the worker, copies parameters from master into
// the worker's model, and resumes — even if the copy fails, so a
// failed update never leaves the worker stuck paused.
func (w *Worker) UpdateWeights(master Model) error {
	w.Pause()
	defer w.Resume()
	return w.model.UpdateFrom(master)
}

// Stop ends the worker's loop. Any request still queued receives
// ErrStopped. Stop is idempotent.
func (w *Worker) Stop() {
	if !atomic.CompareAndSwapInt32(&w.state, int32(stateRunning), int32(stateStopped)) &&
		!atomic.CompareAndSwapInt32(&w.state, int32(statePaused), int32(stateStopped)) {
		<-w.stopped
		return
	}
	close(w.stopCh)
	w.wg.Wait()
}

func (w *Worker) run() {
	defer w.wg.Done()
	defer close(w.stopped)

	for {
		select {
		case <-w.stopCh:
			w.drain(ErrStopped)
			return
		case ack := <-w.pauseReq:
			atomic.StoreInt32(&w.state, int32(statePaused))
			w.drain(ErrStopped)
			ack <- struct{}{}
			if !w.waitResumeOrStop() {
				return
			}
			atomic.StoreInt32(&w.state, int32(stateRunning))
		case first := <-w.requests:
			w.buildAndServe(first)
		}
	}
}

// waitResumeOrStop blocks until Resume or Stop is called, reporting
// whether the worker should keep running.
func (w *Worker) waitResumeOrStop() bool {
	select {
	case <-w.resumeCh:
		return true
	case <-w.stopCh:
		w.drain(ErrStopped)
		return false
	}
}

// drain empties the request queue, failing every pending Future with
// err, per the "pause drains both queues" requirement.
func (w *Worker) drain(err error) {
	for {
		select {
		case r := <-w.requests:
			r.future.complete(Prediction{}, err)
		default:
			return
		}
	}
}

func (w *Worker) buildAndServe(first request) {
	batch := []request{first}

	drained := w.fillWithoutBlocking(&batch)
	if !drained && w.cfg.MaxWait > 0 {
		w.fillWithSpinWait(&batch)
	}

	encodings := make([][]float32, len(batch))
	for i, r := range batch {
		encodings[i] = r.encoding
	}

	preds, err := w.model.Predict(encodings)
	if err != nil {
		for _, r := range batch {
			r.future.complete(Prediction{}, err)
		}
		return
	}
	if len(preds) != len(batch) {
		for _, r := range batch {
			r.future.complete(Prediction{}, errors.Wrapf(ErrPredictorFailure,
				"got %d predictions for a batch of %d", len(preds), len(batch)))
		}
		return
	}
	for i, r := range batch {
		r.future.complete(preds[i], nil)
	}

	w.served++
	if w.cfg.GCEvery > 0 && w.served%uint64(w.cfg.GCEvery) == 0 {
		if releaser, ok := w.model.(interface{ ReleaseNative() }); ok {
			releaser.ReleaseNative()
		}
	}
}

// fillWithoutBlocking drains up to MaxBatchSize-1 additional requests
// already sitting in the queue, never blocking. It reports whether the
// batch reached capacity.
func (w *Worker) fillWithoutBlocking(batch *[]request) bool {
	for len(*batch) < w.cfg.MaxBatchSize {
		select {
		case r := <-w.requests:
			*batch = append(*batch, r)
		default:
			return false
		}
	}
	return true
}

// fillWithSpinWait spin-polls the request queue for up to MaxWait,
// accumulating arrivals, once fillWithoutBlocking found nothing more
// immediately available.
func (w *Worker) fillWithSpinWait(batch *[]request) {
	deadline := time.Now().Add(w.cfg.MaxWait)
	for len(*batch) < w.cfg.MaxBatchSize && time.Now().Before(deadline) {
		select {
		case r := <-w.requests:
			*batch = append(*batch, r)
		default:
		}
	}
}
