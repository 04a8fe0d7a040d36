// Package predictor coalesces many small neural-network evaluation
// requests into batches, runs them through a backing Model, and fans
// the results back out to the callers that requested them.
package predictor

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned by NewWorker for out-of-range
// configuration.
var ErrInvalidConfiguration = errors.New("predictor: invalid configuration")

// ErrStopped is returned by Predict once a Worker has been stopped.
var ErrStopped = errors.New("predictor: worker stopped")

// ErrPredictorFailure is returned to every pending Future in a batch
// when the backing Model returns a malformed result (e.g. the wrong
// number of predictions for the batch submitted).
var ErrPredictorFailure = errors.New("predictor: malformed model output")

const (
	minQueueCapacity = 256
	maxQueueCapacity = 8192
)

// Config tunes a single Worker's batching behaviour.
type Config struct {
	MaxBatchSize int
	MaxWait      time.Duration
	// GCEvery is how many served batches elapse between calls to the
	// model's optional ReleaseNative method (called only if the Model
	// implements it), bounding resident native-buffer memory.
	GCEvery int
}

// DefaultConfig returns a worker configuration with a 256-position
// batch cap, a 5ms batch-fill wait, and a native-buffer sweep every 50
// batches.
func DefaultConfig() Config {
	return Config{
		MaxBatchSize: 256,
		MaxWait:      5 * time.Millisecond,
		GCEvery:      50,
	}
}

// IsValid reports whether c can be used to construct a Worker.
func (c Config) IsValid() error {
	if c.MaxBatchSize <= 0 {
		return errors.Wrap(ErrInvalidConfiguration, "max batch size must be > 0")
	}
	if c.MaxWait < 0 {
		return errors.Wrap(ErrInvalidConfiguration, "max wait must be >= 0")
	}
	if c.GCEvery < 0 {
		return errors.Wrap(ErrInvalidConfiguration, "gc every must be >= 0")
	}
	return nil
}

// queueCapacity is 1.5x the configured batch size, clamped to
// [minQueueCapacity, maxQueueCapacity].
func (c Config) queueCapacity() int {
	cap := c.MaxBatchSize + c.MaxBatchSize/2
	if cap < minQueueCapacity {
		cap = minQueueCapacity
	}
	if cap > maxQueueCapacity {
		cap = maxQueueCapacity
	}
	return cap
}

// Prediction is the per-position output of a Model: a policy over n²
// cells and a scalar value in [-1, 1].
type Prediction struct {
	Policy []float32
	Value  float64
}

// Model is the backing neural network a Worker drives. Predict is
// called once per batch with inputs concatenated along the batch axis
// (len(encodings) rows of n*n*Planes float32 each) and must return
// exactly one Prediction per input, in the same order.
type Model interface {
	Predict(encodings [][]float32) ([]Prediction, error)
	// UpdateFrom copies parameters from master into the receiver. It is
	// only ever called while the owning Worker is paused.
	UpdateFrom(master Model) error
}

// Future is the handle a caller of Predict awaits for a result.
type Future struct {
	done chan struct{}
	pred Prediction
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// NewResolvedFuture returns a Future that is already complete with p.
// It exists for callers (tests, and synchronous Predictor
// implementations) that need to satisfy the Future-returning
// interface without an underlying Worker.
func NewResolvedFuture(p Prediction) *Future {
	f := newFuture()
	f.complete(p, nil)
	return f
}

func (f *Future) complete(p Prediction, err error) {
	f.pred = p
	f.err = err
	close(f.done)
}

// Await blocks until the prediction backing this Future is ready.
func (f *Future) Await() (Prediction, error) {
	<-f.done
	return f.pred, f.err
}
