package predictor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	mu      sync.Mutex
	calls   int
	weights string
}

func (f *fakeModel) Predict(encodings [][]float32) ([]Prediction, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	out := make([]Prediction, len(encodings))
	for i := range encodings {
		out[i] = Prediction{Policy: []float32{1}, Value: float64(len(encodings[i]))}
	}
	return out, nil
}

func (f *fakeModel) UpdateFrom(master Model) error {
	other := master.(*fakeModel)
	f.mu.Lock()
	f.weights = other.weights
	f.mu.Unlock()
	return nil
}

func TestWorkerPredictReturnsPrediction(t *testing.T) {
	w, err := NewWorker(&fakeModel{}, DefaultConfig())
	require.NoError(t, err)
	defer w.Stop()

	f, err := w.Predict([]float32{1, 2, 3})
	require.NoError(t, err)

	pred, err := f.Await()
	require.NoError(t, err)
	require.Equal(t, float64(3), pred.Value)
}

func TestWorkerCoalescesConcurrentRequests(t *testing.T) {
	model := &fakeModel{}
	cfg := DefaultConfig()
	cfg.MaxBatchSize = 8
	cfg.MaxWait = 20 * time.Millisecond
	w, err := NewWorker(model, cfg)
	require.NoError(t, err)
	defer w.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := w.Predict([]float32{0})
			require.NoError(t, err)
			_, err = f.Await()
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	model.mu.Lock()
	calls := model.calls
	model.mu.Unlock()
	require.Less(t, calls, 8)
}

func TestWorkerUpdateWeightsCopiesParameters(t *testing.T) {
	model := &fakeModel{weights: "v1"}
	w, err := NewWorker(model, DefaultConfig())
	require.NoError(t, err)
	defer w.Stop()

	master := &fakeModel{weights: "v2"}
	require.NoError(t, w.UpdateWeights(master))

	f, err := w.Predict([]float32{1})
	require.NoError(t, err)
	_, err = f.Await()
	require.NoError(t, err)

	model.mu.Lock()
	defer model.mu.Unlock()
	require.Equal(t, "v2", model.weights)
}

func TestWorkerStopFailsFutureRequests(t *testing.T) {
	w, err := NewWorker(&fakeModel{}, DefaultConfig())
	require.NoError(t, err)

	w.Stop()

	_, err = w.Predict([]float32{1})
	require.ErrorIs(t, err, ErrStopped)
}

func TestConfigIsValidRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBatchSize = 0
	require.Error(t, cfg.IsValid())
}
