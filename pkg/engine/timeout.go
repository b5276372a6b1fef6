package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/boxkit/pkg/scene"
)

// EvalTimeout is the default hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// evalResult passes evaluation output through channels.
type evalResult struct {
	scene  *scene.Scene
	value  string
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if the evaluation exceeds timeout. A result whose generation is no longer
// current is discarded.
//
// On timeout the goroutine may still be running; the generation check
// discards its result when it eventually completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
	timeout time.Duration,
) (evalResult, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return evalResult{}, fmt.Errorf("evaluation superseded by newer request")
		}
		if res.err != nil {
			return evalResult{}, res.err
		}
		return res, nil

	case <-timer.C:
		return evalResult{}, fmt.Errorf("evaluation timed out after %s", timeout)
	}
}
