package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	dErrors "concursos/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent lookups.
type ConcurrentResult struct {
	Successes   int32
	Errors      int32
	Validations int32
	NotFounds   int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Validations + r.NotFounds
}

// RunConcurrent executes fn in parallel goroutines and buckets each outcome
// by its domain error code: success, validation, not_found, or generic error.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, errs, validations, notFounds atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			switch dErrors.CodeOf(err) {
			case "":
				successes.Add(1)
			case dErrors.CodeValidation:
				validations.Add(1)
			case dErrors.CodeNotFound:
				notFounds.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes:   successes.Load(),
		Errors:      errs.Load(),
		Validations: validations.Load(),
		NotFounds:   notFounds.Load(),
	}
}

// RunConcurrentCtx is RunConcurrent with a shared context passed to fn.
func RunConcurrentCtx(ctx context.Context, goroutines int, fn func(ctx context.Context, idx int) error) *ConcurrentResult {
	return RunConcurrent(goroutines, func(idx int) error {
		return fn(ctx, idx)
	})
}
