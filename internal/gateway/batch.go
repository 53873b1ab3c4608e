package gateway

import (
	"context"
	"fmt"
	"sync"
)

// LineError ties a failed conversion to its position in a batch.
type LineError struct {
	Index   int
	Text    string
	Wrapped error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Index+1, e.Wrapped)
}

func (e *LineError) Unwrap() error {
	return e.Wrapped
}

// Batch converts texts on a pool of at most workers goroutines. Results
// keep input order. The first failure by position is returned and no
// results are.
func (g *Gateway) Batch(ctx context.Context, texts []string, dir Direction, workers int) ([]Result, error) {
	if _, err := ParseDirection(string(dir)); err != nil {
		return nil, err
	}
	workers = max(1, min(workers, len(texts)))

	results := make([]Result, len(texts))
	errs := make([]error, len(texts))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				text := texts[idx]
				if err := ctx.Err(); err != nil {
					errs[idx] = &LineError{Index: idx, Text: text, Wrapped: err}
					continue
				}
				res, err := g.Convert(ctx, text, dir)
				if err != nil {
					errs[idx] = &LineError{Index: idx, Text: text, Wrapped: err}
					continue
				}
				results[idx] = res
			}
		}()
	}

	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	g.logger.Debug("batch converted", "lines", len(texts), "workers", workers, "direction", dir)
	return results, nil
}
