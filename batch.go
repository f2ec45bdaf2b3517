// SPDX-License-Identifier: MIT
package strtotime

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

type (
	// Result holds the outcome of parsing one batch input.
	Result struct {
		Input string
		Time  time.Time
		Err   error
	}
)

// Batch parsing errors.
var (
	ErrBatch = errors.New("failed to parse batch")
)

// ParseBatch parses inputs concurrently on a pool of workers, workers < 1 uses GOMAXPROCS.
//
// Results are index aligned with inputs. Inputs not yet submitted when ctx is done carry
// ctx's error, as does the returned error; per-input parse failures only populate Result.Err.
func (p *Parser) ParseBatch(ctx context.Context, inputs []string, workers int) (results []Result, err error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results = make([]Result, len(inputs))
	for index, input := range inputs {
		results[index].Input = input
	}

	pool, err := ants.NewPool(workers,
		ants.WithLogger(p.logger),
		ants.WithPanicHandler(func(r interface{}) { p.logger.Errorf("batch worker panicked: %v", r) }),
	)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrBatch, err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup

	index := 0
	for ; index < len(inputs); index++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			break
		}

		wg.Add(1)
		result := &results[index]
		if e := pool.Submit(func() {
			defer wg.Done()
			result.Time, result.Err = p.Parse(result.Input)
		}); e != nil {
			wg.Done()
			err = fmt.Errorf("%w: %v", ErrBatch, e)

			break
		}
	}

	wg.Wait()

	for ; index < len(inputs); index++ {
		results[index].Err = err
	}

	if p.debug {
		p.logger.Debugf("parsed batch of %d inputs with %d workers", len(inputs), workers)
	}

	return
}
