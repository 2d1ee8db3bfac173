package loader

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Outcome is how one descriptor's fetch settled.
type Outcome struct {
	Name  Name
	Value any
	Err   error
}

/*
Settle runs every descriptor's fetch in its own goroutine and waits for all
of them. Outcomes come back in descriptor order regardless of completion
order. A panicking fetch settles as an error instead of taking the process
down. Settle never fails as a whole; what to do with failures is the
caller's decision.
*/
func Settle(ctx context.Context, descs []Descriptor) []Outcome {
	out := make([]Outcome, len(descs))

	var wg sync.WaitGroup
	wg.Add(len(descs))
	for i, d := range descs {
		go func() {
			defer wg.Done()
			out[i] = run(ctx, d)
		}()
	}
	wg.Wait()

	return out
}

func run(ctx context.Context, d Descriptor) (o Outcome) {
	o.Name = d.Name
	defer func() {
		if r := recover(); r != nil {
			o.Value = nil
			o.Err = errors.Errorf("fetch %s panicked: %v", d.Name, r)
		}
	}()
	o.Value, o.Err = d.Fetch(ctx)
	return o
}
