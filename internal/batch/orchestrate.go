package batch

import (
	"context"
	"sync/atomic"

	"github.com/samber/do"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"imagebatch/internal/log"
)

// Orchestrator runs every request of a batch concurrently and joins
// them at a single barrier. Individual failures are absorbed by the
// Fetcher, so the group itself never fails and never cancels in-flight
// siblings; the batch always completes with whatever succeeded.
type Orchestrator struct {
	fetcher *Fetcher
}

func NewOrchestrator(i *do.Injector) (*Orchestrator, error) {
	return &Orchestrator{fetcher: do.MustInvoke[*Fetcher](i)}, nil
}

// Run dispatches all requests at once and returns the successful
// results in original submission order. Completion order is
// unspecified; results are slotted by index, not by finish time.
func (o *Orchestrator) Run(ctx context.Context, reqs []Request) []Result {
	log := log.FromContextOrDiscard(ctx).WithGroup("batch")
	log.Info("dispatching batch", "total", len(reqs))

	results := make([]*Result, len(reqs))
	var done atomic.Int64

	var group errgroup.Group
	for i, req := range reqs {
		i, req := i, req
		group.Go(func() error {
			if res, ok := o.fetcher.Fetch(ctx, req); ok {
				results[i] = &res
			}
			log.Info("request complete", "done", done.Add(1), "total", len(reqs))
			return nil
		})
	}
	_ = group.Wait()

	collected := lo.FilterMap(results, func(r *Result, _ int) (Result, bool) {
		if r == nil {
			return Result{}, false
		}
		return *r, true
	})
	log.Info("batch complete", "requested", len(reqs), "succeeded", len(collected))
	return collected
}
