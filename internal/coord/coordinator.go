// Package coord drives one digest pass: it fetches every feed in the
// plan, applies admission filtering, and aggregates the survivors into
// the final ordered, capped item set.
package coord

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/briefing/internal/digest"
	"github.com/abelbrown/briefing/internal/feed"
	"github.com/abelbrown/briefing/internal/filter"
	"github.com/abelbrown/briefing/internal/logging"
)

// fetchTimeout bounds each individual feed fetch.
const fetchTimeout = 30 * time.Second

// maxConcurrentFetches limits parallel fetch operations.
const maxConcurrentFetches = 5

// fetcher is the capability the coordinator needs from the fetch layer.
// Satisfied by *fetch.Fetcher, and by fakes in tests.
type fetcher interface {
	Fetch(ctx context.Context, src feed.Source) ([]feed.Item, error)
}

// Options carry the admission and aggregation settings for a run.
type Options struct {
	Window   time.Duration // recency window; entries older than this are rejected
	Includes []string
	Excludes []string
	MaxItems int
}

// Coordinator runs a single aggregation pass over a fixed feed plan.
type Coordinator struct {
	fetcher fetcher
	plan    []feed.Source
	opts    Options
}

// New creates a Coordinator. The plan slice is copied so later mutation
// by the caller cannot affect a run in progress.
func New(f fetcher, plan []feed.Source, opts Options) *Coordinator {
	planCopy := make([]feed.Source, len(plan))
	copy(planCopy, plan)
	return &Coordinator{fetcher: f, plan: planCopy, opts: opts}
}

// Run fetches the whole plan and returns the deduplicated, ordered,
// capped item set.
//
// Feeds are fetched concurrently but each feed's results land in its own
// plan slot and are merged in plan order, so fetch completion order never
// changes the output. A failed feed is logged and contributes nothing;
// the run always completes with whatever the remaining feeds returned.
func (c *Coordinator) Run(ctx context.Context) []feed.Item {
	now := time.Now().UTC()
	results := make([][]feed.Item, len(c.plan))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)

	for i, src := range c.plan {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			items, err := c.fetcher.Fetch(fetchCtx, src)
			if err != nil {
				logging.Warn("feed fetch failed",
					"label", src.Label, "region", src.Region, "query", src.Query, "error", err)
				return nil // failure stays isolated to this feed
			}

			admitted := filter.Admitted(items, now, c.opts.Window, c.opts.Includes, c.opts.Excludes)
			logging.Debug("feed fetched",
				"label", src.Label, "region", src.Region, "query", src.Query,
				"entries", len(items), "admitted", len(admitted))
			results[i] = admitted
			return nil
		})
	}

	_ = g.Wait() // goroutines never return errors; fetch failures are per-feed

	var admitted []feed.Item
	for _, r := range results {
		admitted = append(admitted, r...)
	}
	return digest.Build(admitted, c.opts.MaxItems)
}
