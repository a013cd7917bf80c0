package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leengari/sheetmerge/internal/domain/table"
	"github.com/leengari/sheetmerge/internal/query/filter"
	"github.com/leengari/sheetmerge/internal/query/merge"
	"github.com/leengari/sheetmerge/internal/storage"
)

// Source describes one input of a merge run: where the table comes from,
// the name its records carry in merged rows, the columns used to join the
// NEXT source (empty on the last one), and an optional row filter applied
// during the scan.
type Source struct {
	Name        string
	URL         string
	JoinColumns []string
	Keep        filter.PredicateFunc
}

// Pipeline loads sources concurrently and merges them in declaration order.
type Pipeline struct {
	store *storage.Service
}

func New(store *storage.Service) *Pipeline {
	return &Pipeline{store: store}
}

// Run executes the whole pipeline: every source is parsed in its own
// goroutine (parsers share no state and never block each other), the run
// suspends until all of them finish, then the merge runs synchronously
// over the materialized tables.
//
// The first parse failure cancels the derived context and fails the run;
// there is no partial-success mode and no retry.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (*merge.MergedSheet, error) {
	runID := uuid.NewString()
	started := time.Now()

	slog.Info("Pipeline run starting",
		slog.String("run_id", runID),
		slog.Int("sources", len(sources)),
	)

	tables := make([]*table.Table, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			t, err := p.store.ReadTable(gctx, src.URL, src.Keep)
			if err != nil {
				return err // cancels the remaining loads
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("Pipeline run failed while loading sources",
			slog.String("run_id", runID),
			slog.Any("error", err),
		)
		return nil, err
	}

	steps := make([]merge.JoinStep, len(sources))
	for i, src := range sources {
		steps[i] = merge.JoinStep{
			Table:       tables[i],
			JoinColumns: src.JoinColumns,
			Name:        src.Name,
		}
	}

	sheet, err := merge.Merge(steps)
	if err != nil {
		slog.Error("Pipeline merge failed",
			slog.String("run_id", runID),
			slog.Any("error", err),
		)
		return nil, err
	}

	slog.Info("Pipeline run completed",
		slog.String("run_id", runID),
		slog.Int("result_rows", len(sheet.Rows)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return sheet, nil
}
