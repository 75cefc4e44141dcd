package executor

import (
	"context"
	"fmt"

	"github.com/bobycv06fpm/news-credibility/lists"
	"github.com/bobycv06fpm/news-credibility/manager/cache"
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/source"
	"golang.org/x/sync/errgroup"
)

type GroupFilterResult struct {
	FieldName string
	Indices   []int
}

// filterScratch is the reusable memory of one filter worker
type filterScratch struct {
	indices []int
	merger  *lists.IndiceUnmerged
}

func newFilterScratch() filterScratch {
	return filterScratch{merger: lists.NewUnmerged(0)}
}

// processFilterGroup evaluates all conditions bound to one column
func processFilterGroup(ctx context.Context, pool *cache.RingPool[filterScratch], src *source.Source, group query.FilterGroupedRT) (GroupFilterResult, error) {

	scratch, scratchId, poolErr := pool.Get(ctx)
	if poolErr != nil {
		return GroupFilterResult{}, poolErr
	}
	defer pool.Put(scratchId)

	vector := NewColumnVector(src, *group.ColumnSchemaInfo)

	if cap(scratch.indices) < vector.Len() {
		scratch.indices = make([]int, vector.Len())
	}
	indices := scratch.indices[:vector.Len()]

	merger := scratch.merger
	merger.Reset(vector.Len())

	for _, filter := range group.Conditions {
		if _, err := ProcessFilterOnColumn(filter, vector, merger, indices); err != nil {
			return GroupFilterResult{}, err
		}

		if merger.Empty() {
			break
		}
	}

	return GroupFilterResult{
		FieldName: group.FieldName,
		Indices:   merger.Result(),
	}, nil
}

// filterRows runs column groups in parallel and intersects their results.
// Returned indices are ascending.
func filterRows(ctx context.Context, pool *cache.RingPool[filterScratch], src *source.Source, plan *query.QueryPlan) ([]int, error) {

	results := make([]GroupFilterResult, len(plan.FilterGroupedByFields))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(pool.Size())

	for idx, filtersGroup := range plan.FilterGroupedByFields {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			res, err := processFilterGroup(groupCtx, pool, src, filtersGroup)
			if err != nil {
				return fmt.Errorf("unable to filter column `%s`: %w", filtersGroup.FieldName, err)
			}

			results[idx] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	merger := lists.NewUnmerged(src.Count())
	for _, it := range results {
		merger.With(it.Indices)
	}

	return merger.Result(), nil
}
