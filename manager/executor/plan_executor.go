package executor

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/bobycv06fpm/news-credibility/manager/cache"
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/source"
	"go.uber.org/zap"
)

type PlanExecutor struct {
	functions FunctionCaller

	// one scratch per filter worker
	scratchPool *cache.RingPool[filterScratch]

	logger *zap.Logger
}

// NewPlanExecutor creates an executor, threads <= 0 uses every cpu
func NewPlanExecutor(functions FunctionCaller, threads int, logger *zap.Logger) *PlanExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	return &PlanExecutor{
		functions:   functions,
		scratchPool: cache.NewRingPool(threads, newFilterScratch),
		logger:      logger,
	}
}

// Threads is the number of column groups filtered at once
func (pe *PlanExecutor) Threads() int {
	return pe.scratchPool.Size()
}

// Execute filters, orders and limits the source rows and then projects the
// selectors. Functions are called once per output row in output order.
func (pe *PlanExecutor) Execute(ctx context.Context, plan *query.QueryPlan, src *source.Source) (*Result, error) {

	start := time.Now()

	indices, filterErr := filterRows(ctx, pe.scratchPool, src, plan)
	if filterErr != nil {
		return nil, filterErr
	}
	matched := len(indices)

	orderRows(src, indices, plan.OrderBy)

	if plan.Limit > 0 && len(indices) > plan.Limit {
		indices = indices[:plan.Limit]
	}

	rows := make([][]any, 0, len(indices))

	for n, rowIdx := range indices {

		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record := src.Records[rowIdx]
		values := make([]any, len(plan.Select))

		for colIdx, selector := range plan.Select {
			value, err := evaluateSelector(selector, record, pe.functions)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowIdx, err)
			}
			values[colIdx] = value
		}

		rows = append(rows, values)
	}

	pe.logger.Debug("plan executed",
		zap.String("source", src.Path),
		zap.Int("rows", src.Count()),
		zap.Int("matched", matched),
		zap.Int("returned", len(rows)),
		zap.Int("threads", pe.Threads()),
		zap.Duration("took", time.Since(start)),
	)

	return &Result{
		Schema: plan.Output,
		Rows:   rows,
	}, nil
}
