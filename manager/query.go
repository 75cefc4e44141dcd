package manager

import (
	"context"
	"fmt"

	"github.com/bobycv06fpm/news-credibility/manager/executor"
	"github.com/bobycv06fpm/news-credibility/manager/query"
)

// Query runs an ad hoc query over the source stored at path
func (m *Manager) Query(ctx context.Context, path string, queryData query.Query) (*executor.Result, error) {

	src, loadErr := m.Sources.Load(ctx, path)
	if loadErr != nil {
		return nil, loadErr
	}

	plan, planErr := m.Planner.Plan(queryData, src.Schema, m.Functions)
	if planErr != nil {
		return nil, fmt.Errorf("unable to construct query execution plan: %w", planErr)
	}

	return m.Executor.Execute(ctx, &plan, src)
}
