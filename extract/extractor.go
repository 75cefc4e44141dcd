package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/bobycv06fpm/news-credibility/manager/executor"
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/bobycv06fpm/news-credibility/source"
	"github.com/bobycv06fpm/news-credibility/table"
	"github.com/bobycv06fpm/news-credibility/udf"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

var (
	ErrInvalidSpec  = errors.New("invalid extraction spec")
	ErrInvalidLabel = errors.New("label is not castable to double")
)

type Extractor struct {
	sources   *source.Loader
	functions *udf.Registry

	planner  *query.QueryPlanner
	executor *executor.PlanExecutor

	logger *zap.Logger
}

func NewExtractor(
	sources *source.Loader,
	functions *udf.Registry,
	planner *query.QueryPlanner,
	planExecutor *executor.PlanExecutor,
	logger *zap.Logger,
) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		sources:   sources,
		functions: functions,
		planner:   planner,
		executor:  planExecutor,
		logger:    logger,
	}
}

func (s Spec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if s.Path == "" {
		return fmt.Errorf("%w: `%s` has no path", ErrInvalidSpec, s.Name)
	}
	if s.BodyColumn == "" {
		return fmt.Errorf("%w: `%s` has no body column", ErrInvalidSpec, s.Name)
	}
	if s.Limit < 0 {
		return fmt.Errorf("%w: `%s` has negative limit %d", ErrInvalidSpec, s.Name, s.Limit)
	}

	if s.Label.Type == query.SelectLiteral {
		if _, ok := executor.CastValue(s.Label.Value, schema.Float64FieldType).(float64); !ok {
			return fmt.Errorf("%w: `%s` label %v", ErrInvalidLabel, s.Name, s.Label.Value)
		}
	}

	return nil
}

// Extract loads the spec source and projects it to (id, content, label).
// Rows with a null or blank body are dropped.
func (e *Extractor) Extract(ctx context.Context, spec Spec) (*table.Table, error) {

	if err := spec.validate(); err != nil {
		return nil, err
	}

	src, loadErr := e.sources.Load(ctx, spec.Path)
	if loadErr != nil {
		return nil, loadErr
	}

	e.logger.Info("extracting", zap.String("name", spec.Name), zap.String("path", spec.Path))
	e.logger.Debug("source schema", zap.String("name", spec.Name), zap.String("schema", src.Schema.String()))

	q := spec.Query()

	plan, planErr := e.planner.Plan(q, src.Schema, e.functions)
	if planErr != nil {
		if errors.Is(planErr, query.ErrColumnNotFound) && src.Count() > 0 {
			e.logger.Debug("schema mismatch", zap.String("name", spec.Name), zap.String("record", spew.Sdump(src.Records[0].Value())))
		}
		return nil, fmt.Errorf("unable to plan extraction of `%s` from %s: %w", spec.Name, spec.Path, planErr)
	}

	result, execErr := e.executor.Execute(ctx, &plan, src)
	if execErr != nil {
		return nil, fmt.Errorf("unable to extract `%s`: %w", spec.Name, execErr)
	}

	extracted, convErr := result.ToTable(spec.Name)
	if convErr != nil {
		return nil, fmt.Errorf("unable to extract `%s`: %w", spec.Name, convErr)
	}

	e.logger.Info("extracted",
		zap.String("name", spec.Name),
		zap.Int("source_rows", src.Count()),
		zap.Int("rows", extracted.Count()),
	)

	return extracted, nil
}

// Schema returns the inferred schema of a source without extracting it
func (e *Extractor) Schema(ctx context.Context, path string) (schema.Schema, error) {
	src, err := e.sources.Load(ctx, path)
	if err != nil {
		return schema.Schema{}, err
	}
	return src.Schema, nil
}
