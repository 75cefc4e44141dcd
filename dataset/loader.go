package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobycv06fpm/news-credibility/extract"
	"github.com/bobycv06fpm/news-credibility/manager"
	"github.com/bobycv06fpm/news-credibility/table"
	"go.uber.org/zap"
)

var ErrInvalidWeights = errors.New("expected two positive split weights")

type Loader struct {
	manager   *manager.Manager
	extractor *extract.Extractor

	options Options
	logger  *zap.Logger
}

func NewLoader(m *manager.Manager, options Options) *Loader {
	return &Loader{
		manager:   m,
		extractor: extract.NewExtractor(m.Sources, m.Functions, m.Planner, m.Executor, m.Logger()),
		options:   options.withDefaults(),
		logger:    m.Logger(),
	}
}

func validateWeights(weights []float64) error {
	if len(weights) != 2 {
		return fmt.Errorf("%w: got %v", ErrInvalidWeights, weights)
	}
	for _, w := range weights {
		if !(w > 0) {
			return fmt.Errorf("%w: got %v", ErrInvalidWeights, weights)
		}
	}
	return nil
}

func (l *Loader) extract(ctx context.Context, spec extract.Spec, result *Datasets) (*table.Table, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := l.extractor.Extract(ctx, spec)
	if err != nil {
		return nil, err
	}

	if t.IsEmpty() {
		l.logger.Warn("extraction produced no rows", zap.String("name", spec.Name), zap.String("path", spec.Path))
		result.warn("%s extracted from %s is empty", spec.Name, spec.Path)
	}

	return t, nil
}

// assemble unions parts, sorts them by content and cuts the result into
// the output partitions
func (l *Loader) assemble(name string, parts ...*table.Table) (*table.Table, error) {

	merged := parts[0].Union(parts[1:]...).WithName(name)

	assembled, err := merged.OrderByContent().Repartition(l.options.Partitions)
	if err != nil {
		return nil, fmt.Errorf("unable to repartition %s: %w", name, err)
	}

	l.manager.Register(name, assembled)

	return assembled, nil
}

// Build extracts every source, splits the unreliable and credible extracts
// with the same weights and seed and assembles the output tables.
func (l *Loader) Build(ctx context.Context, weights []float64) (*Datasets, error) {

	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	paths := l.options.Paths

	if _, err := l.manager.Sources.LoadAll(ctx, paths.All()...); err != nil {
		return nil, err
	}

	result := &Datasets{}

	unreliable, err := l.extract(ctx, UnreliableSpec(paths.Unreliable, l.options.UnreliableCategory), result)
	if err != nil {
		return nil, err
	}

	credible, err := l.extract(ctx, CredibleSpec(paths.Credible, l.options.CredibleLimit), result)
	if err != nil {
		return nil, err
	}

	validation, err := l.extract(ctx, ValidationSpec(paths.Validation), result)
	if err != nil {
		return nil, err
	}

	leak, err := l.extract(ctx, LeakSpec(paths.Leak), result)
	if err != nil {
		return nil, err
	}

	l.manager.Register(UnreliableTable, unreliable)
	l.manager.Register(CredibleTable, credible)

	result.UnreliableData = unreliable
	result.CredibleData = credible

	unreliableSplits, err := unreliable.RandomSplit(weights, *l.options.Seed)
	if err != nil {
		return nil, fmt.Errorf("unable to split %s: %w", UnreliableTable, err)
	}

	credibleSplits, err := credible.RandomSplit(weights, *l.options.Seed)
	if err != nil {
		return nil, fmt.Errorf("unable to split %s: %w", CredibleTable, err)
	}

	intermediate := append(append([]*table.Table{}, unreliableSplits...), credibleSplits...)
	for _, t := range intermediate {
		l.manager.Persist(t)
	}
	defer l.manager.Unpersist(intermediate...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if result.Train, err = l.assemble(TrainTable, unreliableSplits[0], credibleSplits[0]); err != nil {
		return nil, err
	}

	if result.Test, err = l.assemble(TestTable, unreliableSplits[1], credibleSplits[1]); err != nil {
		return nil, err
	}

	if result.Validation, err = l.assemble(ValidationTable, validation); err != nil {
		return nil, err
	}

	if result.LeakCheck, err = l.assemble(LeakCheckTable, leak, credibleSplits[1]); err != nil {
		return nil, err
	}

	for _, t := range []*table.Table{result.Train, result.Test} {
		if t.IsEmpty() {
			l.logger.Warn("assembled table is empty", zap.String("name", t.Name()))
			result.warn("%s is empty", t.Name())
		}
	}

	l.logger.Info("datasets built",
		zap.Float64s("weights", weights),
		zap.Int64("seed", *l.options.Seed),
		zap.Int(TrainTable, result.Train.Count()),
		zap.Int(TestTable, result.Test.Count()),
		zap.Int(ValidationTable, result.Validation.Count()),
		zap.Int(LeakCheckTable, result.LeakCheck.Count()),
		zap.Duration("took", time.Since(start)),
	)

	return result, nil
}
