package source

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader reads sources once per path and keeps them until dropped
type Loader struct {
	sources map[string]*Source
	lock    sync.RWMutex

	loadGroup singleflight.Group

	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		sources: map[string]*Source{},
		logger:  logger,
	}
}

func (l *Loader) cached(path string) *Source {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.sources[path]
}

func (l *Loader) Load(ctx context.Context, path string) (*Source, error) {

	if src := l.cached(path); src != nil {
		return src, nil
	}

	v, err, _ := l.loadGroup.Do(path, func() (any, error) {

		if src := l.cached(path); src != nil {
			return src, nil
		}

		src, readErr := Read(ctx, path)
		if readErr != nil {
			return nil, readErr
		}

		l.logger.Info("source loaded",
			zap.String("path", path),
			zap.Int("records", src.Count()),
			zap.Int("columns", len(src.Schema.Columns)),
		)
		l.logger.Debug("inferred source schema", zap.String("path", path), zap.String("schema", src.Schema.String()))

		l.lock.Lock()
		defer l.lock.Unlock()

		l.sources[path] = src

		return src, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*Source), nil
}

// LoadAll reads the given paths in parallel, the result keeps the input order
func (l *Loader) LoadAll(ctx context.Context, paths ...string) ([]*Source, error) {

	result := make([]*Source, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)

	for idx, path := range paths {
		group.Go(func() error {
			src, err := l.Load(groupCtx, path)
			if err != nil {
				return err
			}
			result[idx] = src
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (l *Loader) Drop(path string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	delete(l.sources, path)
}
