package manager

import (
	"errors"
	"fmt"

	"github.com/bobycv06fpm/news-credibility/manager/cache"
	"github.com/bobycv06fpm/news-credibility/manager/executor"
	"github.com/bobycv06fpm/news-credibility/manager/meta"
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/source"
	"github.com/bobycv06fpm/news-credibility/table"
	"github.com/bobycv06fpm/news-credibility/udf"
	"go.uber.org/zap"
)

var ErrTableNotFound = errors.New("table not found")

type ManagerConfig struct {
	PathToStorage string

	// 0 means unlimited
	CacheMaxBytes uint64

	ReproducibleIds bool
	IdSeed          uint64

	// 0 uses every cpu
	Threads int
}

// Manager owns everything produced during one session: loaded sources,
// named tables and cached intermediates.
type Manager struct {
	config ManagerConfig

	Meta      *meta.MetaManager
	Cache     *cache.TableCacheManager
	Sources   *source.Loader
	Functions *udf.Registry

	Planner  *query.QueryPlanner
	Executor *executor.PlanExecutor

	logger *zap.Logger
}

func New(config ManagerConfig, logger *zap.Logger) (*Manager, error) {

	if logger == nil {
		logger = zap.NewNop()
	}

	var ids udf.IdGenerator
	if config.ReproducibleIds {
		ids = udf.NewSeededIdGenerator(config.IdSeed)
	} else {
		secure, err := udf.NewSecureIdGenerator()
		if err != nil {
			return nil, fmt.Errorf("unable to seed id generator: %w", err)
		}
		ids = secure
	}

	functions := udf.NewDefaultRegistry(ids)

	return &Manager{
		config:    config,
		Meta:      meta.NewMetaManager(config.PathToStorage, logger),
		Cache:     cache.NewTableCacheManager(int(config.CacheMaxBytes)),
		Sources:   source.NewLoader(logger),
		Functions: functions,
		Planner:   query.NewQueryPlanner(),
		Executor:  executor.NewPlanExecutor(functions, config.Threads, logger),
		logger:    logger,
	}, nil
}

func (m *Manager) Logger() *zap.Logger {
	return m.logger
}

func (m *Manager) Register(name string, t *table.Table) {
	m.Meta.AddTable(name, t)
}

func (m *Manager) Table(name string) (*table.Table, error) {
	t := m.Meta.GetTable(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return t, nil
}

// Persist pins t in the cache. A full cache only skips pinning.
func (m *Manager) Persist(t *table.Table) {

	err := m.Cache.Persist(t)
	if err == nil {
		return
	}

	if errors.Is(err, cache.ErrCacheFull) {
		summary := m.Cache.Summary()
		m.logger.Warn("cache is full, table not persisted",
			zap.String("table", t.Name()),
			zap.Int("size_bytes", t.SizeBytes()),
			zap.Int("used_bytes", summary.UsedBytes),
			zap.Int("max_bytes", summary.MaxBytes),
		)
		return
	}

	m.logger.Warn("unable to persist table", zap.String("table", t.Name()), zap.Error(err))
}

func (m *Manager) Unpersist(tables ...*table.Table) {
	for _, t := range tables {
		if t == nil {
			continue
		}
		if m.Cache.Unpersist(t.Uid()) {
			m.logger.Debug("table unpersisted", zap.String("table", t.Name()))
		}
	}
}
