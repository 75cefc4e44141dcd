package manager

import (
	"fmt"

	"github.com/bobycv06fpm/news-credibility/io"
	"github.com/bobycv06fpm/news-credibility/table"
	"go.uber.org/zap"
)

// Store writes the schema and lz4 compressed parts of every named table
// under the storage path. Without names all registered tables are stored.
func (m *Manager) Store(names ...string) (map[string][]string, error) {

	if len(names) == 0 {
		names = m.Meta.Names()
	}

	written := map[string][]string{}

	for _, name := range names {

		t, err := m.Table(name)
		if err != nil {
			return written, err
		}

		tableSchema := t.Schema()
		tableSchema.Name = name

		if err := m.Meta.StoreSchemeToDisk(tableSchema); err != nil {
			return written, fmt.Errorf("unable to store schema of %s: %w", name, err)
		}

		dir, dirErr := m.Meta.EnsureTablePath(name)
		if dirErr != nil {
			return written, dirErr
		}

		parts, dumpErr := io.DumpTable(dir, t)
		if dumpErr != nil {
			return written, dumpErr
		}

		written[name] = parts

		m.logger.Info("table stored", zap.String("table", name), zap.String("dir", dir), zap.Int("parts", len(parts)), zap.Int("rows", t.Count()))
	}

	return written, nil
}

// Load reads a previously stored table back and registers it
func (m *Manager) Load(name string) (*table.Table, error) {

	stored, schemaErr := m.Meta.LoadSchemeFromDisk(name)
	if schemaErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTableNotFound, name, schemaErr)
	}

	t, err := io.LoadTable(m.Meta.TablePath(name), stored.Name)
	if err != nil {
		return nil, err
	}

	m.Register(name, t)

	return t, nil
}
