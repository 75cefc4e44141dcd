package meta

import (
	"bufio"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/bobycv06fpm/news-credibility/io"
	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/bobycv06fpm/news-credibility/table"
	"go.uber.org/zap"
)

const SchemaFileName = "schema.json"

// MetaManager is the registry of named tables produced during a session
type MetaManager struct {
	tables map[string]*table.Table
	lock   sync.RWMutex

	storagePath string
	logger      *zap.Logger
}

func NewMetaManager(storagePath string, logger *zap.Logger) *MetaManager {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MetaManager{
		tables: map[string]*table.Table{},

		storagePath: storagePath,
		logger:      logger,
	}
}

func (qp *MetaManager) AddTable(name string, t *table.Table) {

	qp.lock.Lock()
	defer qp.lock.Unlock()

	qp.tables[name] = t
}

func (qp *MetaManager) GetTable(name string) *table.Table {
	qp.lock.RLock()
	defer qp.lock.RUnlock()

	return qp.tables[name]
}

func (qp *MetaManager) Names() []string {
	qp.lock.RLock()
	defer qp.lock.RUnlock()

	names := make([]string, 0, len(qp.tables))
	for name := range qp.tables {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (m *MetaManager) StoreSchemeToDisk(schemeObject schema.Schema) error {

	_, pathErr := m.createStoragePathIfNotExists(schemeObject.Name)
	if pathErr != nil {
		return fmt.Errorf("unable to create schema folder: %w", pathErr)
	}

	schemesPath := m.getAbsStoragePath(schemeObject.Name, SchemaFileName)

	fr := io.NewFileReader(schemesPath)
	createFileErr := fr.Open(false)

	if createFileErr != nil {
		return createFileErr
	}

	defer fr.Close()

	jschemeBytes, marshalErr := json.MarshalIndent(schemeObject, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("unable to encode schema %s: %w", schemeObject.Name, marshalErr)
	}

	linesWriter := bufio.NewWriter(fr.Raw())
	if _, writeErr := linesWriter.Write(jschemeBytes); writeErr != nil {
		return writeErr
	}

	return linesWriter.Flush()
}

func (m *MetaManager) LoadSchemeFromDisk(name string) (schema.Schema, error) {

	fr := io.NewFileReader(m.getAbsStoragePath(name, SchemaFileName))
	if openErr := fr.Open(true); openErr != nil {
		return schema.Schema{}, openErr
	}
	defer fr.Close()

	result := schema.Schema{}
	if decodeErr := json.NewDecoder(fr.Raw()).Decode(&result); decodeErr != nil {
		return schema.Schema{}, fmt.Errorf("unable to decode schema %s: %w", name, decodeErr)
	}

	return result, nil
}
