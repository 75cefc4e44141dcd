package cache

import (
	"errors"
	"sync"

	"github.com/bobycv06fpm/news-credibility/table"
	"github.com/google/uuid"
)

var ErrCacheFull = errors.New("table cache is full")

// TableCacheManager keeps materialized tables pinned until they are
// unpersisted. Tables are immutable, so a cached entry is only a
// reference plus bookkeeping.
type TableCacheManager struct {
	storage       map[uuid.UUID]*TableCacheItem
	storageLocker sync.RWMutex

	// 0 means unlimited
	maxBytes  int
	usedBytes int
}

func NewTableCacheManager(maxBytes int) *TableCacheManager {
	return &TableCacheManager{
		storage:  make(map[uuid.UUID]*TableCacheItem),
		maxBytes: maxBytes,
	}
}

// Persist pins t. Persisting an already cached table is a no op.
func (m *TableCacheManager) Persist(t *table.Table) error {

	m.storageLocker.Lock()
	defer m.storageLocker.Unlock()

	if _, ok := m.storage[t.Uid()]; ok {
		return nil
	}

	item := newTableCacheItem(t)

	if m.maxBytes > 0 && m.usedBytes+item.RtStats.SizeBytes > m.maxBytes {
		return ErrCacheFull
	}

	m.storage[t.Uid()] = item
	m.usedBytes += item.RtStats.SizeBytes

	return nil
}

func (m *TableCacheManager) Unpersist(uid uuid.UUID) bool {

	m.storageLocker.Lock()
	defer m.storageLocker.Unlock()

	item, ok := m.storage[uid]
	if !ok {
		return false
	}

	m.usedBytes -= item.RtStats.SizeBytes
	delete(m.storage, uid)

	return true
}

func (m *TableCacheManager) Get(uid uuid.UUID) (*table.Table, bool) {

	m.storageLocker.Lock()
	defer m.storageLocker.Unlock()

	item, ok := m.storage[uid]
	if !ok {
		return nil, false
	}

	item.RtStats.Reads++

	return item.Table, true
}

func (m *TableCacheManager) IsCached(uid uuid.UUID) bool {

	m.storageLocker.RLock()
	defer m.storageLocker.RUnlock()

	_, ok := m.storage[uid]
	return ok
}

func (m *TableCacheManager) Stats(uid uuid.UUID) (CacheStats, bool) {

	m.storageLocker.RLock()
	defer m.storageLocker.RUnlock()

	item, ok := m.storage[uid]
	if !ok {
		return CacheStats{}, false
	}

	return *item.RtStats, true
}

func (m *TableCacheManager) Summary() Summary {

	m.storageLocker.RLock()
	defer m.storageLocker.RUnlock()

	return Summary{
		Entries:   len(m.storage),
		UsedBytes: m.usedBytes,
		MaxBytes:  m.maxBytes,
	}
}
