package cache

import (
	"time"

	"github.com/bobycv06fpm/news-credibility/table"
)

type TableCacheItem struct {
	Table *table.Table

	RtStats *CacheStats
}

func newTableCacheItem(t *table.Table) *TableCacheItem {
	return &TableCacheItem{
		Table: t,
		RtStats: &CacheStats{
			SizeBytes: t.SizeBytes(),
			Created:   time.Now(),
		},
	}
}
