package cache

import "time"

type CacheStats struct {
	Reads     int
	SizeBytes int
	Created   time.Time
}

type Summary struct {
	Entries   int
	UsedBytes int
	MaxBytes  int
}
