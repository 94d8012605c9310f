package repositories

import (
	"context"
	"sync"
)

// MemoryStatsRepository keeps usage counters in process memory.
// It is used when Redis is not reachable.
type MemoryStatsRepository struct {
	mu        sync.RWMutex
	endpoints map[string]*EndpointStats
}

// NewMemoryStatsRepository creates an empty in-memory stats repository
func NewMemoryStatsRepository() *MemoryStatsRepository {
	return &MemoryStatsRepository{
		endpoints: make(map[string]*EndpointStats),
	}
}

// RecordRequest adds one record to the endpoint counters
func (r *MemoryStatsRepository) RecordRequest(ctx context.Context, rec *RequestRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, exists := r.endpoints[rec.Endpoint]
	if !exists {
		stats = &EndpointStats{Endpoint: rec.Endpoint}
		r.endpoints[rec.Endpoint] = stats
	}

	stats.Requests++
	if rec.Failed {
		stats.Failures++
	}
	stats.Documents += int64(rec.Documents)
	stats.VocabularyTerms += int64(rec.VocabularySize)
	stats.TotalDurationMs += rec.Duration.Seconds() * 1000

	return nil
}

// GetStats returns a snapshot of all endpoint counters
func (r *MemoryStatsRepository) GetStats(ctx context.Context) (*UsageStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	endpoints := make([]EndpointStats, 0, len(r.endpoints))
	for _, stats := range r.endpoints {
		endpoints = append(endpoints, *stats)
	}

	return newUsageStats("memory", endpoints), nil
}

// Reset clears all counters
func (r *MemoryStatsRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints = make(map[string]*EndpointStats)
	return nil
}

// Ping always succeeds
func (r *MemoryStatsRepository) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (r *MemoryStatsRepository) Close() error {
	return nil
}
