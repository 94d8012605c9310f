package repositories

import (
	"context"
	"sort"
	"time"
)

// StatsRepository records usage of the vectorization endpoints.
// It never stores vocabularies or matrices, only counters.
type StatsRepository interface {
	RecordRequest(ctx context.Context, rec *RequestRecord) error
	GetStats(ctx context.Context) (*UsageStats, error)
	Reset(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close() error
}

// RequestRecord describes one builder invocation
type RequestRecord struct {
	Endpoint       string        `json:"endpoint"`
	Documents      int           `json:"documents"`
	VocabularySize int           `json:"vocabulary_size"`
	Duration       time.Duration `json:"duration"`
	Failed         bool          `json:"failed"`
}

// Validate checks that the record can be stored
func (r *RequestRecord) Validate() error {
	if r.Endpoint == "" {
		return InvalidRecordError("endpoint is required")
	}
	if r.Documents < 0 || r.VocabularySize < 0 {
		return InvalidRecordError("counts cannot be negative")
	}
	return nil
}

// EndpointStats aggregates the records of one endpoint
type EndpointStats struct {
	Endpoint        string  `json:"endpoint"`
	Requests        int64   `json:"requests"`
	Failures        int64   `json:"failures"`
	Documents       int64   `json:"documents"`
	VocabularyTerms int64   `json:"vocabulary_terms"`
	TotalDurationMs float64 `json:"total_duration_ms"`
	AvgDurationMs   float64 `json:"avg_duration_ms"`
}

// UsageStats is a snapshot of all endpoints
type UsageStats struct {
	Backend       string          `json:"backend"`
	TotalRequests int64           `json:"total_requests"`
	Endpoints     []EndpointStats `json:"endpoints"`
}

// newUsageStats sorts endpoints by name and fills derived fields
func newUsageStats(backend string, endpoints []EndpointStats) *UsageStats {
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Endpoint < endpoints[j].Endpoint
	})

	stats := &UsageStats{
		Backend:   backend,
		Endpoints: endpoints,
	}
	for i := range endpoints {
		if endpoints[i].Requests > 0 {
			endpoints[i].AvgDurationMs = endpoints[i].TotalDurationMs / float64(endpoints[i].Requests)
		}
		stats.TotalRequests += endpoints[i].Requests
	}
	return stats
}

// StatsRepositoryError represents errors from the stats repository
type StatsRepositoryError struct {
	Operation string
	Endpoint  string
	Err       error
	Message   string
}

func (e *StatsRepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	prefix := e.Operation
	if e.Endpoint != "" {
		prefix += " (endpoint: " + e.Endpoint + ")"
	}
	if e.Err != nil {
		return prefix + ": " + e.Err.Error()
	}
	return prefix + ": unknown error"
}

func (e *StatsRepositoryError) Unwrap() error {
	return e.Err
}

// NewStatsRepositoryError creates a new stats repository error
func NewStatsRepositoryError(operation string, endpoint string, err error, message string) *StatsRepositoryError {
	return &StatsRepositoryError{
		Operation: operation,
		Endpoint:  endpoint,
		Err:       err,
		Message:   message,
	}
}

// InvalidRecordError reports a record that failed validation
func InvalidRecordError(reason string) error {
	return NewStatsRepositoryError("validate_record", "", nil, "invalid record: "+reason)
}
