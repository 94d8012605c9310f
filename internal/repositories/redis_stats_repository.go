package repositories

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefixes for usage statistics
	statsKeyPrefix     = "stats:endpoint:"
	statsEndpointIndex = "stats:endpoints"

	fieldRequests        = "requests"
	fieldFailures        = "failures"
	fieldDocuments       = "documents"
	fieldVocabularyTerms = "vocabulary_terms"
	fieldDurationMs      = "duration_ms"
)

// RedisStatsRepository implements StatsRepository using Redis hashes
type RedisStatsRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStatsRepository creates a new Redis-based stats repository.
// keyPrefix namespaces all keys, which lets tests run against a shared server.
func NewRedisStatsRepository(client *redis.Client, keyPrefix string) *RedisStatsRepository {
	return &RedisStatsRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisStatsRepository) endpointKey(endpoint string) string {
	return r.keyPrefix + statsKeyPrefix + endpoint
}

func (r *RedisStatsRepository) indexKey() string {
	return r.keyPrefix + statsEndpointIndex
}

// RecordRequest increments the endpoint counters atomically
func (r *RedisStatsRepository) RecordRequest(ctx context.Context, rec *RequestRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	key := r.endpointKey(rec.Endpoint)

	// Use transaction for atomicity
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, r.indexKey(), rec.Endpoint)
	pipe.HIncrBy(ctx, key, fieldRequests, 1)
	if rec.Failed {
		pipe.HIncrBy(ctx, key, fieldFailures, 1)
	}
	pipe.HIncrBy(ctx, key, fieldDocuments, int64(rec.Documents))
	pipe.HIncrBy(ctx, key, fieldVocabularyTerms, int64(rec.VocabularySize))
	pipe.HIncrByFloat(ctx, key, fieldDurationMs, rec.Duration.Seconds()*1000)

	if _, err := pipe.Exec(ctx); err != nil {
		return NewStatsRepositoryError("record_request", rec.Endpoint, err, "")
	}

	return nil
}

// GetStats reads the counters of every known endpoint
func (r *RedisStatsRepository) GetStats(ctx context.Context) (*UsageStats, error) {
	names, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, NewStatsRepositoryError("get_stats", "", err, "")
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.HGetAll(ctx, r.endpointKey(name))
	}
	if len(names) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, NewStatsRepositoryError("get_stats", "", err, "failed to read endpoint counters")
		}
	}

	endpoints := make([]EndpointStats, 0, len(names))
	for i, name := range names {
		endpoints = append(endpoints, parseEndpointStats(name, cmds[i].Val()))
	}

	return newUsageStats("redis", endpoints), nil
}

// Reset deletes every counter
func (r *RedisStatsRepository) Reset(ctx context.Context) error {
	names, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return NewStatsRepositoryError("reset", "", err, "")
	}

	keys := make([]string, 0, len(names)+1)
	for _, name := range names {
		keys = append(keys, r.endpointKey(name))
	}
	keys = append(keys, r.indexKey())

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return NewStatsRepositoryError("reset", "", err, "")
	}
	return nil
}

// Ping checks if Redis is alive
func (r *RedisStatsRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (r *RedisStatsRepository) Close() error {
	return r.client.Close()
}

// parseEndpointStats converts a Redis hash into counters.
// Missing or malformed fields read as zero.
func parseEndpointStats(endpoint string, fields map[string]string) EndpointStats {
	parseInt := func(field string) int64 {
		v, _ := strconv.ParseInt(fields[field], 10, 64)
		return v
	}
	duration, _ := strconv.ParseFloat(fields[fieldDurationMs], 64)

	return EndpointStats{
		Endpoint:        endpoint,
		Requests:        parseInt(fieldRequests),
		Failures:        parseInt(fieldFailures),
		Documents:       parseInt(fieldDocuments),
		VocabularyTerms: parseInt(fieldVocabularyTerms),
		TotalDurationMs: duration,
	}
}
