package words

import (
	"context"
	"encoding/json"
	"time"

	"grimoire/core/cache"
	"grimoire/feature/words/models"

	"go.uber.org/zap"
)

// failedMarker is the value stored under a failed-lookup key.
var failedMarker = []byte("1")

// WordCache stores serialized word records and failed-lookup markers.
// Cache errors are logged and reported as misses so lookups keep working
// while the cache is down.
type WordCache struct {
	store  cache.Store
	keys   cache.Keys
	cfg    cache.Config
	logger *zap.Logger
}

// NewWordCache creates a word cache over store.
func NewWordCache(store cache.Store, cfg cache.Config, logger *zap.Logger) *WordCache {
	return &WordCache{
		store:  store,
		keys:   cache.Keys{Namespace: cfg.Namespace},
		cfg:    cfg,
		logger: logger,
	}
}

// TTLFor returns the expiration of a cached record. Common words never
// expire; everything else lives for the configured word TTL.
func (c *WordCache) TTLFor(r *models.WordRecord) time.Duration {
	if rank := r.FrequencyRank(); rank > 0 && rank <= c.cfg.CommonRankThreshold {
		return 0
	}
	return time.Duration(c.cfg.WordTTLSeconds) * time.Second
}

// Get returns the cached record of word.
func (c *WordCache) Get(ctx context.Context, word string) (*models.WordRecord, bool) {
	data, ok, err := c.store.Get(ctx, c.keys.Word(word))
	if err != nil {
		c.logger.Warn("Cache read failed", zap.String("word", word), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var record models.WordRecord
	if err := json.Unmarshal(data, &record); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", zap.String("word", word), zap.Error(err))
		_ = c.store.Delete(ctx, c.keys.Word(word))
		return nil, false
	}
	return &record, true
}

// Set caches a record using the TTL policy.
func (c *WordCache) Set(ctx context.Context, r *models.WordRecord) {
	data, err := json.Marshal(r)
	if err != nil {
		c.logger.Error("Failed to encode word for cache", zap.String("word", r.Word), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, c.keys.Word(r.Word), data, c.TTLFor(r)); err != nil {
		c.logger.Warn("Cache write failed", zap.String("word", r.Word), zap.Error(err))
	}
}

// IsFailed reports whether word recently failed enrichment.
func (c *WordCache) IsFailed(ctx context.Context, word string) bool {
	ok, err := c.store.Exists(ctx, c.keys.Failed(word))
	if err != nil {
		c.logger.Warn("Cache read failed", zap.String("word", word), zap.Error(err))
		return false
	}
	return ok
}

// MarkFailed memoizes a failed enrichment of word.
func (c *WordCache) MarkFailed(ctx context.Context, word string) {
	ttl := time.Duration(c.cfg.FailedTTLSeconds) * time.Second
	if err := c.store.Set(ctx, c.keys.Failed(word), failedMarker, ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("word", word), zap.Error(err))
	}
}

// Evict removes the record and the failure marker of word.
func (c *WordCache) Evict(ctx context.Context, word string) {
	for _, key := range []string{c.keys.Word(word), c.keys.Failed(word)} {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("Cache delete failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// ClearFailed removes the failure marker of word.
func (c *WordCache) ClearFailed(ctx context.Context, word string) {
	if err := c.store.Delete(ctx, c.keys.Failed(word)); err != nil {
		c.logger.Warn("Cache delete failed", zap.String("word", word), zap.Error(err))
	}
}
