package cmd

import (
	"context"
	"fmt"
	"time"

	"grimoire/core/cache"
	"grimoire/core/config"
	"grimoire/core/middleware/metrics"
	"grimoire/core/storage"
	"grimoire/feature/words"
	"grimoire/feature/words/enrichment"
	"grimoire/feature/words/repository"
	"grimoire/feature/words/sources"
	"grimoire/feature/words/spelling"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newWordService wires the lookup orchestrator: datasets from the bucket,
// the five sources, the merge engine, the spelling dictionary and the cache.
func newWordService(ctx context.Context, cfg *config.Config, logg *zap.Logger, db *gorm.DB, store cache.Store, client storage.Client, m *metrics.Metrics) (*words.Service, error) {
	ds, err := sources.LoadDatasets(ctx, client, cfg.Storage.Bucket, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}

	completer, err := sources.NewAnthropicCompleter(cfg.Generative)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative source: %w", err)
	}

	engine := enrichment.NewEngine(enrichment.Sources{
		Generative:    sources.NewGenerative(completer, logg),
		Lexical:       sources.NewLexical(ds.Relations),
		Pronunciation: sources.NewPronunciation(ds.Pronunciations),
		Difficulty:    sources.NewDifficulty(ds.CEFR),
		Frequency:     sources.NewFrequency(ds.Frequency),
	}, cfg.Enrichment, logg, m)

	repo := repository.New(db)
	dict := spelling.New(ds.Words)
	// Words enriched by earlier runs are valid suggestions too.
	stored, err := repo.Words(ctx)
	if err != nil {
		logg.Warn("Failed to seed spelling dictionary from database", zap.Error(err))
	}
	for _, w := range stored {
		dict.Add(w)
	}

	logg.Info("Word service ready",
		zap.Int("dictionary", dict.Len()),
		zap.Any("datasets", ds.Origins),
	)

	return words.NewService(engine, repo, words.NewWordCache(store, cfg.Cache, logg), dict, logg), nil
}

// ctxTimeout bounds CLI commands that do not block on signals.
func ctxTimeout(parent context.Context, seconds int) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, time.Duration(seconds)*time.Second)
}
