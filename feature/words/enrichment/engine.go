package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"grimoire/core/middleware/metrics"
	"grimoire/feature/words/models"
	"grimoire/feature/words/sources"

	"go.uber.org/zap"
)

// ErrAuthoritativeSource is returned when the generative source fails.
var ErrAuthoritativeSource = errors.New("authoritative source failed")

const defaultLanguage = "en"

// Sources are the providers consulted by the engine. Nil best-effort
// sources are skipped.
type Sources struct {
	Generative    sources.Source
	Lexical       sources.Source
	Pronunciation sources.Source
	Difficulty    sources.Source
	Frequency     sources.Source
}

// Engine fetches every source concurrently and merges their answers.
type Engine struct {
	sources Sources
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewEngine creates a new enrichment engine. m records per-source fetch
// durations and may be nil.
func NewEngine(srcs Sources, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Engine {
	if cfg.SourceTimeoutSeconds <= 0 {
		cfg.SourceTimeoutSeconds = 5
	}
	if cfg.GenerativeTimeoutSeconds <= 0 {
		cfg.GenerativeTimeoutSeconds = 60
	}
	if cfg.MaxRelatedWords <= 0 {
		cfg.MaxRelatedWords = 15
	}
	return &Engine{sources: srcs, cfg: cfg, logger: logger, metrics: m, now: time.Now}
}

type fetched struct {
	generative    *sources.Partial
	lexical       *sources.Partial
	pronunciation *sources.Partial
	difficulty    *sources.Partial
	frequency     *sources.Partial
}

// Enrich builds a validated record for a normalized word.
func (e *Engine) Enrich(ctx context.Context, word string) (*models.WordRecord, error) {
	if e.sources.Generative == nil {
		return nil, fmt.Errorf("%w: no generative source configured", ErrAuthoritativeSource)
	}
	start := e.now()

	var (
		f      fetched
		genErr error
		wg     sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		f.generative, genErr = e.fetch(ctx, e.sources.Generative, word, time.Duration(e.cfg.GenerativeTimeoutSeconds)*time.Second)
	}()

	bestEffort := []struct {
		src  sources.Source
		dest **sources.Partial
	}{
		{e.sources.Lexical, &f.lexical},
		{e.sources.Pronunciation, &f.pronunciation},
		{e.sources.Difficulty, &f.difficulty},
		{e.sources.Frequency, &f.frequency},
	}
	timeout := time.Duration(e.cfg.SourceTimeoutSeconds) * time.Second
	for _, be := range bestEffort {
		if be.src == nil {
			continue
		}
		wg.Add(1)
		go func(src sources.Source, dest **sources.Partial) {
			defer wg.Done()
			p, err := e.fetch(ctx, src, word, timeout)
			if err != nil {
				e.logger.Warn("Best-effort source failed",
					zap.String("source", src.Name()),
					zap.String("word", word),
					zap.Error(err))
				return
			}
			*dest = p
		}(be.src, be.dest)
	}

	wg.Wait()

	if genErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthoritativeSource, genErr)
	}

	record := e.merge(word, &f)
	if err := Validate(record); err != nil {
		return nil, err
	}

	e.logger.Info("Word enriched",
		zap.String("word", word),
		zap.Int("definitions", len(record.Definitions)),
		zap.Int("related_words", len(record.RelatedWords)),
		zap.Int("completeness", record.DataCompleteness.CompletenessPercentage),
		zap.Duration("duration", e.now().Sub(start)))

	return record, nil
}

func (e *Engine) fetch(ctx context.Context, src sources.Source, word string, timeout time.Duration) (*sources.Partial, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := e.now()
	p, err := src.Fetch(ctx, word)
	e.metrics.ObserveSource(src.Name(), e.now().Sub(start), err)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &sources.Partial{}
	}
	return p, nil
}

func orEmpty(p *sources.Partial) *sources.Partial {
	if p == nil {
		return &sources.Partial{}
	}
	return p
}

func (e *Engine) merge(word string, f *fetched) *models.WordRecord {
	gen := orEmpty(f.generative)
	lex := orEmpty(f.lexical)
	pron := orEmpty(f.pronunciation)
	diff := orEmpty(f.difficulty)
	freq := orEmpty(f.frequency)

	enrichedAt := e.now().UTC()
	record := &models.WordRecord{
		Word:           word,
		Language:       defaultLanguage,
		Definitions:    make([]models.Definition, 0, len(gen.Definitions)),
		LastEnrichedAt: &enrichedAt,
	}

	switch {
	case gen.Phonetic != nil && gen.Phonetic.IPA != "":
		record.Phonetic = gen.Phonetic
	case pron.Phonetic != nil && pron.Phonetic.IPA != "":
		record.Phonetic = pron.Phonetic
	default:
		e.logger.Warn("No phonetic transcription available", zap.String("word", word))
	}

	for _, d := range gen.Definitions {
		record.Definitions = append(record.Definitions, models.Definition{
			PartOfSpeech: d.PartOfSpeech,
			Definition:   strings.TrimSpace(d.Text),
			UsageContext: d.UsageContext,
			Examples:     processExamples(d.Examples, word),
		})
	}

	if gen.Grammar != nil {
		grammar := *gen.Grammar
		DetectIrregularities(word, &grammar)
		record.GrammaticalInfo = &grammar
	}

	record.RelatedWords = mergeRelated(word, gen.Related, lex.Related, e.cfg.MaxRelatedWords)
	record.LearningMetadata = mergeMetadata(gen, diff, freq)

	return record
}

func mergeMetadata(gen, diff, freq *sources.Partial) *models.LearningMetadata {
	m := &models.LearningMetadata{
		FrequencyRank: freq.FrequencyRank,
		FrequencyBand: freq.FrequencyBand,
		StyleTags:     gen.StyleTags,
	}
	if m.StyleTags == nil {
		m.StyleTags = []string{}
	}
	if m.FrequencyRank > 0 && m.FrequencyBand == "" {
		m.FrequencyBand = models.BandForRank(m.FrequencyRank)
	}

	switch {
	case diff.CEFRLevel.IsValid():
		m.CEFRLevel = diff.CEFRLevel
	case gen.CEFRLevel.IsValid():
		m.CEFRLevel = gen.CEFRLevel
	case m.FrequencyRank > 0:
		m.CEFRLevel = models.CEFRForRank(m.FrequencyRank)
	}
	m.DifficultyLevel = m.CEFRLevel

	return m
}
