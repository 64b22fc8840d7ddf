package words

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grimoire/feature/words/models"
	"grimoire/feature/words/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidWord is returned for input that is not a single English word.
	ErrInvalidWord = errors.New("invalid word format")
	// ErrInvalidRelationship is returned for an unknown relationship filter.
	ErrInvalidRelationship = errors.New("invalid relationship type")
)

// Suggestion search bounds.
const (
	suggestionDistance = 2
	suggestionLimit    = 3
)

// Status tells whether a lookup produced a word.
type Status string

const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
)

// Cache statuses reported in the X-Cache-Status header.
const (
	CacheHit  = "HIT"
	CacheMiss = "MISS"
)

// LookupResult is the outcome of a lookup. Record is set when Status is
// StatusFound; Suggestions when it is StatusNotFound.
type LookupResult struct {
	Status      Status
	Record      *models.WordRecord
	Suggestions []string
	CacheStatus string
	// Persisted is false when the record was enriched but could not be stored.
	Persisted bool
}

// Enricher builds a word record from the data sources.
type Enricher interface {
	Enrich(ctx context.Context, word string) (*models.WordRecord, error)
}

// Store is the persistence the service needs.
type Store interface {
	GetByText(ctx context.Context, text string) (*models.WordRow, error)
	Create(ctx context.Context, record *models.WordRecord) (*models.WordRow, error)
	Replace(ctx context.Context, record *models.WordRecord) (*models.WordRow, error)
	Delete(ctx context.Context, text string) (bool, error)
	ListRelated(ctx context.Context, wordID uint, relType models.RelationshipType) ([]models.RelatedWordRow, error)
}

// Dictionary suggests spellings and learns new words.
type Dictionary interface {
	Suggest(word string, maxDistance, limit int) []string
	Add(word string)
}

// Service orchestrates word lookups across cache, database and enrichment.
type Service struct {
	enricher Enricher
	store    Store
	cache    *WordCache
	dict     Dictionary
	logger   *zap.Logger
	group    singleflight.Group
}

// NewService creates a new word service.
func NewService(enricher Enricher, store Store, cache *WordCache, dict Dictionary, logger *zap.Logger) *Service {
	return &Service{
		enricher: enricher,
		store:    store,
		cache:    cache,
		dict:     dict,
		logger:   logger,
	}
}

// Normalize lowercases and trims a word and checks its shape.
// The result never shares memory with word: fiber path params point into a
// request buffer that is reused, and normalized words outlive the request.
func Normalize(word string) (string, error) {
	w := strings.Clone(strings.ToLower(strings.TrimSpace(word)))
	if !models.WordPattern.MatchString(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return w, nil
}

// Lookup returns the record of word, enriching and storing it on first use.
// A word no source can describe is a StatusNotFound result, not an error;
// errors mean invalid input or an unreachable database.
func (s *Service) Lookup(ctx context.Context, word string) (*LookupResult, error) {
	w, err := Normalize(word)
	if err != nil {
		return nil, err
	}

	if record, ok := s.cache.Get(ctx, w); ok {
		return &LookupResult{Status: StatusFound, Record: record, CacheStatus: CacheHit, Persisted: true}, nil
	}

	row, err := s.store.GetByText(ctx, w)
	switch {
	case err == nil:
		record := row.ToRecord()
		s.cache.Set(ctx, record)
		return &LookupResult{Status: StatusFound, Record: record, CacheStatus: CacheMiss, Persisted: true}, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if s.cache.IsFailed(ctx, w) {
		return s.notFound(w), nil
	}

	// One enrichment per word; later callers share the first one's result.
	v, err, shared := s.group.Do(w, func() (any, error) {
		return s.enrichAndStore(context.WithoutCancel(ctx), w), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Shared in-flight enrichment", zap.String("word", w))
	}
	res := *v.(*LookupResult)
	return &res, nil
}

func (s *Service) enrichAndStore(ctx context.Context, word string) *LookupResult {
	record, err := s.enricher.Enrich(ctx, word)
	if err != nil {
		s.logger.Warn("Enrichment failed", zap.String("word", word), zap.Error(err))
		s.cache.MarkFailed(ctx, word)
		return s.notFound(word)
	}

	if _, err := s.store.Create(ctx, record); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			s.logger.Error("Failed to persist enriched word", zap.String("word", word), zap.Error(err))
			return &LookupResult{Status: StatusFound, Record: record, CacheStatus: CacheMiss, Persisted: false}
		}
		row, err := s.store.GetByText(ctx, word)
		if err != nil {
			s.logger.Error("Failed to reload concurrently stored word", zap.String("word", word), zap.Error(err))
			return &LookupResult{Status: StatusFound, Record: record, CacheStatus: CacheMiss, Persisted: false}
		}
		record = row.ToRecord()
	}

	s.cache.Set(ctx, record)
	s.dict.Add(word)
	return &LookupResult{Status: StatusFound, Record: record, CacheStatus: CacheMiss, Persisted: true}
}

func (s *Service) notFound(word string) *LookupResult {
	return &LookupResult{
		Status:      StatusNotFound,
		Suggestions: s.dict.Suggest(word, suggestionDistance, suggestionLimit),
		CacheStatus: CacheMiss,
	}
}

// Refresh re-enriches word and replaces whatever is stored. When enrichment
// fails the stored record is left untouched and a StatusNotFound result is returned.
func (s *Service) Refresh(ctx context.Context, word string) (*LookupResult, error) {
	w, err := Normalize(word)
	if err != nil {
		return nil, err
	}

	v, err, _ := s.group.Do("refresh:"+w, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		record, err := s.enricher.Enrich(ctx, w)
		if err != nil {
			s.logger.Warn("Refresh enrichment failed", zap.String("word", w), zap.Error(err))
			return s.notFound(w), nil
		}
		if _, err := s.store.Replace(ctx, record); err != nil {
			return nil, err
		}
		s.cache.ClearFailed(ctx, w)
		s.cache.Set(ctx, record)
		s.dict.Add(w)
		return &LookupResult{Status: StatusFound, Record: record, CacheStatus: CacheMiss, Persisted: true}, nil
	})
	if err != nil {
		return nil, err
	}
	res := *v.(*LookupResult)
	return &res, nil
}

// Delete removes word from the database and the cache.
func (s *Service) Delete(ctx context.Context, word string) (bool, error) {
	w, err := Normalize(word)
	if err != nil {
		return false, err
	}
	deleted, err := s.store.Delete(ctx, w)
	if err != nil {
		return false, err
	}
	s.cache.Evict(ctx, w)
	return deleted, nil
}

// RelatedResult is the outcome of a relation query.
type RelatedResult struct {
	Status      Status
	Word        string
	Related     []models.RelatedWord
	Suggestions []string
}

// Related returns the relations of word, optionally of one type.
// The word is looked up first, so unknown words are enriched.
func (s *Service) Related(ctx context.Context, word string, relType models.RelationshipType) (*RelatedResult, error) {
	if relType != "" && !relType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRelationship, relType)
	}

	res, err := s.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}
	if res.Status == StatusNotFound {
		return &RelatedResult{Status: StatusNotFound, Suggestions: res.Suggestions}, nil
	}
	out := &RelatedResult{Status: StatusFound, Word: res.Record.Word, Related: []models.RelatedWord{}}

	row, err := s.store.GetByText(ctx, res.Record.Word)
	if errors.Is(err, repository.ErrNotFound) {
		for _, rel := range res.Record.RelatedWords {
			if relType == "" || rel.Relationship == relType {
				out.Related = append(out.Related, rel)
			}
		}
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ListRelated(ctx, row.ID, relType)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		rel := models.RelatedWord{
			Word:         r.TargetText,
			Relationship: models.RelationshipType(r.RelationshipType),
			UsageNotes:   r.UsageNotes,
		}
		if r.Strength != nil {
			rel.Strength = *r.Strength
		}
		out.Related = append(out.Related, rel)
	}
	return out, nil
}
