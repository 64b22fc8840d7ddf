package words

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"grimoire/core/cache"
	"grimoire/core/database"
	"grimoire/core/middleware/metrics"
	"grimoire/feature/words/models"
	"grimoire/feature/words/repository"
	"grimoire/feature/words/spelling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEnricher struct {
	records map[string]*models.WordRecord
	delay   time.Duration
	calls   atomic.Int32
}

func (s *stubEnricher) Enrich(ctx context.Context, word string) (*models.WordRecord, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	r, ok := s.records[word]
	if !ok {
		return nil, errors.New("no definitions")
	}
	cp := *r
	return &cp, nil
}

func testRecord(word string, rank int) *models.WordRecord {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := &models.WordRecord{
		Word:     word,
		Language: "en",
		Phonetic: &models.Phonetic{IPA: "/" + word + "/"},
		Definitions: []models.Definition{{
			PartOfSpeech: models.Noun,
			Definition:   "A definition of the word " + word + ".",
			Examples:     []models.UsageExample{{ExampleText: "I saw a " + word + " today.", ContextType: models.ContextCasual}},
		}},
		GrammaticalInfo: &models.GrammaticalInfo{PartOfSpeech: "noun", PluralForm: word + "s"},
		LearningMetadata: &models.LearningMetadata{
			DifficultyLevel: models.A1,
			CEFRLevel:       models.A1,
			FrequencyRank:   rank,
			FrequencyBand:   models.BandForRank(rank),
			StyleTags:       []string{},
		},
		RelatedWords: []models.RelatedWord{
			{Word: "feline", Relationship: models.Synonym, Strength: 0.9},
			{Word: "kitten", Relationship: models.Hyponym, UsageNotes: "A young one", Strength: 0.75},
		},
		LastEnrichedAt: &at,
	}
	r.DataCompleteness = models.Completeness(r)
	return r
}

type fixture struct {
	service  *Service
	enricher *stubEnricher
	repo     *repository.Repository
	memory   *cache.Memory
	keys     cache.Keys
	dict     *spelling.Dictionary
	metrics  *metrics.Metrics
}

func cacheConfig() cache.Config {
	return cache.Config{
		Namespace:           "grimoire",
		WordTTLSeconds:      2592000,
		FailedTTLSeconds:    3600,
		CommonRankThreshold: 5000,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	f := &fixture{
		enricher: &stubEnricher{records: map[string]*models.WordRecord{
			"cat":         testRecord("cat", 50),
			"serendipity": testRecord("serendipity", 20000),
		}},
		repo:   repository.New(db),
		memory: cache.NewMemory(),
		keys:   cache.Keys{Namespace: "grimoire"},
		dict:   spelling.New([]string{"cat", "cot", "hat"}),
	}
	wc := NewWordCache(f.memory, cacheConfig(), zap.NewNop())
	f.service = NewService(f.enricher, f.repo, wc, f.dict, zap.NewNop())
	return f
}

func TestLookupFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.service.Lookup(ctx, "  Cat ")
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)
	assert.Equal(t, CacheMiss, res.CacheStatus)
	assert.True(t, res.Persisted)
	assert.Equal(t, "cat", res.Record.Word)

	hit1, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, CacheHit, hit1.CacheStatus)
	hit2, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)

	b1, err := json.Marshal(hit1.Record)
	require.NoError(t, err)
	b2, err := json.Marshal(hit2.Record)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))
	assert.EqualValues(t, 1, f.enricher.calls.Load())

	// Evicted from the cache, the word comes back from the database.
	require.NoError(t, f.memory.Delete(ctx, f.keys.Word("cat")))
	fromDB, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, CacheMiss, fromDB.CacheStatus)
	assert.Equal(t, res.Record.Definitions, fromDB.Record.Definitions)
	assert.Equal(t, res.Record.RelatedWords, fromDB.Record.RelatedWords)
	assert.Equal(t, res.Record.DataCompleteness, fromDB.Record.DataCompleteness)
	assert.EqualValues(t, 1, f.enricher.calls.Load())
	_, cached := f.memory.TTL(f.keys.Word("cat"))
	assert.True(t, cached)
}

func TestLookupTTLPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)
	ttl, ok := f.memory.TTL(f.keys.Word("cat"))
	require.True(t, ok)
	assert.Zero(t, ttl)

	_, err = f.service.Lookup(ctx, "serendipity")
	require.NoError(t, err)
	ttl, ok = f.memory.TTL(f.keys.Word("serendipity"))
	require.True(t, ok)
	assert.InDelta(t, (30 * 24 * time.Hour).Seconds(), ttl.Seconds(), 5)
}

func TestLookupNotFoundIsMemoized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.service.Lookup(ctx, "cta")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
	assert.Nil(t, res.Record)
	// hat is three edits away.
	assert.Equal(t, []string{"cat", "cot"}, res.Suggestions)

	ttl, ok := f.memory.TTL(f.keys.Failed("cta"))
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	res, err = f.service.Lookup(ctx, "cta")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
	assert.EqualValues(t, 1, f.enricher.calls.Load())
}

func TestLookupInvalidWord(t *testing.T) {
	f := newFixture(t)
	for _, w := range []string{"", "hello world", "abc123", "-cat", "cat-", "c--t"} {
		_, err := f.service.Lookup(context.Background(), w)
		assert.ErrorIs(t, err, ErrInvalidWord, w)
	}
	assert.Zero(t, f.enricher.calls.Load())

	w, err := Normalize("Well-Known")
	require.NoError(t, err)
	assert.Equal(t, "well-known", w)
}

func TestLookupDeduplicatesConcurrentEnrichment(t *testing.T) {
	f := newFixture(t)
	f.enricher.delay = 100 * time.Millisecond

	var wg sync.WaitGroup
	results := make([]*LookupResult, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := f.service.Lookup(context.Background(), "serendipity")
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, f.enricher.calls.Load())
	for _, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, StatusFound, res.Status)
		assert.Equal(t, "serendipity", res.Record.Word)
	}
	assert.True(t, f.dict.Contains("serendipity"))
}

func TestLookupSurvivesCallerCancellation(t *testing.T) {
	f := newFixture(t)
	f.enricher.delay = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	res, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)
	assert.True(t, res.Persisted)

	_, err = f.repo.GetByText(context.Background(), "cat")
	assert.NoError(t, err)
}

type failingStore struct {
	*repository.Repository
	createErr error
	getErr    error
}

func (s *failingStore) Create(ctx context.Context, r *models.WordRecord) (*models.WordRow, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.Repository.Create(ctx, r)
}

func (s *failingStore) GetByText(ctx context.Context, text string) (*models.WordRow, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.Repository.GetByText(ctx, text)
}

func TestLookupPersistFailure(t *testing.T) {
	f := newFixture(t)
	store := &failingStore{Repository: f.repo, createErr: errors.New("disk full")}
	svc := NewService(f.enricher, store, NewWordCache(f.memory, cacheConfig(), zap.NewNop()), f.dict, zap.NewNop())

	res, err := svc.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)
	assert.False(t, res.Persisted)
	assert.Equal(t, "cat", res.Record.Word)

	_, cached := f.memory.TTL(f.keys.Word("cat"))
	assert.False(t, cached)

	_, err = svc.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.enricher.calls.Load())
}

func TestLookupDuplicateReloadsStoredWord(t *testing.T) {
	f := newFixture(t)
	stored := testRecord("cat", 50)
	stored.Definitions[0].Definition = "The version stored by another instance."
	_, err := f.repo.Create(context.Background(), stored)
	require.NoError(t, err)

	// The database read misses, as if the other insert landed after it.
	store := &duplicateStore{Repository: f.repo}
	svc := NewService(f.enricher, store, NewWordCache(f.memory, cacheConfig(), zap.NewNop()), f.dict, zap.NewNop())

	res, err := svc.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	assert.True(t, res.Persisted)
	assert.Equal(t, "The version stored by another instance.", res.Record.Definitions[0].Definition)
}

type duplicateStore struct {
	*repository.Repository
	reads atomic.Int32
}

func (s *duplicateStore) GetByText(ctx context.Context, text string) (*models.WordRow, error) {
	if s.reads.Add(1) == 1 {
		return nil, repository.ErrNotFound
	}
	return s.Repository.GetByText(ctx, text)
}

func TestLookupDatabaseError(t *testing.T) {
	f := newFixture(t)
	store := &failingStore{Repository: f.repo, getErr: errors.New("connection refused")}
	svc := NewService(f.enricher, store, NewWordCache(f.memory, cacheConfig(), zap.NewNop()), f.dict, zap.NewNop())

	_, err := svc.Lookup(context.Background(), "cat")
	assert.ErrorContains(t, err, "connection refused")
	assert.Zero(t, f.enricher.calls.Load())
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache down")
}
func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache down")
}
func (brokenCache) Exists(context.Context, string) (bool, error) { return false, errors.New("cache down") }
func (brokenCache) Delete(context.Context, string) error         { return errors.New("cache down") }
func (brokenCache) Ping(context.Context) error                   { return errors.New("cache down") }
func (brokenCache) Close() error                                 { return nil }

func TestLookupWithCacheDown(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.enricher, f.repo, NewWordCache(brokenCache{}, cacheConfig(), zap.NewNop()), f.dict, zap.NewNop())

	res, err := svc.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)

	res, err = svc.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, CacheMiss, res.CacheStatus)
	assert.EqualValues(t, 1, f.enricher.calls.Load())
}

func TestRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)

	updated := testRecord("cat", 50)
	updated.Definitions[0].Definition = "A refreshed definition of cat."
	f.enricher.records["cat"] = updated

	res, err := f.service.Refresh(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)

	hit, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, CacheHit, hit.CacheStatus)
	assert.Equal(t, "A refreshed definition of cat.", hit.Record.Definitions[0].Definition)

	row, err := f.repo.GetByText(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, "A refreshed definition of cat.", row.Definitions[0].DefinitionText)

	delete(f.enricher.records, "cat")
	res, err = f.service.Refresh(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
	_, err = f.repo.GetByText(ctx, "cat")
	assert.NoError(t, err)
}

func TestRefreshClearsFailedMarker(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Lookup(ctx, "dog")
	require.NoError(t, err)
	f.enricher.records["dog"] = testRecord("dog", 300)

	res, err := f.service.Refresh(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)
	_, failed := f.memory.TTL(f.keys.Failed("dog"))
	assert.False(t, failed)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Lookup(ctx, "cat")
	require.NoError(t, err)

	deleted, err := f.service.Delete(ctx, "cat")
	require.NoError(t, err)
	assert.True(t, deleted)
	_, cached := f.memory.TTL(f.keys.Word("cat"))
	assert.False(t, cached)

	deleted, err = f.service.Delete(ctx, "cat")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRelated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.service.Related(ctx, "cat", "")
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)
	require.Len(t, res.Related, 2)
	assert.Equal(t, "feline", res.Related[0].Word)
	assert.Equal(t, 0.9, res.Related[0].Strength)

	res, err = f.service.Related(ctx, "cat", models.Hyponym)
	require.NoError(t, err)
	require.Len(t, res.Related, 1)
	assert.Equal(t, "kitten", res.Related[0].Word)

	_, err = f.service.Related(ctx, "cat", "cousin")
	assert.ErrorIs(t, err, ErrInvalidRelationship)

	res, err = f.service.Related(ctx, "cta", "")
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, res.Status)
}
