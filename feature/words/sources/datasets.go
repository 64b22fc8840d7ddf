package sources

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"grimoire/core/storage"
	"grimoire/core/utils"
	"grimoire/feature/words/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dataset object names inside the bucket.
const (
	ObjectCEFR           = "datasets/cefr.json"
	ObjectFrequency      = "datasets/frequency.txt"
	ObjectPronunciations = "datasets/cmudict.txt"
	ObjectRelations      = "datasets/relations.json"
	ObjectWords          = "datasets/words.txt"
)

// DatasetObjects lists every dataset the best-effort sources read.
var DatasetObjects = []string{
	ObjectCEFR,
	ObjectFrequency,
	ObjectPronunciations,
	ObjectRelations,
	ObjectWords,
}

// Dataset origins.
const (
	OriginBucket  = "bucket"
	OriginBuiltin = "builtin"
)

//go:embed data
var builtin embed.FS

// Builtin returns the embedded default of a dataset object.
func Builtin(object string) ([]byte, error) {
	return builtin.ReadFile("data/" + path.Base(object))
}

// Relations are the lexical relations of one headword.
type Relations struct {
	Synonyms    []string `json:"synonyms"`
	Antonyms    []string `json:"antonyms"`
	Derivatives []string `json:"derivatives"`
	Hypernyms   []string `json:"hypernyms"`
	Hyponyms    []string `json:"hyponyms"`
	AlsoSee     []string `json:"also_see"`
}

// Datasets holds the parsed reference data of the best-effort sources.
type Datasets struct {
	CEFR           map[string]models.CEFRLevel
	Frequency      map[string]int
	Pronunciations map[string][]string
	Relations      map[string]Relations
	Words          []string
	// Origins records where each object was loaded from.
	Origins map[string]string
}

// LoadDatasets reads every dataset from the bucket, concurrently.
// Objects that are missing, unreadable or malformed fall back to the embedded
// defaults; a nil client loads the defaults only.
func LoadDatasets(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) (*Datasets, error) {
	ds := &Datasets{Origins: make(map[string]string)}
	var mu sync.Mutex

	load := func(object string, parse func([]byte) error) func() error {
		return func() error {
			if client != nil {
				data, err := storage.ReadObject(ctx, client, bucket, object)
				if err == nil {
					if err = parse(data); err == nil {
						mu.Lock()
						ds.Origins[object] = OriginBucket
						mu.Unlock()
						return nil
					}
					logger.Warn("Malformed dataset in bucket, using builtin", zap.String("object", object), zap.Error(err))
				} else if storage.IsNotFound(err) {
					logger.Info("Dataset not in bucket, using builtin", zap.String("object", object))
				} else {
					logger.Warn("Failed to read dataset, using builtin", zap.String("object", object), zap.Error(err))
				}
			}

			data, err := Builtin(object)
			if err != nil {
				return fmt.Errorf("builtin dataset %s: %w", object, err)
			}
			if err := parse(data); err != nil {
				return fmt.Errorf("builtin dataset %s: %w", object, err)
			}
			mu.Lock()
			ds.Origins[object] = OriginBuiltin
			mu.Unlock()
			return nil
		}
	}

	var g errgroup.Group
	g.Go(load(ObjectCEFR, func(b []byte) (err error) { ds.CEFR, err = ParseCEFR(b); return }))
	g.Go(load(ObjectFrequency, func(b []byte) (err error) { ds.Frequency, err = ParseFrequency(b); return }))
	g.Go(load(ObjectPronunciations, func(b []byte) (err error) { ds.Pronunciations, err = ParsePronunciations(b); return }))
	g.Go(load(ObjectRelations, func(b []byte) (err error) { ds.Relations, err = ParseRelations(b); return }))
	g.Go(load(ObjectWords, func(b []byte) (err error) { ds.Words, err = ParseWordList(b); return }))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

// ParseCEFR decodes {"word": "B1"} maps, skipping unknown levels.
func ParseCEFR(data []byte) (map[string]models.CEFRLevel, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]models.CEFRLevel, len(raw))
	for word, level := range raw {
		lvl := models.CEFRLevel(strings.ToUpper(strings.TrimSpace(level)))
		if lvl.IsValid() {
			out[strings.ToLower(word)] = lvl
		}
	}
	return out, nil
}

// ParseFrequency decodes "word rank" lines. '#' starts a comment.
// The first rank seen for a word wins.
func ParseFrequency(data []byte) (map[string]int, error) {
	out := make(map[string]int)
	err := eachLine(data, "#", func(n int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected 'word rank'", n)
		}
		rank, ok := utils.ToInt(fields[1])
		if !ok || rank < 1 {
			return fmt.Errorf("line %d: invalid rank %q", n, fields[1])
		}
		word := strings.ToLower(fields[0])
		if _, seen := out[word]; !seen {
			out[word] = rank
		}
		return nil
	})
	return out, err
}

// ParsePronunciations decodes CMU dictionary lines, keeping the first
// pronunciation of every word. Alternates are marked WORD(1), WORD(2)...
func ParsePronunciations(data []byte) (map[string][]string, error) {
	out := make(map[string][]string)
	err := eachLine(data, ";;;", func(n int, line string) error {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected 'WORD PHONES...'", n)
		}
		word := strings.ToLower(fields[0])
		if strings.HasSuffix(word, ")") {
			return nil
		}
		if _, seen := out[word]; !seen {
			out[word] = fields[1:]
		}
		return nil
	})
	return out, err
}

// ParseRelations decodes the lexical relations map.
func ParseRelations(data []byte) (map[string]Relations, error) {
	var raw map[string]Relations
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]Relations, len(raw))
	for word, rel := range raw {
		out[strings.ToLower(word)] = rel
	}
	return out, nil
}

// ParseWordList decodes one word per line.
func ParseWordList(data []byte) ([]string, error) {
	var out []string
	err := eachLine(data, "#", func(_ int, line string) error {
		out = append(out, strings.ToLower(line))
		return nil
	})
	return out, err
}

func eachLine(data []byte, comment string, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, comment) {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}
