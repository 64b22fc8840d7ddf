package sources

import (
	"context"

	"grimoire/feature/words/models"
)

// Frequency serves corpus frequency ranks.
type Frequency struct {
	ranks map[string]int
}

func NewFrequency(ranks map[string]int) *Frequency {
	return &Frequency{ranks: ranks}
}

func (f *Frequency) Name() string { return NameFrequency }

var frequencyFields = fieldSet("frequency_rank", "frequency_band", "frequency")

func (f *Frequency) SupportsField(field string) bool { return supports(frequencyFields, field) }

func (f *Frequency) Fetch(ctx context.Context, word string) (*Partial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rank, ok := f.ranks[word]
	if !ok || rank < 1 {
		return &Partial{}, nil
	}
	return &Partial{FrequencyRank: rank, FrequencyBand: models.BandForRank(rank)}, nil
}
