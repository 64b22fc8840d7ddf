package sources

import (
	"context"

	"grimoire/feature/words/models"
)

// Difficulty serves curated CEFR levels.
type Difficulty struct {
	levels map[string]models.CEFRLevel
}

func NewDifficulty(levels map[string]models.CEFRLevel) *Difficulty {
	return &Difficulty{levels: levels}
}

func (d *Difficulty) Name() string { return NameDifficulty }

var difficultyFields = fieldSet("difficulty_level", "cefr_level", "difficulty", "cefr")

func (d *Difficulty) SupportsField(field string) bool { return supports(difficultyFields, field) }

func (d *Difficulty) Fetch(ctx context.Context, word string) (*Partial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Partial{CEFRLevel: d.levels[word]}, nil
}
