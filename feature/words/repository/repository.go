package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grimoire/feature/words/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no word matches.
	ErrNotFound = errors.New("word not found")
	// ErrDuplicate is returned when a word row already exists.
	ErrDuplicate = errors.New("word already exists")
)

// updatableColumns are the word columns UpdateFields may change.
var updatableColumns = map[string]struct{}{
	"language":         {},
	"last_enriched_at": {},
}

// Repository persists word records with gorm.
type Repository struct {
	db *gorm.DB
}

// New creates a new word repository.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate creates or updates every word table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.Entities()...)
}

func orderBy(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Order(column) }
}

// GetByText loads a word with every sub-record.
func (r *Repository) GetByText(ctx context.Context, text string) (*models.WordRow, error) {
	var row models.WordRow
	err := r.db.WithContext(ctx).
		Preload("Definitions", orderBy("order_index")).
		Preload("Definitions.Examples", orderBy("order_index")).
		Preload("Phonetic").
		Preload("Grammar").
		Preload("Metadata").
		Preload("RelatedWords", orderBy(relatedOrder)).
		Where("word_text = ?", text).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load word %q: %w", text, err)
	}
	return &row, nil
}

// Create inserts a record and all sub-records in one transaction.
// ErrDuplicate is returned when the word is already stored.
func (r *Repository) Create(ctx context.Context, record *models.WordRecord) (*models.WordRow, error) {
	row := models.NewWordRow(record, enrichedAt(record))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicate, record.Word)
	}
	if err != nil {
		return nil, fmt.Errorf("create word %q: %w", record.Word, err)
	}
	return row, nil
}

// Replace swaps the stored sub-records of a word for the record's, keeping
// the word id. A word not yet stored is created.
func (r *Repository) Replace(ctx context.Context, record *models.WordRecord) (*models.WordRow, error) {
	row := models.NewWordRow(record, enrichedAt(record))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WordRow
		err := tx.Select("id").Where("word_text = ?", record.Word).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(row).Error
		}
		if err != nil {
			return err
		}

		if err := deleteChildren(tx, existing.ID); err != nil {
			return err
		}
		if err := updateFields(tx, existing.ID, map[string]any{
			"language":         row.Language,
			"last_enriched_at": row.LastEnrichedAt,
		}); err != nil {
			return err
		}

		row.ID = existing.ID
		return createChildren(tx, row)
	})
	if err != nil {
		return nil, fmt.Errorf("replace word %q: %w", record.Word, err)
	}
	return row, nil
}

// UpdateFields changes word-level columns. Only language and
// last_enriched_at may be updated.
func (r *Repository) UpdateFields(ctx context.Context, wordID uint, fields map[string]any) error {
	return updateFields(r.db.WithContext(ctx), wordID, fields)
}

func updateFields(db *gorm.DB, wordID uint, fields map[string]any) error {
	for column := range fields {
		if _, ok := updatableColumns[column]; !ok {
			return fmt.Errorf("column %q cannot be updated", column)
		}
	}
	res := db.Model(&models.WordRow{}).Where("id = ?", wordID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a word and every sub-record. It reports whether a word was removed.
func (r *Repository) Delete(ctx context.Context, text string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WordRow
		err := tx.Select("id").Where("word_text = ?", text).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := deleteChildren(tx, existing.ID); err != nil {
			return err
		}
		if err := tx.Delete(&models.WordRow{}, existing.ID).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete word %q: %w", text, err)
	}
	return deleted, nil
}

// relatedOrder puts the strongest relations first and unscored ones last.
const relatedOrder = "strength IS NULL, strength DESC, id"

// ListRelated returns the relations of a word, optionally of one type.
func (r *Repository) ListRelated(ctx context.Context, wordID uint, relType models.RelationshipType) ([]models.RelatedWordRow, error) {
	q := r.db.WithContext(ctx).Where("word_id = ?", wordID)
	if relType != "" {
		q = q.Where("relationship_type = ?", string(relType))
	}

	var rows []models.RelatedWordRow
	if err := q.Order(relatedOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list related words: %w", err)
	}
	return rows, nil
}

// Count returns the number of stored words.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.WordRow{}).Count(&n).Error
	return n, err
}

// Words returns the text of every stored word, alphabetically.
func (r *Repository) Words(ctx context.Context) ([]string, error) {
	var words []string
	err := r.db.WithContext(ctx).Model(&models.WordRow{}).Order("word_text").Pluck("word_text", &words).Error
	return words, err
}

func deleteChildren(tx *gorm.DB, wordID uint) error {
	definitions := tx.Model(&models.DefinitionRow{}).Select("id").Where("word_id = ?", wordID)
	if err := tx.Where("definition_id IN (?)", definitions).Delete(&models.UsageExampleRow{}).Error; err != nil {
		return err
	}
	for _, child := range []any{
		&models.DefinitionRow{},
		&models.PhoneticRow{},
		&models.GrammarRow{},
		&models.LearningMetadataRow{},
		&models.RelatedWordRow{},
	} {
		if err := tx.Where("word_id = ?", wordID).Delete(child).Error; err != nil {
			return err
		}
	}
	return nil
}

func createChildren(tx *gorm.DB, row *models.WordRow) error {
	for i := range row.Definitions {
		row.Definitions[i].WordID = row.ID
	}
	for i := range row.RelatedWords {
		row.RelatedWords[i].WordID = row.ID
	}

	if len(row.Definitions) > 0 {
		if err := tx.Create(&row.Definitions).Error; err != nil {
			return err
		}
	}
	if len(row.RelatedWords) > 0 {
		if err := tx.Create(&row.RelatedWords).Error; err != nil {
			return err
		}
	}
	if row.Phonetic != nil {
		row.Phonetic.WordID = row.ID
		if err := tx.Create(row.Phonetic).Error; err != nil {
			return err
		}
	}
	if row.Grammar != nil {
		row.Grammar.WordID = row.ID
		if err := tx.Create(row.Grammar).Error; err != nil {
			return err
		}
	}
	if row.Metadata != nil {
		row.Metadata.WordID = row.ID
		if err := tx.Create(row.Metadata).Error; err != nil {
			return err
		}
	}
	return nil
}

func enrichedAt(record *models.WordRecord) time.Time {
	if record.LastEnrichedAt != nil {
		return *record.LastEnrichedAt
	}
	return time.Now().UTC()
}
