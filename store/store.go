package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrewpaige1/galaxymap-api/logger"
	"github.com/andrewpaige1/galaxymap-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Logical document keys. Each key holds one whole JSON collection.
const (
	KeyAutoResources = "resources"
	KeyUserResources = "user-resources"
	KeyThreads       = "threads"
	KeyBookmarks     = "user-bookmarks"
)

// Store persists whole JSON documents under logical keys in a single
// gorm-managed table. Read and write faults are returned to the caller,
// never swallowed.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Store {
	return &Store{db: db, log: log.With("component", "store")}
}

// Load unmarshals the document stored under key into out. A missing
// document leaves out untouched so callers start from their zero value.
// A document that no longer parses is treated the same way.
func (s *Store) Load(ctx context.Context, key string, out any) error {
	var doc models.Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load document %q: %w", key, err)
	}
	if err := json.Unmarshal(doc.Data, out); err != nil {
		s.log.Warn("Load: document is not valid JSON, starting empty", "key", key, "error", err)
		return nil
	}
	return nil
}

// Save marshals v and rewrites the document under key in full.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal document %q: %w", key, err)
	}
	doc := models.Document{Key: key, Data: data}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	s.log.Debug("Save: wrote document", "key", key, "bytes", len(data))
	return nil
}
