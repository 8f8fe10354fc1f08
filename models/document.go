package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is one whole JSON collection (resources, user-resources,
// threads, user-bookmarks) stored under a logical key. Each mutation
// rewrites the full payload, matching the original flat-file layout.
type Document struct {
	Key       string         `gorm:"primaryKey;size:100"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
