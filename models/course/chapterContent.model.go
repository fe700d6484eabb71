package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	resourceModels "lms/models/resource"
)

// ChapterContentLink ties one resource into one chapter at a display position.
// It carries its own UUID identity so reorder requests can address individual
// links regardless of which resource occupies them. The (chapter_id, resource_id)
// pair is unique: a resource appears at most once per chapter.
type ChapterContentLink struct {
	ID         string `json:"id" gorm:"type:varchar(36);primaryKey"`
	ChapterID  uint   `json:"chapter_id" gorm:"not null;uniqueIndex:idx_chapter_resource"`
	ResourceID string `json:"resource_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_chapter_resource"`
	OrderIndex int    `json:"order_index" gorm:"not null"` // position within the chapter, >= 1

	Resource *resourceModels.Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *ChapterContentLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
