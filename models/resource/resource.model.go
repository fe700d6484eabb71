package resource

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resource content types
const (
	TypeText     = "TEXT"
	TypeImage    = "IMAGE"
	TypeVideo    = "VIDEO"
	TypeMarkdown = "MARKDOWN"
	TypeQuiz     = "QUIZ"
	TypeModel3D  = "MODEL3D"
)

// Resource is a reusable piece of course content authored by a teacher.
// The same resource may be linked into chapters of many courses.
type Resource struct {
	ID          string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	TeacherID   uint           `json:"teacher_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Type        string         `json:"type" gorm:"default:'TEXT'"` // TEXT, IMAGE, VIDEO, MARKDOWN, QUIZ, MODEL3D
	ContentData datatypes.JSON `json:"content_data"`               // type-dependent payload, opaque to the server

	Tags []Tag `json:"tags" gorm:"many2many:resource_tags;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// ValidTypes maps the allowed resource types for validation.
var ValidTypes = map[string]bool{
	TypeText:     true,
	TypeImage:    true,
	TypeVideo:    true,
	TypeMarkdown: true,
	TypeQuiz:     true,
	TypeModel3D:  true,
}
