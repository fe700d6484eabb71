package course

import "gorm.io/gorm"

// Course represents a teacher-owned course
type Course struct {
	gorm.Model
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
}
