package courseService

import (
	"gorm.io/gorm"

	courseModels "lms/models/course"
)

// CreateChapter appends a chapter to an owned course. A zero order index places
// the chapter after the current last one.
func CreateChapter(db *gorm.DB, courseID, teacherID uint, title, content string, orderIndex int) (*courseModels.Chapter, error) {
	if _, err := ResolveOwnedCourse(db, courseID, teacherID); err != nil {
		return nil, err
	}

	if orderIndex == 0 {
		var maxOrder int
		db.Model(&courseModels.Chapter{}).
			Where("course_id = ?", courseID).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	chapter := courseModels.Chapter{
		CourseID:   courseID,
		Title:      title,
		Content:    content,
		OrderIndex: orderIndex,
	}
	if err := db.Create(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeleteChapter removes a chapter and all content links that belong to it.
func DeleteChapter(db *gorm.DB, courseID, chapterID, teacherID uint) error {
	_, chapter, err := ResolveOwnedChapter(db, courseID, chapterID, teacherID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chapter_id = ?", chapter.ID).Delete(&courseModels.ChapterContentLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(chapter).Error
	})
}

// DeleteCourse removes a course, its chapters and their content links.
func DeleteCourse(db *gorm.DB, courseID, teacherID uint) error {
	course, err := ResolveOwnedCourse(db, courseID, teacherID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uint
		if err := tx.Model(&courseModels.Chapter{}).
			Where("course_id = ?", course.ID).
			Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}
		if len(chapterIDs) > 0 {
			if err := tx.Where("chapter_id IN ?", chapterIDs).Delete(&courseModels.ChapterContentLink{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.Chapter{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(course).Error
	})
}
