package courseService

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	courseModels "lms/models/course"
	"lms/services"
)

// ResolveOwnedCourse loads a course and verifies the acting teacher owns it.
// Every mutating course operation goes through this gate; it fails closed.
func ResolveOwnedCourse(db *gorm.DB, courseID, teacherID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", services.ErrNotFound, courseID)
		}
		return nil, err
	}
	if course.TeacherID != teacherID {
		return nil, fmt.Errorf("%w: course %d is not owned by teacher %d", services.ErrForbidden, courseID, teacherID)
	}
	return &course, nil
}

// ResolveOwnedChapter walks the ownership chain teacher -> course -> chapter.
// The chapter must belong to the given course or the lookup fails with not found.
func ResolveOwnedChapter(db *gorm.DB, courseID, chapterID, teacherID uint) (*courseModels.Course, *courseModels.Chapter, error) {
	course, err := ResolveOwnedCourse(db, courseID, teacherID)
	if err != nil {
		return nil, nil, err
	}

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND course_id = ?", chapterID, courseID).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: chapter %d in course %d", services.ErrNotFound, chapterID, courseID)
		}
		return nil, nil, err
	}
	return course, &chapter, nil
}
