package resourceService

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	courseModels "lms/models/course"
	resourceModels "lms/models/resource"
	"lms/services"
)

// RequireResource checks that a resource exists before a link may reference it.
// It deliberately does not check authorship: any teacher may link any existing
// resource into their own chapters.
func RequireResource(db *gorm.DB, resourceID string) (*resourceModels.Resource, error) {
	var res resourceModels.Resource
	if err := db.Where("id = ?", resourceID).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resource %s", services.ErrNotFound, resourceID)
		}
		return nil, err
	}
	return &res, nil
}

// ResolveOwnedResource loads a resource and verifies the acting teacher authored
// it. Only resource mutations are scoped by authorship; linking is not.
func ResolveOwnedResource(db *gorm.DB, resourceID string, teacherID uint) (*resourceModels.Resource, error) {
	var res resourceModels.Resource
	if err := db.Preload("Tags").Where("id = ?", resourceID).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resource %s", services.ErrNotFound, resourceID)
		}
		return nil, err
	}
	if res.TeacherID != teacherID {
		return nil, fmt.Errorf("%w: resource %s is not owned by teacher %d", services.ErrForbidden, resourceID, teacherID)
	}
	return &res, nil
}

// DeleteResource removes a resource, its tag associations and every content link
// referencing it across all chapters.
func DeleteResource(db *gorm.DB, resourceID string, teacherID uint) error {
	res, err := ResolveOwnedResource(db, resourceID, teacherID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_id = ?", res.ID).Delete(&courseModels.ChapterContentLink{}).Error; err != nil {
			return err
		}
		if err := tx.Model(res).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(res).Error
	})
}

// ListFilter narrows the resource listing. Zero values mean "no filter".
type ListFilter struct {
	TagName   string
	Type      string
	TeacherID uint
}

// ListResources returns resources newest first, with tags preloaded, optionally
// filtered by tag name, type and authoring teacher.
func ListResources(db *gorm.DB, filter ListFilter) ([]resourceModels.Resource, error) {
	query := db.Model(&resourceModels.Resource{}).Preload("Tags")

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.TeacherID != 0 {
		query = query.Where("teacher_id = ?", filter.TeacherID)
	}
	if filter.TagName != "" {
		query = query.
			Joins("JOIN resource_tags ON resource_tags.resource_id = resources.id").
			Joins("JOIN tags ON tags.id = resource_tags.tag_id").
			Where("tags.name = ?", NormalizeTagName(filter.TagName))
	}

	var resources []resourceModels.Resource
	if err := query.Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
