package courseService

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"lms/models"
	courseModels "lms/models/course"
	resourceModels "lms/models/resource"
	"lms/services"
	resourceService "lms/services/resource"
)

// OrderUpdate addresses one content link by its own id and assigns it a new
// position within its chapter.
type OrderUpdate struct {
	LinkID string `json:"link_id"`
	Order  int    `json:"order"`
}

// ChapterResource is a resource as it appears inside a chapter, with its tags
// and authoring teacher joined in.
type ChapterResource struct {
	resourceModels.Resource
	Author models.PublicUser `json:"author"`
}

// AttachResource links a resource into a chapter at the given position. A zero
// order appends at the end of the chapter; the same (chapter, resource) pair may
// be linked at most once. Ownership of the chapter must already be resolved by
// the caller.
func AttachResource(db *gorm.DB, chapterID uint, resourceID string, order int) (*courseModels.ChapterContentLink, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: order must not be negative", services.ErrValidation)
	}

	if _, err := resourceService.RequireResource(db, resourceID); err != nil {
		return nil, err
	}

	var existing courseModels.ChapterContentLink
	err := db.Where("chapter_id = ? AND resource_id = ?", chapterID, resourceID).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: resource %s is already linked to chapter %d", services.ErrConflict, resourceID, chapterID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if order == 0 {
		var maxOrder int
		db.Model(&courseModels.ChapterContentLink{}).
			Where("chapter_id = ?", chapterID).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		order = maxOrder + 1
	}

	link := courseModels.ChapterContentLink{
		ChapterID:  chapterID,
		ResourceID: resourceID,
		OrderIndex: order,
	}
	if err := db.Create(&link).Error; err != nil {
		// Concurrent attaches of the same pair are serialized by the unique
		// index; the loser surfaces as a conflict, not an internal error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: resource %s is already linked to chapter %d", services.ErrConflict, resourceID, chapterID)
		}
		return nil, err
	}
	return &link, nil
}

// DetachResource removes the link between a chapter and a resource.
func DetachResource(db *gorm.DB, chapterID uint, resourceID string) error {
	var link courseModels.ChapterContentLink
	if err := db.Where("chapter_id = ? AND resource_id = ?", chapterID, resourceID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: resource %s is not linked to chapter %d", services.ErrNotFound, resourceID, chapterID)
		}
		return err
	}
	return db.Delete(&link).Error
}

// ListChapterLinks returns a chapter's content links sorted by position. Links
// sharing an order value fall back to the link id so the sequence stays
// deterministic.
func ListChapterLinks(db *gorm.DB, chapterID uint) ([]courseModels.ChapterContentLink, error) {
	var links []courseModels.ChapterContentLink
	err := db.Where("chapter_id = ?", chapterID).
		Order("order_index ASC, id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ApplyOrderUpdates assigns new positions to a chapter's content links. Each
// update is resolved and saved on its own: an id that does not belong to the
// chapter is skipped rather than failing the batch, and a storage failure midway
// leaves the earlier updates in place. Callers must not assume atomicity.
// Orders are written as given; the chapter is not renumbered, so duplicate or
// sparse order values may persist until an explicit normalize.
func ApplyOrderUpdates(db *gorm.DB, chapterID uint, updates []OrderUpdate) ([]courseModels.ChapterContentLink, error) {
	for _, upd := range updates {
		if upd.Order < 1 {
			return nil, fmt.Errorf("%w: order must be >= 1", services.ErrValidation)
		}
	}

	for _, upd := range updates {
		var link courseModels.ChapterContentLink
		err := db.Where("id = ? AND chapter_id = ?", upd.LinkID, chapterID).First(&link).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Stale or foreign link id: never touch another chapter's links.
				log.Printf("Reorder: skipping link %s not in chapter %d", upd.LinkID, chapterID)
				continue
			}
			return nil, err
		}
		if link.OrderIndex == upd.Order {
			continue
		}
		link.OrderIndex = upd.Order
		if err := db.Save(&link).Error; err != nil {
			return nil, err
		}
	}

	return ListChapterLinks(db, chapterID)
}

// NormalizeChapterOrder rewrites a chapter's link positions to a contiguous
// 1..N sequence, preserving the current (order, id) display order.
func NormalizeChapterOrder(db *gorm.DB, chapterID uint) ([]courseModels.ChapterContentLink, error) {
	links, err := ListChapterLinks(db, chapterID)
	if err != nil {
		return nil, err
	}
	for i := range links {
		want := i + 1
		if links[i].OrderIndex == want {
			continue
		}
		links[i].OrderIndex = want
		if err := db.Save(&links[i]).Error; err != nil {
			return nil, err
		}
	}
	return links, nil
}

// ListChapterResources returns the resources attached to a chapter in link
// order, with tags and author summaries joined in. Links whose resource was
// concurrently deleted are filtered out instead of breaking the listing.
func ListChapterResources(db *gorm.DB, chapterID uint) ([]ChapterResource, error) {
	var chapter courseModels.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: chapter %d", services.ErrNotFound, chapterID)
		}
		return nil, err
	}

	var links []courseModels.ChapterContentLink
	err := db.Where("chapter_id = ?", chapterID).
		Preload("Resource").
		Preload("Resource.Tags").
		Order("order_index ASC, id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	// Batch-load the authoring teachers instead of one query per resource.
	teacherIDs := make([]uint, 0, len(links))
	seen := make(map[uint]bool, len(links))
	for _, link := range links {
		if link.Resource == nil || seen[link.Resource.TeacherID] {
			continue
		}
		seen[link.Resource.TeacherID] = true
		teacherIDs = append(teacherIDs, link.Resource.TeacherID)
	}

	authors := make(map[uint]models.PublicUser, len(teacherIDs))
	if len(teacherIDs) > 0 {
		var users []models.User
		if err := db.Where("id IN ?", teacherIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for i := range users {
			authors[users[i].ID] = users[i].Public()
		}
	}

	resources := make([]ChapterResource, 0, len(links))
	for _, link := range links {
		if link.Resource == nil {
			// Cascade on resource deletion makes this transient, but a link may
			// briefly outlive its resource under concurrent edits.
			log.Printf("ListChapterResources: dropping link %s with missing resource %s", link.ID, link.ResourceID)
			continue
		}
		resources = append(resources, ChapterResource{
			Resource: *link.Resource,
			Author:   authors[link.Resource.TeacherID],
		})
	}
	return resources, nil
}
