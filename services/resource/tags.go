package resourceService

import (
	"strings"

	"gorm.io/gorm"

	resourceModels "lms/models/resource"
)

// NormalizeTagName canonicalizes a tag name before uniqueness comparison or
// storage: trimmed and lower-cased.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindOrCreateTags resolves a list of candidate tag names to Tag rows, creating
// the ones that do not exist yet. Lookups are batched into a single name IN (...)
// query; only genuinely new names fall back to inserts. Idempotent.
func FindOrCreateTags(db *gorm.DB, names []string) ([]resourceModels.Tag, error) {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		n := NormalizeTagName(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	if len(normalized) == 0 {
		return []resourceModels.Tag{}, nil
	}

	var existing []resourceModels.Tag
	if err := db.Where("name IN ?", normalized).Find(&existing).Error; err != nil {
		return nil, err
	}

	existingNames := make(map[string]bool, len(existing))
	for _, tag := range existing {
		existingNames[tag.Name] = true
	}

	tags := existing
	for _, name := range normalized {
		if existingNames[name] {
			continue
		}
		tag := resourceModels.Tag{Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ResolveTags merges tags referenced by id with tags named for lazy creation,
// de-duplicated by tag id. Unknown tag ids are silently dropped.
func ResolveTags(db *gorm.DB, tagIDs []uint, newNames []string) ([]resourceModels.Tag, error) {
	var resolved []resourceModels.Tag

	if len(newNames) > 0 {
		created, err := FindOrCreateTags(db, newNames)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, created...)
	}
	if len(tagIDs) > 0 {
		var existing []resourceModels.Tag
		if err := db.Where("id IN ?", tagIDs).Find(&existing).Error; err != nil {
			return nil, err
		}
		resolved = append(resolved, existing...)
	}

	unique := make([]resourceModels.Tag, 0, len(resolved))
	seen := make(map[uint]bool, len(resolved))
	for _, tag := range resolved {
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		unique = append(unique, tag)
	}
	return unique, nil
}

// ListTags returns all tags ordered by name.
func ListTags(db *gorm.DB) ([]resourceModels.Tag, error) {
	var tags []resourceModels.Tag
	if err := db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
