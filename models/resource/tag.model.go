package resource

// Tag is a globally unique, name-normalized label for resource discovery.
// Names are stored trimmed and lower-cased.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
