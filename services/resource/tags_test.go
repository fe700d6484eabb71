package resourceService

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lms/models"
	courseModels "lms/models/course"
	resourceModels "lms/models/resource"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "lms_test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Chapter{},
		&resourceModels.Tag{},
		&resourceModels.Resource{},
		&courseModels.ChapterContentLink{},
	))
	return db
}

func TestNormalizeTagName(t *testing.T) {
	assert.Equal(t, "physics", NormalizeTagName("  Physics "))
	assert.Equal(t, "linear algebra", NormalizeTagName("Linear Algebra"))
	assert.Equal(t, "", NormalizeTagName("   "))
}

func TestFindOrCreateTags(t *testing.T) {
	db := setupDB(t)

	tags, err := FindOrCreateTags(db, []string{"Physics", " math ", "physics"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	names := []string{tags[0].Name, tags[1].Name}
	assert.Contains(t, names, "physics")
	assert.Contains(t, names, "math")

	// A second call with overlapping names creates nothing new
	again, err := FindOrCreateTags(db, []string{"MATH", "chemistry"})
	require.NoError(t, err)
	assert.Len(t, again, 2)

	var count int64
	db.Model(&resourceModels.Tag{}).Count(&count)
	assert.EqualValues(t, 3, count)

	empty, err := FindOrCreateTags(db, []string{"", "   "})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestResolveTags(t *testing.T) {
	db := setupDB(t)

	existing, err := FindOrCreateTags(db, []string{"physics"})
	require.NoError(t, err)

	resolved, err := ResolveTags(db, []uint{existing[0].ID, 9999}, []string{"Physics", "math"})
	require.NoError(t, err)

	// physics appears once despite being referenced by both id and name;
	// the unknown id is dropped
	require.Len(t, resolved, 2)
	seen := make(map[string]bool)
	for _, tag := range resolved {
		seen[tag.Name] = true
	}
	assert.True(t, seen["physics"])
	assert.True(t, seen["math"])
}

func TestListTags(t *testing.T) {
	db := setupDB(t)

	_, err := FindOrCreateTags(db, []string{"zoology", "algebra", "math"})
	require.NoError(t, err)

	tags, err := ListTags(db)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "algebra", tags[0].Name)
	assert.Equal(t, "math", tags[1].Name)
	assert.Equal(t, "zoology", tags[2].Name)
}
