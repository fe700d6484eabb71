package courseService

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
	"lms/services"
	resourceService "lms/services/resource"
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

func createTeacher(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Teacher " + email, Email: email, Password: "x", Role: models.RoleTeacher}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCourse(t *testing.T, db *gorm.DB, teacherID uint) *courseModels.Course {
	t.Helper()
	course := courseModels.Course{TeacherID: teacherID, Title: "Course"}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createChapter(t *testing.T, db *gorm.DB, courseID uint) *courseModels.Chapter {
	t.Helper()
	chapter := courseModels.Chapter{CourseID: courseID, Title: "Chapter", OrderIndex: 1}
	require.NoError(t, db.Create(&chapter).Error)
	return &chapter
}

func createResource(t *testing.T, db *gorm.DB, teacherID uint, title string) *resourceModels.Resource {
	t.Helper()
	res := resourceModels.Resource{
		TeacherID:   teacherID,
		Title:       title,
		Type:        resourceModels.TypeText,
		ContentData: []byte(`{"text":"hello"}`),
	}
	require.NoError(t, db.Create(&res).Error)
	return &res
}

func TestAttachResource(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)
	res := createResource(t, db, teacher.ID, "Intro text")

	t.Run("explicit order", func(t *testing.T) {
		link, err := AttachResource(db, chapter.ID, res.ID, 3)
		require.NoError(t, err)
		assert.NotEmpty(t, link.ID)
		assert.Equal(t, chapter.ID, link.ChapterID)
		assert.Equal(t, res.ID, link.ResourceID)
		assert.Equal(t, 3, link.OrderIndex)
	})

	t.Run("duplicate pair conflicts and keeps the first link", func(t *testing.T) {
		_, err := AttachResource(db, chapter.ID, res.ID, 5)
		assert.ErrorIs(t, err, services.ErrConflict)

		links, err := ListChapterLinks(db, chapter.ID)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, 3, links[0].OrderIndex)
	})

	t.Run("zero order appends after the current maximum", func(t *testing.T) {
		res2 := createResource(t, db, teacher.ID, "Second")
		link, err := AttachResource(db, chapter.ID, res2.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, link.OrderIndex)
	})

	t.Run("missing resource creates no link", func(t *testing.T) {
		_, err := AttachResource(db, chapter.ID, "no-such-resource", 1)
		assert.ErrorIs(t, err, services.ErrNotFound)

		var count int64
		db.Model(&courseModels.ChapterContentLink{}).Where("chapter_id = ?", chapter.ID).Count(&count)
		assert.EqualValues(t, 2, count)
	})

	t.Run("cross teacher resource reuse is allowed", func(t *testing.T) {
		other := createTeacher(t, db, "t2@example.com")
		foreign := createResource(t, db, other.ID, "Someone else's video")

		link, err := AttachResource(db, chapter.ID, foreign.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, foreign.ID, link.ResourceID)
	})
}

func TestDetachResource(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)
	res := createResource(t, db, teacher.ID, "Text")

	_, err := AttachResource(db, chapter.ID, res.ID, 1)
	require.NoError(t, err)

	require.NoError(t, DetachResource(db, chapter.ID, res.ID))

	links, err := ListChapterLinks(db, chapter.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	err = DetachResource(db, chapter.ID, res.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Detached pair can be linked again
	_, err = AttachResource(db, chapter.ID, res.ID, 1)
	assert.NoError(t, err)
}

func TestListChapterLinksOrdering(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)

	// Duplicate order values are possible; the listing must stay deterministic.
	resA := createResource(t, db, teacher.ID, "A")
	resB := createResource(t, db, teacher.ID, "B")
	resC := createResource(t, db, teacher.ID, "C")

	_, err := AttachResource(db, chapter.ID, resA.ID, 2)
	require.NoError(t, err)
	_, err = AttachResource(db, chapter.ID, resB.ID, 2)
	require.NoError(t, err)
	_, err = AttachResource(db, chapter.ID, resC.ID, 1)
	require.NoError(t, err)

	links, err := ListChapterLinks(db, chapter.ID)
	require.NoError(t, err)
	require.Len(t, links, 3)

	assert.Equal(t, resC.ID, links[0].ResourceID)
	assert.Equal(t, 1, links[0].OrderIndex)
	// The two order-2 links come back sorted by link id
	assert.Equal(t, 2, links[1].OrderIndex)
	assert.Equal(t, 2, links[2].OrderIndex)
	assert.Less(t, links[1].ID, links[2].ID)

	// No resource appears twice
	seen := make(map[string]bool)
	for _, link := range links {
		assert.False(t, seen[link.ResourceID])
		seen[link.ResourceID] = true
	}
}

func TestApplyOrderUpdates(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)

	resA := createResource(t, db, teacher.ID, "A")
	resB := createResource(t, db, teacher.ID, "B")

	linkA, err := AttachResource(db, chapter.ID, resA.ID, 1)
	require.NoError(t, err)
	linkB, err := AttachResource(db, chapter.ID, resB.ID, 2)
	require.NoError(t, err)

	t.Run("swap positions", func(t *testing.T) {
		links, err := ApplyOrderUpdates(db, chapter.ID, []OrderUpdate{
			{LinkID: linkA.ID, Order: 2},
			{LinkID: linkB.ID, Order: 1},
		})
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, resB.ID, links[0].ResourceID)
		assert.Equal(t, resA.ID, links[1].ResourceID)
	})

	t.Run("foreign link ids are skipped, never touched", func(t *testing.T) {
		otherChapter := createChapter(t, db, course.ID)
		resC := createResource(t, db, teacher.ID, "C")
		foreignLink, err := AttachResource(db, otherChapter.ID, resC.ID, 1)
		require.NoError(t, err)

		_, err = ApplyOrderUpdates(db, chapter.ID, []OrderUpdate{
			{LinkID: foreignLink.ID, Order: 9},
		})
		require.NoError(t, err)

		var reloaded courseModels.ChapterContentLink
		require.NoError(t, db.First(&reloaded, "id = ?", foreignLink.ID).Error)
		assert.Equal(t, 1, reloaded.OrderIndex)
	})

	t.Run("order below one is rejected before anything is written", func(t *testing.T) {
		before, err := ListChapterLinks(db, chapter.ID)
		require.NoError(t, err)

		_, err = ApplyOrderUpdates(db, chapter.ID, []OrderUpdate{
			{LinkID: linkA.ID, Order: 5},
			{LinkID: linkB.ID, Order: 0},
		})
		assert.ErrorIs(t, err, services.ErrValidation)

		after, err := ListChapterLinks(db, chapter.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestNormalizeChapterOrder(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)

	resA := createResource(t, db, teacher.ID, "A")
	resB := createResource(t, db, teacher.ID, "B")
	resC := createResource(t, db, teacher.ID, "C")

	// Sparse and duplicated orders
	_, err := AttachResource(db, chapter.ID, resA.ID, 7)
	require.NoError(t, err)
	_, err = AttachResource(db, chapter.ID, resB.ID, 7)
	require.NoError(t, err)
	_, err = AttachResource(db, chapter.ID, resC.ID, 2)
	require.NoError(t, err)

	links, err := NormalizeChapterOrder(db, chapter.ID)
	require.NoError(t, err)
	require.Len(t, links, 3)

	assert.Equal(t, resC.ID, links[0].ResourceID)
	for i, link := range links {
		assert.Equal(t, i+1, link.OrderIndex)
	}
}

func TestListChapterResources(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	other := createTeacher(t, db, "t2@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)

	resA := createResource(t, db, teacher.ID, "A")
	resB := createResource(t, db, other.ID, "B")
	require.NoError(t, db.Model(resB).Association("Tags").Append(&resourceModels.Tag{Name: "physics"}))

	_, err := AttachResource(db, chapter.ID, resA.ID, 2)
	require.NoError(t, err)
	_, err = AttachResource(db, chapter.ID, resB.ID, 1)
	require.NoError(t, err)

	t.Run("resources come back in link order with tags and author", func(t *testing.T) {
		resources, err := ListChapterResources(db, chapter.ID)
		require.NoError(t, err)
		require.Len(t, resources, 2)

		assert.Equal(t, resB.ID, resources[0].ID)
		assert.Equal(t, other.ID, resources[0].Author.ID)
		require.Len(t, resources[0].Tags, 1)
		assert.Equal(t, "physics", resources[0].Tags[0].Name)

		assert.Equal(t, resA.ID, resources[1].ID)
		assert.Equal(t, teacher.ID, resources[1].Author.ID)
	})

	t.Run("missing chapter", func(t *testing.T) {
		_, err := ListChapterResources(db, 9999)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("links with a vanished resource are dropped", func(t *testing.T) {
		// Bypass the service cascade to simulate a mid-flight delete
		require.NoError(t, db.Exec("DELETE FROM resources WHERE id = ?", resA.ID).Error)

		resources, err := ListChapterResources(db, chapter.ID)
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, resB.ID, resources[0].ID)
	})
}

func TestDeleteChapterCascadesLinks(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)
	keep := createChapter(t, db, course.ID)

	res := createResource(t, db, teacher.ID, "Shared")
	_, err := AttachResource(db, chapter.ID, res.ID, 1)
	require.NoError(t, err)
	_, err = AttachResource(db, keep.ID, res.ID, 1)
	require.NoError(t, err)

	require.NoError(t, DeleteChapter(db, course.ID, chapter.ID, teacher.ID))

	var count int64
	db.Model(&courseModels.ChapterContentLink{}).Where("chapter_id = ?", chapter.ID).Count(&count)
	assert.Zero(t, count)

	// The sibling chapter's link and the resource itself survive
	links, err := ListChapterLinks(db, keep.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
	_, err = resourceService.RequireResource(db, res.ID)
	assert.NoError(t, err)
}

func TestDeleteCourseCascadesChaptersAndLinks(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	course := createCourse(t, db, teacher.ID)
	chapter := createChapter(t, db, course.ID)
	res := createResource(t, db, teacher.ID, "Text")

	_, err := AttachResource(db, chapter.ID, res.ID, 1)
	require.NoError(t, err)

	require.NoError(t, DeleteCourse(db, course.ID, teacher.ID))

	var chapterCount, linkCount int64
	db.Model(&courseModels.Chapter{}).Where("course_id = ?", course.ID).Count(&chapterCount)
	db.Model(&courseModels.ChapterContentLink{}).Count(&linkCount)
	assert.Zero(t, chapterCount)
	assert.Zero(t, linkCount)

	_, err = ResolveOwnedCourse(db, course.ID, teacher.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
