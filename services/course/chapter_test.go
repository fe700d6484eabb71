package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/services"
)

func TestCreateChapter(t *testing.T) {
	db := setupDB(t)
	teacher := createTeacher(t, db, "t1@example.com")
	intruder := createTeacher(t, db, "t2@example.com")
	course := createCourse(t, db, teacher.ID)

	t.Run("zero order appends", func(t *testing.T) {
		first, err := CreateChapter(db, course.ID, teacher.ID, "Intro", "welcome", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, first.OrderIndex)

		second, err := CreateChapter(db, course.ID, teacher.ID, "Basics", "", 0)
		require.NoError(t, err)
		assert.Equal(t, 2, second.OrderIndex)
	})

	t.Run("explicit order is kept", func(t *testing.T) {
		chapter, err := CreateChapter(db, course.ID, teacher.ID, "Appendix", "", 10)
		require.NoError(t, err)
		assert.Equal(t, 10, chapter.OrderIndex)
	})

	t.Run("non-owner cannot add chapters", func(t *testing.T) {
		_, err := CreateChapter(db, course.ID, intruder.ID, "Sneaky", "", 0)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}
