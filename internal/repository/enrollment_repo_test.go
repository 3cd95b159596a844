package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

func TestEnrollmentCreateTranslatesDuplicateKey(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.Enrollment{}))

	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	first := models.Enrollment{UserID: 1, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: time.Now()}
	require.NoError(t, repo.Create(ctx, &first))

	duplicate := models.Enrollment{UserID: 1, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: time.Now()}
	err = repo.Create(ctx, &duplicate)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// same user in a different course is fine
	other := models.Enrollment{UserID: 1, CourseID: 2, Status: models.EnrollmentStatusActive, EnrolledAt: time.Now()}
	require.NoError(t, repo.Create(ctx, &other))

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}
