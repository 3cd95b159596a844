package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

func setupEnrollmentService(t *testing.T) (EnrollmentService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.Assignment{},
		&models.Submission{},
		&models.Grade{},
		&models.Announcement{},
		&models.CourseMaterial{},
	))

	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		zerolog.New(io.Discard),
	)

	return svc, db
}

func seedEnrollmentFixture(t *testing.T, db *gorm.DB) (models.User, models.Course) {
	t.Helper()

	user := models.User{Email: "enrollee@example.com", Name: "Enrollee", PasswordHash: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := models.Course{
		Code:       "MATH201",
		Name:       "Linear Algebra",
		Instructor: "Dr. Noether",
		Semester:   "Spring",
		Year:       2026,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&course).Error)

	return user, course
}

func TestEnrollCreatesActiveEnrollment(t *testing.T) {
	svc, db := setupEnrollmentService(t)
	user, course := seedEnrollmentFixture(t, db)

	result, err := svc.Enroll(context.Background(), user.ID, course.ID)
	require.NoError(t, err)
	require.NotZero(t, result.EnrollmentID)
	require.Equal(t, "Linear Algebra", result.CourseName)
	require.Equal(t, "MATH201", result.CourseCode)
	require.WithinDuration(t, time.Now(), result.EnrolledAt, 5*time.Second)

	var stored models.Enrollment
	require.NoError(t, db.First(&stored, result.EnrollmentID).Error)
	require.Equal(t, models.EnrollmentStatusActive, stored.Status)
}

func TestEnrollTwiceConflictsAndKeepsSingleRow(t *testing.T) {
	svc, db := setupEnrollmentService(t)
	user, course := seedEnrollmentFixture(t, db)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, user.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, user.ID, course.ID)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEnrollConflictsWithRowCreatedOutOfBand(t *testing.T) {
	svc, db := setupEnrollmentService(t)
	user, course := seedEnrollmentFixture(t, db)

	require.NoError(t, db.Create(&models.Enrollment{
		UserID:     user.ID,
		CourseID:   course.ID,
		Status:     models.EnrollmentStatusActive,
		EnrolledAt: time.Now(),
	}).Error)

	_, err := svc.Enroll(context.Background(), user.ID, course.ID)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, db := setupEnrollmentService(t)
	user, _ := seedEnrollmentFixture(t, db)

	_, err := svc.Enroll(context.Background(), user.ID, 9999)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollInactiveCourseLooksAbsent(t *testing.T) {
	svc, db := setupEnrollmentService(t)
	user, _ := seedEnrollmentFixture(t, db)

	retired := models.Course{
		Code:       "HIST100",
		Name:       "Retired Course",
		Instructor: "Dr. Past",
		Semester:   "Fall",
		Year:       2020,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&retired).Error)
	require.NoError(t, db.Model(&retired).Update("is_active", false).Error)

	_, err := svc.Enroll(context.Background(), user.ID, retired.ID)
	require.ErrorIs(t, err, ErrCourseNotFound)
}
