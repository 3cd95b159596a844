package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

func setupDashboardService(t *testing.T, withCache bool) (DashboardService, *gorm.DB, *miniredis.Miniredis) {
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
	))

	var cache *redis.Client
	var mr *miniredis.Miniredis
	if withCache {
		mr = miniredis.RunT(t)
		cache = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	}

	svc := NewDashboardService(
		repository.NewEnrollmentRepository(db),
		repository.NewSubmissionRepository(db),
		repository.NewGradeRepository(db),
		cache,
		time.Minute,
		zerolog.New(io.Discard),
	)

	return svc, db, mr
}

func seedDashboardFixture(t *testing.T, db *gorm.DB, now time.Time) (models.User, models.Course) {
	t.Helper()

	user := models.User{Email: "student@example.com", Name: "Student", PasswordHash: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := models.Course{
		Code:       "CS101",
		Name:       "Intro to Computer Science",
		Instructor: "Dr. Hopper",
		Credits:    3,
		Semester:   "Fall",
		Year:       2026,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&models.Enrollment{
		UserID:     user.ID,
		CourseID:   course.ID,
		Status:     models.EnrollmentStatusActive,
		EnrolledAt: now.Add(-30 * 24 * time.Hour),
	}).Error)

	return user, course
}

func TestOverviewStatisticsAndGPA(t *testing.T) {
	svc, db, _ := setupDashboardService(t, false)
	now := time.Now()
	user, course := seedDashboardFixture(t, db, now)

	assignments := []models.Assignment{
		{CourseID: course.ID, Title: "Essay", DueDate: now.Add(5 * 24 * time.Hour), MaxPoints: 100, IsPublished: true},
		{CourseID: course.ID, Title: "Quiz", DueDate: now.Add(10 * 24 * time.Hour), MaxPoints: 50, IsPublished: true},
	}
	require.NoError(t, db.Create(&assignments).Error)

	for i, scores := range [][2]float64{{85, 100}, {45, 50}} {
		submission := models.Submission{
			AssignmentID: assignments[i].ID,
			StudentID:    user.ID,
			Status:       models.SubmissionStatusGraded,
			SubmittedAt:  now.Add(-time.Duration(i+1) * 24 * time.Hour),
		}
		require.NoError(t, db.Create(&submission).Error)
		require.NoError(t, db.Create(&models.Grade{
			SubmissionID: submission.ID,
			StudentID:    user.ID,
			Score:        scores[0],
			MaxScore:     scores[1],
			Status:       models.GradeStatusGraded,
			GradedAt:     now.Add(-time.Duration(i+1) * time.Hour),
		}).Error)
	}

	overview, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)

	stats := overview.Statistics
	require.Equal(t, 1, stats.TotalCourses)
	require.Equal(t, 2, stats.TotalAssignments)
	require.Equal(t, 2, stats.GradedAssignments)
	require.InDelta(t, 150.0, stats.TotalPoints, 0.001)
	require.InDelta(t, 130.0, stats.EarnedPoints, 0.001)
	require.InDelta(t, 3.47, stats.GPA, 0.001)

	require.Len(t, overview.RecentGrades, 2)
	require.Equal(t, "Intro to Computer Science", overview.RecentGrades[0].CourseName)
}

func TestOverviewGPAZeroWithoutGrades(t *testing.T) {
	svc, db, _ := setupDashboardService(t, false)
	user, _ := seedDashboardFixture(t, db, time.Now())

	overview, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)
	require.Zero(t, overview.Statistics.GPA)
	require.Zero(t, overview.Statistics.TotalPoints)
	require.Empty(t, overview.RecentGrades)
}

func TestOverviewUpcomingWindowEdges(t *testing.T) {
	svc, db, _ := setupDashboardService(t, false)
	now := time.Now()
	user, course := seedDashboardFixture(t, db, now)

	assignments := []models.Assignment{
		{CourseID: course.ID, Title: "Due in five days", DueDate: now.Add(5 * 24 * time.Hour), MaxPoints: 100, IsPublished: true},
		{CourseID: course.ID, Title: "Due in eight days", DueDate: now.Add(8 * 24 * time.Hour), MaxPoints: 100, IsPublished: true},
		{CourseID: course.ID, Title: "Due yesterday", DueDate: now.Add(-24 * time.Hour), MaxPoints: 100, IsPublished: true},
	}
	require.NoError(t, db.Create(&assignments).Error)

	overview, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, overview.UpcomingAssignments, 1)
	require.Equal(t, "Due in five days", overview.UpcomingAssignments[0].Title)
}

func TestOverviewExcludesUnpublishedAssignments(t *testing.T) {
	svc, db, _ := setupDashboardService(t, false)
	now := time.Now()
	user, course := seedDashboardFixture(t, db, now)

	require.NoError(t, db.Create(&models.Assignment{
		CourseID:    course.ID,
		Title:       "Draft",
		DueDate:     now.Add(2 * 24 * time.Hour),
		MaxPoints:   100,
		IsPublished: false,
	}).Error)

	overview, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)
	require.Zero(t, overview.Statistics.TotalAssignments)
	require.Empty(t, overview.UpcomingAssignments)
}

func TestOverviewAnnouncementsSanitizedAndCapped(t *testing.T) {
	svc, db, _ := setupDashboardService(t, false)
	now := time.Now()
	user, course := seedDashboardFixture(t, db, now)

	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Announcement{
			CourseID: course.ID,
			Title:    "Notice",
			Content:  `<script>alert("x")</script><p>Reading list updated</p>`,
		}).Error)
	}

	overview, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)

	// per-course digest is capped at three even though four rows exist
	require.Len(t, overview.RecentAnnouncements, 3)
	for _, announcement := range overview.RecentAnnouncements {
		require.NotContains(t, announcement.Content, "<script>")
		require.Contains(t, announcement.Content, "Reading list updated")
	}
	require.Equal(t, 3, overview.Courses[0].AnnouncementCount)
}

func TestOverviewServedFromCache(t *testing.T) {
	svc, db, mr := setupDashboardService(t, true)
	now := time.Now()
	user, course := seedDashboardFixture(t, db, now)

	first, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, first.Statistics.TotalCourses)
	require.True(t, mr.Exists(fmt.Sprintf("dashboard:overview:%d", user.ID)))

	// a write after the snapshot is invisible until the key expires
	require.NoError(t, db.Create(&models.Assignment{
		CourseID:    course.ID,
		Title:       "Added later",
		DueDate:     now.Add(24 * time.Hour),
		MaxPoints:   10,
		IsPublished: true,
	}).Error)

	second, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)
	require.Zero(t, second.Statistics.TotalAssignments)

	mr.FastForward(2 * time.Minute)

	third, err := svc.Overview(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, third.Statistics.TotalAssignments)
}
