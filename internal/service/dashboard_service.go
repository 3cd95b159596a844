package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

const (
	upcomingWindow = 7 * 24 * time.Hour

	courseAssignmentCap   = 5
	courseAnnouncementCap = 3
	recentSubmissionCap   = 10
	recentAnnouncementCap = 5
	recentGradeCap        = 5
)

// DashboardService produces the aggregated student overview. The whole
// operation is a read-and-fold: no writes, safe to call repeatedly.
type DashboardService interface {
	Overview(ctx context.Context, userID uint) (dto.DashboardResponse, error)
}

type dashboardService struct {
	enrollments repository.EnrollmentRepository
	submissions repository.SubmissionRepository
	grades      repository.GradeRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	policy      *bluemonday.Policy
	logger      zerolog.Logger
	now         func() time.Time
}

// NewDashboardService builds the dashboard aggregator.
func NewDashboardService(enrollments repository.EnrollmentRepository, submissions repository.SubmissionRepository, grades repository.GradeRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		enrollments: enrollments,
		submissions: submissions,
		grades:      grades,
		cache:       cache,
		cacheTTL:    ttl,
		policy:      bluemonday.UGCPolicy(),
		logger:      logger.With().Str("component", "dashboard_service").Logger(),
		now:         time.Now,
	}
}

func (s *dashboardService) Overview(ctx context.Context, userID uint) (dto.DashboardResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:overview:%d", userID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("user_id", userID).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	enrollments, err := s.enrollments.ListActiveByUser(ctx, userID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	submissions, err := s.submissions.ListRecentByStudent(ctx, userID, recentSubmissionCap)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	grades, err := s.grades.ListGradedByStudent(ctx, userID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	response := s.buildResponse(enrollments, submissions, grades)

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildResponse(enrollments []models.Enrollment, submissions []models.Submission, grades []models.Grade) dto.DashboardResponse {
	now := s.now()

	courses := make([]dto.EnrolledCourse, 0, len(enrollments))
	upcoming := make([]dto.UpcomingAssignment, 0)
	announcements := make([]dto.AnnouncementDigest, 0)
	totalAssignments := 0

	for _, enrollment := range enrollments {
		course := enrollment.Course

		assignments := course.Assignments
		if len(assignments) > courseAssignmentCap {
			assignments = assignments[:courseAssignmentCap]
		}
		courseAnnouncements := course.Announcements
		if len(courseAnnouncements) > courseAnnouncementCap {
			courseAnnouncements = courseAnnouncements[:courseAnnouncementCap]
		}

		totalAssignments += len(assignments)

		courses = append(courses, dto.EnrolledCourse{
			ID:                course.ID,
			Name:              course.Name,
			Code:              course.Code,
			Instructor:        course.Instructor,
			Credits:           course.Credits,
			Semester:          course.Semester,
			Year:              course.Year,
			AssignmentCount:   len(assignments),
			AnnouncementCount: len(courseAnnouncements),
		})

		for _, assignment := range assignments {
			if !assignment.DueWithin(now, upcomingWindow) {
				continue
			}
			upcoming = append(upcoming, dto.UpcomingAssignment{
				ID:         assignment.ID,
				Title:      assignment.Title,
				DueDate:    assignment.DueDate,
				MaxPoints:  assignment.MaxPoints,
				CourseName: course.Name,
				CourseCode: course.Code,
			})
		}

		for _, announcement := range courseAnnouncements {
			announcements = append(announcements, dto.AnnouncementDigest{
				ID:         announcement.ID,
				Title:      announcement.Title,
				Content:    s.policy.Sanitize(announcement.Content),
				IsPinned:   announcement.IsPinned,
				CreatedAt:  announcement.CreatedAt,
				CourseName: course.Name,
				CourseCode: course.Code,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	if len(announcements) > recentAnnouncementCap {
		announcements = announcements[:recentAnnouncementCap]
	}

	recentGrades := make([]dto.GradeDigest, 0, recentGradeCap)
	var totalPoints, earnedPoints float64
	for idx, grade := range grades {
		totalPoints += grade.MaxScore
		earnedPoints += grade.Score

		if idx >= recentGradeCap {
			continue
		}
		recentGrades = append(recentGrades, dto.GradeDigest{
			ID:              grade.ID,
			Score:           grade.Score,
			MaxScore:        grade.MaxScore,
			Feedback:        grade.Feedback,
			GradedAt:        grade.GradedAt,
			AssignmentTitle: grade.Submission.Assignment.Title,
			CourseName:      grade.Submission.Assignment.Course.Name,
			CourseCode:      grade.Submission.Assignment.Course.Code,
		})
	}

	gpa := 0.0
	if totalPoints > 0 {
		gpa = math.Round(earnedPoints/totalPoints*4*100) / 100
	}

	submitted := 0
	for _, submission := range submissions {
		if submission.Status == models.SubmissionStatusSubmitted {
			submitted++
		}
	}

	return dto.DashboardResponse{
		Courses:             courses,
		UpcomingAssignments: upcoming,
		RecentAnnouncements: announcements,
		RecentGrades:        recentGrades,
		Statistics: dto.DashboardStatistics{
			TotalCourses:         len(enrollments),
			TotalAssignments:     totalAssignments,
			SubmittedAssignments: submitted,
			GradedAssignments:    len(grades),
			GPA:                  gpa,
			TotalPoints:          totalPoints,
			EarnedPoints:         earnedPoints,
		},
	}
}
