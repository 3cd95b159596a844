package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

const (
	listAssignmentCap   = 3
	listAnnouncementCap = 3
)

// CourseService serves the catalog: filtered listings and the expanded
// single-course view, personalised per requesting user.
type CourseService interface {
	List(ctx context.Context, userID uint, query dto.CourseListQuery) ([]dto.CourseSummary, error)
	Detail(ctx context.Context, courseID, userID uint) (dto.CourseDetail, error)
}

type courseService struct {
	courses   repository.CourseRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCourseService constructs the catalog service.
func NewCourseService(courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		courses:   courses,
		validator: validate,
		policy:    bluemonday.UGCPolicy(),
		logger:    logger.With().Str("component", "course_service").Logger(),
		now:       time.Now,
	}
}

func (s *courseService) List(ctx context.Context, userID uint, query dto.CourseListQuery) ([]dto.CourseSummary, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, err
	}

	courses, err := s.courses.List(ctx, userID, repository.CourseFilter{
		Search:   query.Search,
		Semester: query.Semester,
		Year:     query.Year,
	})
	if err != nil {
		return nil, err
	}

	courseIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}

	materialCounts, err := s.courses.MaterialCounts(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summaries := make([]dto.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summary := dto.CourseSummary{
			ID:                  course.ID,
			Code:                course.Code,
			Name:                course.Name,
			Description:         course.Description,
			Instructor:          course.Instructor,
			Credits:             course.Credits,
			Semester:            course.Semester,
			Year:                course.Year,
			UpcomingAssignments: make([]dto.AssignmentBrief, 0, listAssignmentCap),
			RecentAnnouncements: make([]dto.AnnouncementBrief, 0, listAnnouncementCap),
			Stats: dto.CourseStats{
				TotalAssignments:   len(course.Assignments),
				TotalAnnouncements: len(course.Announcements),
				TotalMaterials:     int(materialCounts[course.ID]),
			},
		}

		if len(course.Enrollments) > 0 {
			enrollment := course.Enrollments[0]
			summary.IsEnrolled = true
			summary.EnrolledAt = &enrollment.EnrolledAt
			summary.EnrollmentStatus = enrollment.Status
		}

		for _, assignment := range course.Assignments {
			if len(summary.UpcomingAssignments) == listAssignmentCap {
				break
			}
			if !assignment.DueDate.After(now) {
				continue
			}
			summary.UpcomingAssignments = append(summary.UpcomingAssignments, dto.AssignmentBrief{
				ID:      assignment.ID,
				Title:   assignment.Title,
				DueDate: assignment.DueDate,
			})
		}

		for _, announcement := range course.Announcements {
			if len(summary.RecentAnnouncements) == listAnnouncementCap {
				break
			}
			summary.RecentAnnouncements = append(summary.RecentAnnouncements, dto.AnnouncementBrief{
				ID:        announcement.ID,
				Title:     announcement.Title,
				CreatedAt: announcement.CreatedAt,
			})
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *courseService) Detail(ctx context.Context, courseID, userID uint) (dto.CourseDetail, error) {
	course, err := s.courses.GetActiveByID(ctx, courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseDetail{}, ErrCourseNotFound
		}
		return dto.CourseDetail{}, err
	}

	detail := dto.CourseDetail{
		ID:            course.ID,
		Code:          course.Code,
		Name:          course.Name,
		Description:   course.Description,
		Instructor:    course.Instructor,
		Credits:       course.Credits,
		Semester:      course.Semester,
		Year:          course.Year,
		Assignments:   make([]dto.AssignmentDetail, 0, len(course.Assignments)),
		Announcements: make([]dto.AnnouncementResponse, 0, len(course.Announcements)),
		Materials:     make([]dto.MaterialResponse, 0, len(course.Materials)),
	}

	if len(course.Enrollments) > 0 {
		enrollment := course.Enrollments[0]
		detail.IsEnrolled = true
		detail.EnrolledAt = &enrollment.EnrolledAt
		detail.EnrollmentStatus = enrollment.Status
	}

	completed := 0
	graded := 0
	for _, assignment := range course.Assignments {
		item := dto.AssignmentDetail{
			ID:          assignment.ID,
			Title:       assignment.Title,
			Description: assignment.Description,
			DueDate:     assignment.DueDate,
			MaxPoints:   assignment.MaxPoints,
			CreatedAt:   assignment.CreatedAt,
		}

		// Submissions are preloaded newest-first and scoped to the caller.
		if len(assignment.Submissions) > 0 {
			submission := assignment.Submissions[0]
			item.Submission = &dto.SubmissionView{
				ID:          submission.ID,
				SubmittedAt: submission.SubmittedAt,
				Status:      submission.Status,
			}
			completed++

			if grade := submission.LatestGrade(); grade != nil {
				item.Grade = &dto.GradeView{
					Score:    grade.Score,
					MaxScore: grade.MaxScore,
					Feedback: grade.Feedback,
					GradedAt: grade.GradedAt,
				}
				graded++
			}
		}

		detail.Assignments = append(detail.Assignments, item)
	}

	for _, announcement := range course.Announcements {
		detail.Announcements = append(detail.Announcements, dto.AnnouncementResponse{
			ID:        announcement.ID,
			Title:     announcement.Title,
			Content:   s.policy.Sanitize(announcement.Content),
			IsPinned:  announcement.IsPinned,
			CreatedAt: announcement.CreatedAt,
		})
	}

	for _, material := range course.Materials {
		detail.Materials = append(detail.Materials, dto.MaterialResponse{
			ID:          material.ID,
			Title:       material.Title,
			Description: material.Description,
			FileURL:     material.FileURL,
			Metadata:    material.Metadata,
			UploadedAt:  material.UploadedAt,
		})
	}

	detail.Stats = dto.CourseDetailStats{
		CourseStats: dto.CourseStats{
			TotalAssignments:   len(course.Assignments),
			TotalAnnouncements: len(course.Announcements),
			TotalMaterials:     len(course.Materials),
		},
		CompletedAssignments: completed,
		GradedAssignments:    graded,
	}

	return detail, nil
}
