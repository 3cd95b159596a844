package dto

import (
	"time"

	"gorm.io/datatypes"
)

// CourseListQuery captures the catalog filter parameters.
type CourseListQuery struct {
	Search   string `query:"search" validate:"omitempty,max=100"`
	Semester string `query:"semester" validate:"omitempty,max=32"`
	Year     int    `query:"year" validate:"omitempty,min=1900,max=2200"`
}

// AssignmentBrief is the trimmed assignment view used in catalog listings.
type AssignmentBrief struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}

// AnnouncementBrief is the trimmed announcement view used in catalog listings.
type AnnouncementBrief struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CourseStats aggregates per-course counts.
type CourseStats struct {
	TotalAssignments   int `json:"total_assignments"`
	TotalAnnouncements int `json:"total_announcements"`
	TotalMaterials     int `json:"total_materials"`
}

// CourseSummary is one row of the catalog listing, personalised with the
// requesting user's enrollment state.
type CourseSummary struct {
	ID                  uint                `json:"id"`
	Code                string              `json:"code"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	Instructor          string              `json:"instructor"`
	Credits             int                 `json:"credits"`
	Semester            string              `json:"semester"`
	Year                int                 `json:"year"`
	IsEnrolled          bool                `json:"is_enrolled"`
	EnrolledAt          *time.Time          `json:"enrolled_at,omitempty"`
	EnrollmentStatus    string              `json:"enrollment_status,omitempty"`
	UpcomingAssignments []AssignmentBrief   `json:"upcoming_assignments"`
	RecentAnnouncements []AnnouncementBrief `json:"recent_announcements"`
	Stats               CourseStats         `json:"stats"`
}

// SubmissionView is the caller's own submission state for an assignment.
type SubmissionView struct {
	ID          uint      `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}

// GradeView is the most recent grade attached to the caller's submission.
type GradeView struct {
	Score    float64   `json:"score"`
	MaxScore float64   `json:"max_score"`
	Feedback string    `json:"feedback,omitempty"`
	GradedAt time.Time `json:"graded_at"`
}

// AssignmentDetail annotates an assignment with the requesting student's own
// submission and latest grade, never a classmate's.
type AssignmentDetail struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"due_date"`
	MaxPoints   float64         `json:"max_points"`
	CreatedAt   time.Time       `json:"created_at"`
	Submission  *SubmissionView `json:"submission"`
	Grade       *GradeView      `json:"grade"`
}

// AnnouncementResponse is the full announcement view with sanitised content.
type AnnouncementResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// MaterialResponse describes a downloadable course resource.
type MaterialResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	FileURL     string            `json:"file_url"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty"`
	UploadedAt  time.Time         `json:"uploaded_at"`
}

// CourseDetailStats extends the catalog counts with the caller's progress.
type CourseDetailStats struct {
	CourseStats
	CompletedAssignments int `json:"completed_assignments"`
	GradedAssignments    int `json:"graded_assignments"`
}

// CourseDetail is the expanded single-course view.
type CourseDetail struct {
	ID               uint                   `json:"id"`
	Code             string                 `json:"code"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Instructor       string                 `json:"instructor"`
	Credits          int                    `json:"credits"`
	Semester         string                 `json:"semester"`
	Year             int                    `json:"year"`
	IsEnrolled       bool                   `json:"is_enrolled"`
	EnrolledAt       *time.Time             `json:"enrolled_at,omitempty"`
	EnrollmentStatus string                 `json:"enrollment_status,omitempty"`
	Assignments      []AssignmentDetail     `json:"assignments"`
	Announcements    []AnnouncementResponse `json:"announcements"`
	Materials        []MaterialResponse     `json:"materials"`
	Stats            CourseDetailStats      `json:"stats"`
}
