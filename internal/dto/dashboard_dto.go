package dto

import "time"

// DashboardResponse aggregates a student's portal activity into one payload.
type DashboardResponse struct {
	Courses             []EnrolledCourse     `json:"courses"`
	UpcomingAssignments []UpcomingAssignment `json:"upcoming_assignments"`
	RecentAnnouncements []AnnouncementDigest `json:"recent_announcements"`
	RecentGrades        []GradeDigest        `json:"recent_grades"`
	Statistics          DashboardStatistics  `json:"statistics"`
}

// EnrolledCourse summarises one enrolled course for the dashboard.
type EnrolledCourse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	Instructor        string `json:"instructor"`
	Credits           int    `json:"credits"`
	Semester          string `json:"semester"`
	Year              int    `json:"year"`
	AssignmentCount   int    `json:"assignment_count"`
	AnnouncementCount int    `json:"announcement_count"`
}

// UpcomingAssignment is an assignment due within the dashboard window,
// tagged with its course.
type UpcomingAssignment struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"due_date"`
	MaxPoints  float64   `json:"max_points"`
	CourseName string    `json:"course_name"`
	CourseCode string    `json:"course_code"`
}

// AnnouncementDigest is a recent announcement tagged with its course.
type AnnouncementDigest struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPinned   bool      `json:"is_pinned"`
	CreatedAt  time.Time `json:"created_at"`
	CourseName string    `json:"course_name"`
	CourseCode string    `json:"course_code"`
}

// GradeDigest is a recent grade tagged with its assignment and course.
type GradeDigest struct {
	ID              uint      `json:"id"`
	Score           float64   `json:"score"`
	MaxScore        float64   `json:"max_score"`
	Feedback        string    `json:"feedback,omitempty"`
	GradedAt        time.Time `json:"graded_at"`
	AssignmentTitle string    `json:"assignment_title"`
	CourseName      string    `json:"course_name"`
	CourseCode      string    `json:"course_code"`
}

// DashboardStatistics carries the derived dashboard numbers. GPA is
// (earned/total)*4 on a 0-4 scale, not a credit-weighted average.
type DashboardStatistics struct {
	TotalCourses         int     `json:"total_courses"`
	TotalAssignments     int     `json:"total_assignments"`
	SubmittedAssignments int     `json:"submitted_assignments"`
	GradedAssignments    int     `json:"graded_assignments"`
	GPA                  float64 `json:"gpa"`
	TotalPoints          float64 `json:"total_points"`
	EarnedPoints         float64 `json:"earned_points"`
}
