package dto

import "time"

// EnrollmentResponse confirms a successful enrollment, denormalising the
// course name and code for confirmation messaging.
type EnrollmentResponse struct {
	EnrollmentID uint      `json:"enrollment_id"`
	CourseName   string    `json:"course_name"`
	CourseCode   string    `json:"course_code"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}
