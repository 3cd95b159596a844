package models

import "time"

// EnrollmentStatusActive marks a live enrollment.
const EnrollmentStatusActive = "ACTIVE"

// Enrollment links a user to a course. The composite unique index on
// (user_id, course_id) is the actual guard against duplicate enrollments;
// the service-level pre-check is only a fast path.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_enrollment_user_course" json:"user_id"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_enrollment_user_course" json:"course_id"`
	Status     string    `gorm:"size:32;not null;default:ACTIVE" json:"status"`
	EnrolledAt time.Time `gorm:"not null" json:"enrolled_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Course Course `json:"course"`
}
