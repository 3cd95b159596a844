package models

import "time"

const (
	// SubmissionStatusSubmitted indicates work handed in but not yet graded.
	SubmissionStatusSubmitted = "SUBMITTED"
	// SubmissionStatusGraded indicates the submission has been evaluated.
	SubmissionStatusGraded = "GRADED"
)

// Submission is a student's hand-in for an assignment. The store may keep a
// history per (student, assignment); consumers treat the newest row as the
// current one.
type Submission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssignmentID uint      `gorm:"not null;index" json:"assignment_id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	Status       string    `gorm:"size:32;not null;default:SUBMITTED" json:"status"`
	SubmittedAt  time.Time `gorm:"not null" json:"submitted_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Assignment Assignment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assignment,omitempty"`
	Grades     []Grade    `json:"grades,omitempty"`
}

// LatestGrade returns the most recently graded record, or nil when none
// exists. Grades are expected newest-first when preloaded.
func (s Submission) LatestGrade() *Grade {
	if len(s.Grades) == 0 {
		return nil
	}
	latest := s.Grades[0]
	for _, grade := range s.Grades[1:] {
		if grade.GradedAt.After(latest.GradedAt) {
			latest = grade
		}
	}
	return &latest
}
