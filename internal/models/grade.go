package models

import "time"

// GradeStatusGraded marks a finalised grade record.
const GradeStatusGraded = "GRADED"

// Grade is an evaluation attached to a submission. A submission may carry
// several grade rows over time; consumers take the most recent.
type Grade struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	Score        float64   `gorm:"not null" json:"score"`
	MaxScore     float64   `gorm:"not null" json:"max_score"`
	Feedback     string    `gorm:"type:text" json:"feedback"`
	Status       string    `gorm:"size:32;not null;default:GRADED" json:"status"`
	GradedAt     time.Time `gorm:"not null" json:"graded_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Submission Submission `json:"submission,omitempty"`
}
