package models

import "time"

// Assignment belongs to a course. Students only ever see published
// assignments; drafts stay instructor-side.
type Assignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uint      `gorm:"not null;index" json:"course_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	MaxPoints   float64   `gorm:"not null;default:100" json:"max_points"`
	IsPublished bool      `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Course      Course       `json:"course,omitempty"`
	Submissions []Submission `json:"submissions,omitempty"`
}

// DueWithin reports whether the assignment is due after now but no later
// than now plus the given window.
func (a Assignment) DueWithin(now time.Time, window time.Duration) bool {
	return a.DueDate.After(now) && !a.DueDate.After(now.Add(window))
}

// IsPastDue returns true when the assignment deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.DueDate)
}
