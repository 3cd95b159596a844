package models

import "time"

// Course is a catalog entry. Courses are created by administrative tooling
// and are read-only from the student-facing API.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Instructor  string    `gorm:"size:100;not null" json:"instructor"`
	Credits     int       `gorm:"not null;default:3" json:"credits"`
	Semester    string    `gorm:"size:32;not null" json:"semester"`
	Year        int       `gorm:"not null" json:"year"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Enrollments   []Enrollment     `json:"enrollments,omitempty"`
	Assignments   []Assignment     `json:"assignments,omitempty"`
	Announcements []Announcement   `json:"announcements,omitempty"`
	Materials     []CourseMaterial `json:"materials,omitempty"`
}
