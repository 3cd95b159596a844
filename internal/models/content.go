package models

import (
	"time"

	"gorm.io/datatypes"
)

// Announcement is a course-scoped notice. Content may contain markup and is
// sanitised on the way out, never trusted as stored.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	IsPinned  bool      `gorm:"not null;default:false" json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourseMaterial is a downloadable resource attached to a course. Metadata
// holds file attributes (size, mime type) as loose JSON.
type CourseMaterial struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	CourseID    uint              `gorm:"not null;index" json:"course_id"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	FileURL     string            `gorm:"size:512;not null" json:"file_url"`
	Metadata    datatypes.JSONMap `gorm:"type:json" json:"metadata,omitempty"`
	UploadedAt  time.Time         `gorm:"not null" json:"uploaded_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
