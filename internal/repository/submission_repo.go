package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// SubmissionRepository defines data operations for student submissions.
type SubmissionRepository interface {
	ListRecentByStudent(ctx context.Context, studentID uint, limit int) ([]models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) ListRecentByStudent(ctx context.Context, studentID uint, limit int) ([]models.Submission, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("student_id = ?", studentID).
		Preload("Assignment").
		Preload("Assignment.Course").
		Preload("Grades", func(db *gorm.DB) *gorm.DB {
			return db.Order("graded_at DESC")
		}).
		Order("submitted_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var submissions []models.Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}
