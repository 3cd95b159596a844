package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// GradeRepository defines data operations for grades.
type GradeRepository interface {
	ListGradedByStudent(ctx context.Context, studentID uint) ([]models.Grade, error)
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository instantiates the repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) ListGradedByStudent(ctx context.Context, studentID uint) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND status = ?", studentID, models.GradeStatusGraded).
		Preload("Submission").
		Preload("Submission.Assignment").
		Preload("Submission.Assignment.Course").
		Order("graded_at DESC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}

	return grades, nil
}
