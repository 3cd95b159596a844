package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// CourseFilter narrows catalog listings.
type CourseFilter struct {
	Search   string
	Semester string
	Year     int
}

// CourseRepository defines catalog reads. All queries are scoped to active
// courses; the requesting user's id scopes enrollment and submission
// preloads so one student never sees another's records.
type CourseRepository interface {
	List(ctx context.Context, userID uint, filter CourseFilter) ([]models.Course, error)
	GetActiveByID(ctx context.Context, id, userID uint) (models.Course, error)
	MaterialCounts(ctx context.Context, courseIDs []uint) (map[uint]int64, error)
	UpsertByCode(ctx context.Context, items []models.Course) (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository instantiates a GORM-backed repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) List(ctx context.Context, userID uint, filter CourseFilter) ([]models.Course, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("is_active = ?", true)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(instructor) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.Semester != "" {
		query = query.Where("semester = ?", filter.Semester)
	}

	if filter.Year > 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var courses []models.Course
	err := query.
		Preload("Enrollments", func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", userID)
		}).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("due_date ASC")
		}).
		Preload("Announcements", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("year DESC").
		Order("semester ASC").
		Order("name ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) GetActiveByID(ctx context.Context, id, userID uint) (models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		Preload("Enrollments", func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", userID)
		}).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("due_date ASC")
		}).
		Preload("Assignments.Submissions", func(db *gorm.DB) *gorm.DB {
			return db.Where("student_id = ?", userID).Order("submitted_at DESC")
		}).
		Preload("Assignments.Submissions.Grades", func(db *gorm.DB) *gorm.DB {
			return db.Order("graded_at DESC")
		}).
		Preload("Announcements", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_pinned DESC").Order("created_at DESC")
		}).
		Preload("Materials", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at DESC")
		}).
		First(&course).Error
	if err != nil {
		return models.Course{}, err
	}

	return course, nil
}

func (r *courseRepository) MaterialCounts(ctx context.Context, courseIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(courseIDs))
	if len(courseIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CourseID uint
		Total    int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.CourseMaterial{}).
		Select("course_id, COUNT(*) AS total").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, item := range rows {
		counts[item.CourseID] = item.Total
	}

	return counts, nil
}

// UpsertByCode inserts courses, updating rows whose code already exists.
// Used by the demo-data seeder so repeated runs stay idempotent.
func (r *courseRepository) UpsertByCode(ctx context.Context, items []models.Course) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "instructor", "credits", "semester", "year", "is_active", "updated_at"}),
	})

	result := tx.Create(&items)
	return result.RowsAffected, result.Error
}
