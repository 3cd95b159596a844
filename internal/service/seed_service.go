package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

// ErrSeedDisabled indicates the seeding tools are switched off, which is
// always the case in production.
var ErrSeedDisabled = errors.New("seeding is disabled")

// SeedService loads demo data for local development and staging. Writes are
// keyed on natural identifiers (course code, account email) so repeated runs
// stay idempotent. Authorisation is handled by the admin route guard, not
// here.
type SeedService interface {
	SeedCourses(ctx context.Context, items []models.Course) (int64, error)
	SeedAccounts(ctx context.Context, items []dto.SeedAccount) (int64, error)
}

type seedService struct {
	courses repository.CourseRepository
	users   repository.UserRepository
	enabled bool
	logger  zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(courses repository.CourseRepository, users repository.UserRepository, enabled bool, logger zerolog.Logger) SeedService {
	return &seedService{
		courses: courses,
		users:   users,
		enabled: enabled,
		logger:  logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) SeedCourses(ctx context.Context, items []models.Course) (int64, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}

	normalized := normalizeCourses(items)
	affected, err := s.courses.UpsertByCode(ctx, normalized)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("affected", affected).Msg("courses seeded")
	return affected, nil
}

func (s *seedService) SeedAccounts(ctx context.Context, items []dto.SeedAccount) (int64, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}

	users := make([]models.User, 0, len(items))
	for _, item := range items {
		hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcryptCost)
		if err != nil {
			return 0, fmt.Errorf("hash seed password: %w", err)
		}

		role := strings.ToUpper(strings.TrimSpace(item.Role))
		if !models.ValidRole(role) {
			role = models.RoleStudent
		}

		users = append(users, models.User{
			Email:        strings.ToLower(strings.TrimSpace(item.Email)),
			Name:         item.Name,
			PasswordHash: string(hash),
			Role:         role,
		})
	}

	affected, err := s.users.UpsertByEmail(ctx, users)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("affected", affected).Msg("accounts seeded")
	return affected, nil
}

func normalizeCourses(items []models.Course) []models.Course {
	for i := range items {
		items[i].Code = strings.ToUpper(strings.TrimSpace(items[i].Code))
		items[i].IsActive = true
	}
	return items
}
