package service

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
)

func setupSeedService(t *testing.T, enabled bool) (SeedService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}))

	svc := NewSeedService(
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
		enabled,
		zerolog.New(io.Discard),
	)

	return svc, db
}

func TestSeedCoursesIsIdempotent(t *testing.T) {
	svc, db := setupSeedService(t, true)
	ctx := context.Background()

	items := []models.Course{
		{Code: "cs101", Name: "Intro to Computer Science", Instructor: "Dr. Hopper", Semester: "Fall", Year: 2026},
		{Code: "MATH201", Name: "Linear Algebra", Instructor: "Dr. Noether", Semester: "Spring", Year: 2026},
	}

	_, err := svc.SeedCourses(ctx, items)
	require.NoError(t, err)

	// rerun with an edit; the code collision must update, not duplicate
	items[0].Name = "Intro to CS"
	_, err = svc.SeedCourses(ctx, items)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	require.EqualValues(t, 2, count)

	var stored models.Course
	require.NoError(t, db.First(&stored, "code = ?", "CS101").Error)
	require.Equal(t, "Intro to CS", stored.Name)
	require.True(t, stored.IsActive)
}

func TestSeedAccountsHashesPasswords(t *testing.T) {
	svc, db := setupSeedService(t, true)

	_, err := svc.SeedAccounts(context.Background(), []dto.SeedAccount{
		{Email: "Demo@Example.com", Name: "Demo Admin", Password: "Sup3rSecret", Role: "admin"},
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "demo@example.com").Error)
	require.Equal(t, models.RoleAdmin, stored.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret")))
}

func TestSeedAccountsDefaultsUnknownRoleToStudent(t *testing.T) {
	svc, db := setupSeedService(t, true)

	_, err := svc.SeedAccounts(context.Background(), []dto.SeedAccount{
		{Email: "weird@example.com", Name: "Weird", Password: "Sup3rSecret", Role: "WIZARD"},
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "weird@example.com").Error)
	require.Equal(t, models.RoleStudent, stored.Role)
}

func TestSeedRefusesWhenDisabled(t *testing.T) {
	svc, _ := setupSeedService(t, false)
	ctx := context.Background()

	_, err := svc.SeedCourses(ctx, []models.Course{{Code: "CS101", Name: "X", Instructor: "Y", Semester: "Fall", Year: 2026}})
	require.ErrorIs(t, err, ErrSeedDisabled)

	_, err = svc.SeedAccounts(ctx, []dto.SeedAccount{{Email: "a@b.c", Name: "A", Password: "Sup3rSecret"}})
	require.ErrorIs(t, err, ErrSeedDisabled)
}
