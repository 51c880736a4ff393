package services

import (
	"testing"

	"hotelease-backend/models"
	"hotelease-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{
		models.RoleAdmin,
		models.RoleHotelManager,
		models.RoleReception,
		models.RoleHousekeeping,
		models.RoleGuest,
	} {
		require.NoError(t, db.Create(&models.Role{Name: name}).Error)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	seedRoles(t, db)
	svc := NewAuthService(db)

	res, err := svc.Register(RegisterInput{
		CompanyName: "Grand Plaza",
		Address:     map[string]string{"city": "Lisbon", "country": "PT"},
		Name:        "Alex Owner",
		Email:       "Owner@Example.com",
		Password:    "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", res.User.Email)
	assert.Equal(t, models.RoleAdmin, res.User.Role.Name)
	assert.NotZero(t, res.User.CompanyID)

	claims, err := utils.ParseAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, res.User.CompanyID, claims.CompanyID)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	login, err := svc.Login("owner@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login("owner@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login("nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	seedRoles(t, db)
	svc := NewAuthService(db)

	base := RegisterInput{
		CompanyName: "Grand Plaza",
		Name:        "Alex Owner",
		Email:       "owner@example.com",
		Password:    "supersecret",
	}

	short := base
	short.Password = "short"
	_, err := svc.Register(short)
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := base
	bad.Email = "not-an-email"
	_, err = svc.Register(bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(base)
	require.NoError(t, err)

	// Same company name again: the unique index turns into a conflict.
	dup := base
	dup.Email = "other@example.com"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginDeactivatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	seedRoles(t, db)
	svc := NewAuthService(db)

	res, err := svc.Register(RegisterInput{
		CompanyName: "Grand Plaza",
		Name:        "Alex Owner",
		Email:       "owner@example.com",
		Password:    "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", res.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login("owner@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStaffLifecycle(t *testing.T) {
	f := newFixture(t)
	seedRoles(t, f.db)
	svc := NewUserService(f.db)

	created, err := svc.Create(f.company.ID, UserInput{
		Name:     "New Receptionist",
		Email:    "reception@example.com",
		Password: "longenough",
		RoleName: models.RoleReception,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, models.RoleReception, created.Role.Name)
	assert.NotEqual(t, "longenough", created.Password)

	_, err = svc.Create(f.company.ID, UserInput{
		Name:     "Bad Role",
		Email:    "bad@example.com",
		Password: "longenough",
		RoleName: "Janitor",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.Update(f.company.ID, created.ID, "Renamed Receptionist", models.RoleHousekeeping)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Receptionist", updated.Name)
	assert.Equal(t, models.RoleHousekeeping, updated.Role.Name)

	// Staff management is tenant scoped like everything else.
	_, err = svc.GetByID(f.other.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Deactivate(f.company.ID, created.ID))
	got, err := svc.GetByID(f.company.ID, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
