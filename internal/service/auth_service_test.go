package service

import (
	"testing"
	"time"

	"gramseva/config"
	"gramseva/internal/auth"
	"gramseva/internal/domain"
	"gramseva/internal/models"
	"gramseva/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.UserRepository, *repository.NotificationRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Notification{}))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access",
			RefreshSecret: "test-refresh",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 24 * time.Hour,
			Issuer:        "gramseva",
		},
	}
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	notifSvc := NewNotificationService(notifRepo, userRepo, nil)
	return NewAuthService(cfg, userRepo, notifSvc), userRepo, notifRepo
}

func TestRegisterStartsPending(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	u, access, refresh, err := svc.Register("Ramesh Patil", "Ramesh@Example.com", "9876543210", "secret-pass-1", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCitizen, u.Role)
	assert.Equal(t, domain.UserStatusPending, u.Status)
	assert.Equal(t, "ramesh@example.com", u.Email)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.False(t, u.IsApproved())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, _, err := svc.Register("A", "dup@example.com", "9876543210", "secret-pass-1", nil)
	require.NoError(t, err)
	_, _, _, err = svc.Register("B", "DUP@example.com", "9876543211", "secret-pass-2", nil)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, _, err := svc.Register("Ramesh", "login@example.com", "9876543210", "secret-pass-1", nil)
	require.NoError(t, err)

	u, access, _, err := svc.Login("login@example.com", "secret-pass-1")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", u.Email)

	cfg := &config.JWTConfig{AccessSecret: "test-access", Issuer: "gramseva"}
	claims, err := auth.ParseAccessToken(cfg, access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, domain.RoleCitizen, claims.Role)

	_, _, _, err = svc.Login("login@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCreds)
	_, _, _, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestRefresh(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	u, _, refresh, err := svc.Register("Ramesh", "refresh@example.com", "9876543210", "secret-pass-1", nil)
	require.NoError(t, err)

	access, err := svc.Refresh(refresh)
	require.NoError(t, err)
	cfg := &config.JWTConfig{AccessSecret: "test-access", Issuer: "gramseva"}
	claims, err := auth.ParseAccessToken(cfg, access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, err = svc.Refresh("not-a-token")
	assert.Error(t, err)
}

func TestSetApprovalNotifiesCitizen(t *testing.T) {
	svc, userRepo, notifRepo := newAuthFixture(t)
	u, _, _, err := svc.Register("Ramesh", "approve@example.com", "9876543210", "secret-pass-1", nil)
	require.NoError(t, err)

	require.NoError(t, svc.SetApproval(u.ID, true))
	updated, err := userRepo.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusApproved, updated.Status)
	assert.True(t, updated.IsApproved())

	notifs, err := notifRepo.ListByUserID(u.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "ACCOUNT_APPROVED", notifs[0].Type)

	require.NoError(t, svc.SetApproval(u.ID, false))
	updated, err = userRepo.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusRejected, updated.Status)
}

func TestLoginWithGoogleLinksExistingAccount(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	existing, _, _, err := svc.Register("Ramesh", "gmail@example.com", "9876543210", "secret-pass-1", nil)
	require.NoError(t, err)

	u, _, _, created, err := svc.LoginWithGoogle("google-123", "gmail@example.com", "Ramesh P", "https://pic.example/a.jpg")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, u.ID)

	stored, err := userRepo.GetByGoogleID("google-123")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, stored.ID)
}

func TestLoginWithGoogleCreatesPendingCitizen(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	u, _, _, created, err := svc.LoginWithGoogle("google-456", "new@example.com", "New Citizen", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.UserStatusPending, u.Status)
	assert.Equal(t, domain.RoleCitizen, u.Role)

	// Second login finds the same account.
	again, _, _, created, err := svc.LoginWithGoogle("google-456", "new@example.com", "New Citizen", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
}
