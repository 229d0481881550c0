package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/testutil"
)

func registerPatient(t *testing.T, svc *UserService, email string) *database.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: "sup3rsecret",
		FullName: "Amira Hassan",
		Role:     database.RolePatient,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterAndAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	user := registerPatient(t, svc, "amira@example.com")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, database.RolePatient, user.Role)
	// Stored hashed, never the raw password.
	assert.NotEqual(t, "sup3rsecret", user.Password)
	assert.Len(t, user.Password, 64)

	authed, err := svc.Authenticate(ctx, "amira@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterValidations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	var appErr *apperrors.AppError

	_, err := svc.Register(ctx, RegisterInput{Email: "not-an-email", Password: "sup3rsecret", FullName: "Amira"})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "short", FullName: "Amira"})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "sup3rsecret", FullName: "A"})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "sup3rsecret", FullName: "Amira", Role: "superuser"})
	require.ErrorAs(t, err, &appErr)

	// Physicians must provide a license number.
	_, err = svc.Register(ctx, RegisterInput{
		Email: "doc@b.com", Password: "sup3rsecret", FullName: "Dr. Hassan", Role: database.RolePhysician,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)

	registerPatient(t, svc, "amira@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "amira@example.com",
		Password: "anotherpass",
		FullName: "Someone Else",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	registerPatient(t, svc, "amira@example.com")

	var appErr *apperrors.AppError
	_, err := svc.Authenticate(ctx, "amira@example.com", "wrongpass")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeAuth, appErr.Type)

	// Same error for unknown accounts.
	_, err = svc.Authenticate(ctx, "nobody@example.com", "whatever")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeAuth, appErr.Type)
}

func TestAuthenticateLockedAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	user := registerPatient(t, svc, "amira@example.com")
	_, err := svc.SetLocked(ctx, user.ID, true)
	require.NoError(t, err)

	var appErr *apperrors.AppError
	_, err = svc.Authenticate(ctx, "amira@example.com", "sup3rsecret")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypePermission, appErr.Type)

	// Unlock restores access.
	_, err = svc.SetLocked(ctx, user.ID, false)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "amira@example.com", "sup3rsecret")
	require.NoError(t, err)
}

func TestSetPasswordAndVerifyEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	user := registerPatient(t, svc, "amira@example.com")

	require.NoError(t, svc.SetPassword(ctx, user.ID, "newpassword1"))
	_, err := svc.Authenticate(ctx, "amira@example.com", "newpassword1")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "amira@example.com", "sup3rsecret")
	require.Error(t, err)

	require.NoError(t, svc.VerifyEmail(ctx, user.ID))
	refreshed, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.EmailVerified)
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	user := registerPatient(t, svc, "amira@example.com")

	name := "Amira H. Hassan"
	dtype := "type1"
	updated, err := svc.UpdateProfile(ctx, user.ID, ProfileUpdate{FullName: &name, DiabetesType: &dtype})
	require.NoError(t, err)
	assert.Equal(t, "Amira H. Hassan", updated.FullName)
	assert.Equal(t, "type1", updated.DiabetesType)

	// Rejects non-image payloads.
	bad := "data:text/html;base64,xxxx"
	var appErr *apperrors.AppError
	_, err = svc.UpdateProfile(ctx, user.ID, ProfileUpdate{ProfileImage: &bad})
	require.ErrorAs(t, err, &appErr)

	// Empty update set is a validation error.
	_, err = svc.UpdateProfile(ctx, user.ID, ProfileUpdate{})
	require.ErrorAs(t, err, &appErr)
}
