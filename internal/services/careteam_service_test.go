package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/testutil"
)

func seedUser(t *testing.T, db *gorm.DB, email, fullName, role, hospital string) *database.User {
	t.Helper()
	user := &database.User{
		Email:          email,
		Password:       "x",
		FullName:       fullName,
		Role:           role,
		HospitalClinic: hospital,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCareTeamAddProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCareTeamService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	physician := seedUser(t, db, "doc@example.com", "Dr. Hassan Abdulrahman", database.RolePhysician, "")

	relation, provider, err := svc.AddProvider(ctx, patient.ID, "doc@example.com", "all")
	require.NoError(t, err)
	assert.Equal(t, physician.ID, provider.ID)
	assert.Equal(t, database.CareTeamApproved, relation.Status)

	// Duplicate add is rejected.
	var appErr *apperrors.AppError
	_, _, err = svc.AddProvider(ctx, patient.ID, "doc@example.com", "all")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)

	relations, err := svc.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, relations, 1)
	assert.Equal(t, physician.ID, relations[0].Provider.ID)
}

func TestCareTeamAddProviderValidations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCareTeamService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	seedUser(t, db, "friend@example.com", "Just A Friend", database.RolePatient, "")

	var appErr *apperrors.AppError

	_, _, err := svc.AddProvider(ctx, patient.ID, "doc@example.com", "invalid-scope")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	_, _, err = svc.AddProvider(ctx, patient.ID, "nobody@example.com", "glucose")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	// Patients cannot be added as providers.
	_, _, err = svc.AddProvider(ctx, patient.ID, "friend@example.com", "glucose")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCareTeamPendingRequestFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCareTeamService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	// Name and hospital match directory entry DIA001 at Salmaniya.
	physician := seedUser(t, db, "hassan@example.com", "Dr. Hassan Abdulrahman",
		database.RolePhysician, "Salmaniya Medical Complex")

	require.NoError(t, svc.CreatePendingRequest(ctx, patient.ID, "H001", "DIA001"))

	count, err := svc.PendingCount(ctx, physician)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	requests, err := svc.PendingForPhysician(ctx, physician)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Salmaniya Medical Complex", requests[0].HospitalName)
	assert.Equal(t, "Dr. Hassan Abdulrahman", requests[0].DoctorName)
	assert.Equal(t, patient.ID, requests[0].PatientID)

	resolved, err := svc.ResolveRequest(ctx, physician, requests[0].ID, database.CareTeamApproved)
	require.NoError(t, err)
	assert.Equal(t, database.CareTeamApproved, resolved.Status)

	// The physician is now an approved provider for the patient.
	relation, err := svc.Relation(ctx, patient.ID, physician.ID)
	require.NoError(t, err)
	require.NotNil(t, relation)

	count, err = svc.PendingCount(ctx, physician)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCareTeamResolveRequestAuthorization(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCareTeamService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	// This physician matches a different directory entry.
	other := seedUser(t, db, "noor@example.com", "Dr. Noor Al-Sayed",
		database.RolePhysician, "King Hamad University Hospital")

	require.NoError(t, svc.CreatePendingRequest(ctx, patient.ID, "H001", "DIA001"))

	var pending database.CareTeamRelation
	require.NoError(t, db.Where("status = ?", database.CareTeamPending).First(&pending).Error)

	var appErr *apperrors.AppError
	_, err := svc.ResolveRequest(ctx, other, pending.ID, database.CareTeamApproved)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypePermission, appErr.Type)

	_, err = svc.ResolveRequest(ctx, other, pending.ID, "maybe")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCareTeamRemoveOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCareTeamService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	seedUser(t, db, "doc@example.com", "Dr. Hassan", database.RolePhysician, "")

	relation, _, err := svc.AddProvider(ctx, patient.ID, "doc@example.com", "glucose")
	require.NoError(t, err)

	var appErr *apperrors.AppError
	err = svc.Remove(ctx, relation.ID, "someone-else")
	require.ErrorAs(t, err, &appErr)

	require.NoError(t, svc.Remove(ctx, relation.ID, patient.ID))
}
