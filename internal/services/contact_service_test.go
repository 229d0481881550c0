package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/testutil"
)

func TestContactAddAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	contact, err := svc.Add(ctx, "user-1", ContactInput{
		Name:         "Mona Hassan",
		Email:        "mona@example.com",
		Phone:        "+97312345678",
		Relationship: "mother",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)

	_, err = svc.Add(ctx, "user-2", ContactInput{
		Name: "Other", Email: "other@example.com", Relationship: "friend",
	})
	require.NoError(t, err)

	contacts, err := svc.ListContacts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Mona Hassan", contacts[0].Name)
}

func TestContactAddValidations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	var appErr *apperrors.AppError

	_, err := svc.Add(ctx, "user-1", ContactInput{Name: "M", Email: "mona@example.com", Relationship: "mother"})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Add(ctx, "user-1", ContactInput{Name: "Mona", Email: "not-an-email", Relationship: "mother"})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Add(ctx, "user-1", ContactInput{Name: "Mona", Email: "mona@example.com", Relationship: "  "})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestContactRemoveOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	contact, err := svc.Add(ctx, "user-1", ContactInput{
		Name: "Mona", Email: "mona@example.com", Relationship: "mother",
	})
	require.NoError(t, err)

	var appErr *apperrors.AppError
	err = svc.Remove(ctx, contact.ID, "user-2")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	require.NoError(t, svc.Remove(ctx, contact.ID, "user-1"))

	contacts, err := svc.ListContacts(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
