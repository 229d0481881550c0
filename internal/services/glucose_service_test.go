package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/testutil"
)

func TestGlucoseCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewGlucoseService(db)
	ctx := context.Background()

	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)
	_, err := svc.Create(ctx, "user-1", 110, older, "fasting")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-1", 145, newer, "after lunch")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", 99, newer, "")
	require.NoError(t, err)

	readings, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, readings, 2)
	// Newest first.
	assert.Equal(t, 145, readings[0].Value)
	assert.Equal(t, 110, readings[1].Value)
}

func TestGlucoseCreateRangeValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewGlucoseService(db)
	ctx := context.Background()

	var appErr *apperrors.AppError
	_, err := svc.Create(ctx, "user-1", 19, time.Now(), "")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	_, err = svc.Create(ctx, "user-1", 601, time.Now(), "")
	require.ErrorAs(t, err, &appErr)

	// Boundaries are valid.
	_, err = svc.Create(ctx, "user-1", 20, time.Now(), "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-1", 600, time.Now(), "")
	require.NoError(t, err)
}

func TestGlucoseCreateDefaultsTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewGlucoseService(db)

	reading, err := svc.Create(context.Background(), "user-1", 100, time.Time{}, "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), reading.Timestamp, 5*time.Second)
}

func TestGlucoseDeleteOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewGlucoseService(db)
	ctx := context.Background()

	reading, err := svc.Create(ctx, "user-1", 100, time.Now(), "")
	require.NoError(t, err)

	// Another user cannot delete it.
	var appErr *apperrors.AppError
	err = svc.Delete(ctx, reading.ID, "user-2")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	require.NoError(t, svc.Delete(ctx, reading.ID, "user-1"))

	readings, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, readings)
}
