package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/testutil"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestAlertSettingsLookupAbsent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAlertSettingsService(db)

	settings, err := svc.Lookup(context.Background(), "no-such-user")
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestAlertSettingsGetOrCreateDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAlertSettingsService(db)

	settings, err := svc.GetOrCreate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultHighThreshold, settings.HighThreshold)
	assert.Equal(t, DefaultLowThreshold, settings.LowThreshold)
	assert.True(t, settings.EmailAlerts)
	assert.False(t, settings.SMSAlerts)

	// Second call returns the same row, not a new one.
	again, err := svc.GetOrCreate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestAlertSettingsPartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAlertSettingsService(db)

	updated, err := svc.Update(context.Background(), "user-1", AlertSettingsUpdate{
		HighThreshold: intPtr(200),
	})
	require.NoError(t, err)
	assert.Equal(t, 200, updated.HighThreshold)
	assert.Equal(t, DefaultLowThreshold, updated.LowThreshold)
	assert.True(t, updated.EmailAlerts)

	updated, err = svc.Update(context.Background(), "user-1", AlertSettingsUpdate{
		EmailAlerts: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 200, updated.HighThreshold)
	assert.False(t, updated.EmailAlerts)
}

func TestAlertSettingsThresholdRangeValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAlertSettingsService(db)

	_, err := svc.Update(context.Background(), "user-1", AlertSettingsUpdate{HighThreshold: intPtr(99)})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	_, err = svc.Update(context.Background(), "user-1", AlertSettingsUpdate{HighThreshold: intPtr(601)})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Update(context.Background(), "user-1", AlertSettingsUpdate{LowThreshold: intPtr(19)})
	require.ErrorAs(t, err, &appErr)

	_, err = svc.Update(context.Background(), "user-1", AlertSettingsUpdate{LowThreshold: intPtr(101)})
	require.ErrorAs(t, err, &appErr)
}

func TestAlertSettingsOverlapAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAlertSettingsService(db)

	// low >= high is accepted as long as each value is within its own range.
	updated, err := svc.Update(context.Background(), "user-1", AlertSettingsUpdate{
		HighThreshold: intPtr(100),
		LowThreshold:  intPtr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.HighThreshold)
	assert.Equal(t, 100, updated.LowThreshold)
}

func TestAlertSettingsEmptyUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAlertSettingsService(db)

	settings, err := svc.Update(context.Background(), "user-1", AlertSettingsUpdate{})
	require.NoError(t, err)
	assert.Equal(t, DefaultHighThreshold, settings.HighThreshold)
}
