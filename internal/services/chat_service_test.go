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

func TestChatSendAndThread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewChatService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	doctor := seedUser(t, db, "doc@example.com", "Dr. Hassan", database.RolePhysician, "")

	_, err := svc.Send(ctx, patient.ID, doctor.ID, "My readings look high today")
	require.NoError(t, err)
	_, err = svc.Send(ctx, doctor.ID, patient.ID, "Let's review them together")
	require.NoError(t, err)

	messages, err := svc.Messages(ctx, patient.ID, doctor.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "My readings look high today", messages[0].Content)
	assert.Equal(t, "Let's review them together", messages[1].Content)
}

func TestChatSendValidations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewChatService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")

	var appErr *apperrors.AppError
	_, err := svc.Send(ctx, patient.ID, "nobody", "hello")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	_, err = svc.Send(ctx, patient.ID, patient.ID, "hello me")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	_, err = svc.Send(ctx, patient.ID, "whoever", "   ")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestChatUnreadCountAndMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewChatService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	doctor := seedUser(t, db, "doc@example.com", "Dr. Hassan", database.RolePhysician, "")

	_, err := svc.Send(ctx, doctor.ID, patient.ID, "First")
	require.NoError(t, err)
	_, err = svc.Send(ctx, doctor.ID, patient.ID, "Second")
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, patient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// Opening the thread marks them read.
	_, err = svc.Messages(ctx, patient.ID, doctor.ID)
	require.NoError(t, err)

	count, err = svc.UnreadCount(ctx, patient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// The sender's unread count is unaffected.
	count, err = svc.UnreadCount(ctx, doctor.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestChatConversations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewChatService(db)
	ctx := context.Background()

	patient := seedUser(t, db, "amira@example.com", "Amira Hassan", database.RolePatient, "")
	doctor := seedUser(t, db, "doc@example.com", "Dr. Hassan", database.RolePhysician, "")
	dietitian := seedUser(t, db, "diet@example.com", "Layla Diet", database.RoleDietitian, "")

	_, err := svc.Send(ctx, doctor.ID, patient.ID, "Hello from your doctor")
	require.NoError(t, err)
	_, err = svc.Send(ctx, dietitian.ID, patient.ID, "Hello from your dietitian")
	require.NoError(t, err)
	_, err = svc.Send(ctx, doctor.ID, patient.ID, "Follow-up question")
	require.NoError(t, err)

	conversations, err := svc.Conversations(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	byPartner := make(map[string]Conversation)
	for _, conv := range conversations {
		byPartner[conv.Partner.ID] = conv
		assert.Empty(t, conv.Partner.Password)
	}
	assert.EqualValues(t, 2, byPartner[doctor.ID].UnreadCount)
	assert.Equal(t, "Follow-up question", byPartner[doctor.ID].LastMessage.Content)
	assert.EqualValues(t, 1, byPartner[dietitian.ID].UnreadCount)
}
