package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue("user-1", PurposeEmailVerification, time.Hour)
	require.NoError(t, err)

	userID, err := m.Verify(token, PurposeEmailVerification)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestVerifyPurposeMismatch(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue("user-1", PurposePasswordReset, time.Hour)
	require.NoError(t, err)

	_, err = m.Verify(token, PurposeEmailVerification)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue("user-1", PurposePasswordReset, -time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(token, PurposePasswordReset)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Issue("user-1", PurposePasswordReset, time.Hour)
	require.NoError(t, err)

	_, err = NewManager("secret-b").Verify(token, PurposePasswordReset)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager("test-secret")
	_, err := m.Verify("not-a-jwt", PurposePasswordReset)
	assert.Error(t, err)
}
