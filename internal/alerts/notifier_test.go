package alerts

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniesugar/geniesugar/internal/database"
)

type sentAlert struct {
	to        string
	value     int
	alertType string
	family    bool
}

type stubMailer struct {
	mu      sync.Mutex
	sent    []sentAlert
	failFor map[string]bool
}

func newStubMailer() *stubMailer {
	return &stubMailer{failFor: make(map[string]bool)}
}

func (m *stubMailer) SendGlucoseAlert(to, fullName string, value int, alertType string, timestamp time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return errors.New("smtp connection refused")
	}
	m.sent = append(m.sent, sentAlert{to: to, value: value, alertType: alertType})
	return nil
}

func (m *stubMailer) SendFamilyAlert(to, contactName, patientName string, value int, alertType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return errors.New("smtp connection refused")
	}
	m.sent = append(m.sent, sentAlert{to: to, value: value, alertType: alertType, family: true})
	return nil
}

func (m *stubMailer) deliveries() []sentAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentAlert(nil), m.sent...)
}

type stubThresholds struct {
	settings *database.AlertSettings
	err      error
}

func (s *stubThresholds) Lookup(ctx context.Context, userID string) (*database.AlertSettings, error) {
	return s.settings, s.err
}

type stubContacts struct {
	contacts []database.FamilyContact
	err      error
}

func (s *stubContacts) ListContacts(ctx context.Context, userID string) ([]database.FamilyContact, error) {
	return s.contacts, s.err
}

func testUser() *database.User {
	return &database.User{
		Model:    database.Model{ID: "user-1"},
		Email:    "patient@example.com",
		FullName: "Amira Hassan",
	}
}

func defaultSettings() *database.AlertSettings {
	return &database.AlertSettings{
		UserID:        "user-1",
		HighThreshold: 180,
		LowThreshold:  70,
		EmailAlerts:   true,
	}
}

func TestCheckAndNotifyHighReadingFansOut(t *testing.T) {
	mailer := newStubMailer()
	contacts := &stubContacts{contacts: []database.FamilyContact{
		{Model: database.Model{ID: "c1"}, Name: "Mona", Email: "mona@example.com"},
		{Model: database.Model{ID: "c2"}, Name: "Khalid", Email: "khalid@example.com"},
	}}
	n := NewNotifier(&stubThresholds{settings: defaultSettings()}, contacts, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 185, time.Now())
	require.NoError(t, err)

	sent := mailer.deliveries()
	require.Len(t, sent, 3)
	assert.Equal(t, "patient@example.com", sent[0].to)
	assert.False(t, sent[0].family)
	for _, s := range sent {
		assert.Equal(t, "high", s.alertType)
		assert.Equal(t, 185, s.value)
	}
}

func TestCheckAndNotifyLowReading(t *testing.T) {
	mailer := newStubMailer()
	n := NewNotifier(&stubThresholds{settings: defaultSettings()}, &stubContacts{}, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 70, time.Now())
	require.NoError(t, err)

	sent := mailer.deliveries()
	require.Len(t, sent, 1)
	assert.Equal(t, "low", sent[0].alertType)
}

func TestCheckAndNotifyNormalReadingSendsNothing(t *testing.T) {
	mailer := newStubMailer()
	n := NewNotifier(&stubThresholds{settings: defaultSettings()}, &stubContacts{contacts: []database.FamilyContact{
		{Name: "Mona", Email: "mona@example.com"},
	}}, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 120, time.Now())
	require.NoError(t, err)
	assert.Empty(t, mailer.deliveries())
}

func TestCheckAndNotifyNoSettingsSkipsEvaluation(t *testing.T) {
	mailer := newStubMailer()
	n := NewNotifier(&stubThresholds{settings: nil}, &stubContacts{contacts: []database.FamilyContact{
		{Name: "Mona", Email: "mona@example.com"},
	}}, mailer)

	// 600 would be a high alert if thresholds existed.
	err := n.CheckAndNotify(context.Background(), testUser(), 600, time.Now())
	require.NoError(t, err)
	assert.Empty(t, mailer.deliveries())
}

func TestCheckAndNotifyEmailAlertsOffStillNotifiesFamily(t *testing.T) {
	settings := defaultSettings()
	settings.EmailAlerts = false

	mailer := newStubMailer()
	contacts := &stubContacts{contacts: []database.FamilyContact{
		{Name: "Mona", Email: "mona@example.com"},
	}}
	n := NewNotifier(&stubThresholds{settings: settings}, contacts, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 200, time.Now())
	require.NoError(t, err)

	sent := mailer.deliveries()
	require.Len(t, sent, 1)
	assert.True(t, sent[0].family)
	assert.Equal(t, "mona@example.com", sent[0].to)
}

func TestCheckAndNotifyRecipientFailureDoesNotStopOthers(t *testing.T) {
	mailer := newStubMailer()
	mailer.failFor["mona@example.com"] = true
	contacts := &stubContacts{contacts: []database.FamilyContact{
		{Name: "Mona", Email: "mona@example.com"},
		{Name: "Khalid", Email: "khalid@example.com"},
	}}
	n := NewNotifier(&stubThresholds{settings: defaultSettings()}, contacts, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 250, time.Now())
	require.NoError(t, err)

	sent := mailer.deliveries()
	require.Len(t, sent, 2)
	assert.Equal(t, "patient@example.com", sent[0].to)
	assert.Equal(t, "khalid@example.com", sent[1].to)
}

func TestCheckAndNotifyUserSendFailureStillNotifiesFamily(t *testing.T) {
	mailer := newStubMailer()
	mailer.failFor["patient@example.com"] = true
	contacts := &stubContacts{contacts: []database.FamilyContact{
		{Name: "Mona", Email: "mona@example.com"},
	}}
	n := NewNotifier(&stubThresholds{settings: defaultSettings()}, contacts, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 250, time.Now())
	require.NoError(t, err)

	sent := mailer.deliveries()
	require.Len(t, sent, 1)
	assert.Equal(t, "mona@example.com", sent[0].to)
}

func TestCheckAndNotifySkipsContactsWithoutEmail(t *testing.T) {
	mailer := newStubMailer()
	contacts := &stubContacts{contacts: []database.FamilyContact{
		{Name: "Mona", Email: ""},
		{Name: "Khalid", Email: "khalid@example.com"},
	}}
	n := NewNotifier(&stubThresholds{settings: defaultSettings()}, contacts, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 40, time.Now())
	require.NoError(t, err)

	sent := mailer.deliveries()
	require.Len(t, sent, 2)
	assert.Equal(t, "khalid@example.com", sent[1].to)
}

func TestCheckAndNotifyLookupErrorPropagates(t *testing.T) {
	mailer := newStubMailer()
	n := NewNotifier(&stubThresholds{err: errors.New("db down")}, &stubContacts{}, mailer)

	err := n.CheckAndNotify(context.Background(), testUser(), 250, time.Now())
	require.Error(t, err)
	assert.Empty(t, mailer.deliveries())
}
