package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/logger"
)

// Mailer is the narrow delivery contract the notifier depends on. Template
// rendering and transport belong to the implementation.
type Mailer interface {
	SendGlucoseAlert(to, fullName string, value int, alertType string, timestamp time.Time) error
	SendFamilyAlert(to, contactName, patientName string, value int, alertType string) error
}

// ThresholdStore looks up a user's alert settings without creating defaults.
// A (nil, nil) result means the user never configured thresholds.
type ThresholdStore interface {
	Lookup(ctx context.Context, userID string) (*database.AlertSettings, error)
}

// ContactDirectory lists a user's family contacts.
type ContactDirectory interface {
	ListContacts(ctx context.Context, userID string) ([]database.FamilyContact, error)
}

// Notifier evaluates new glucose readings against the user's thresholds and
// dispatches alert emails to the user and their family contacts.
type Notifier struct {
	thresholds ThresholdStore
	contacts   ContactDirectory
	mailer     Mailer
}

func NewNotifier(thresholds ThresholdStore, contacts ContactDirectory, mailer Mailer) *Notifier {
	return &Notifier{
		thresholds: thresholds,
		contacts:   contacts,
		mailer:     mailer,
	}
}

// CheckAndNotify classifies the reading and fans out notifications. Callers on
// the glucose write path invoke it in a goroutine; a failure here never
// surfaces to the user who logged the reading.
//
// Delivery failures are logged per recipient and do not stop the remaining
// sends. Family contacts are notified regardless of the user's own EmailAlerts
// toggle, matching the original product behavior.
func (n *Notifier) CheckAndNotify(ctx context.Context, user *database.User, value int, timestamp time.Time) error {
	settings, err := n.thresholds.Lookup(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to look up alert settings: %w", err)
	}
	if settings == nil {
		// Never configured: alerts are off for this user.
		return nil
	}

	classification := Evaluate(value, settings.HighThreshold, settings.LowThreshold)
	if classification == None {
		return nil
	}

	if settings.EmailAlerts {
		if err := n.mailer.SendGlucoseAlert(user.Email, user.FullName, value, string(classification), timestamp); err != nil {
			logger.Error("Failed to send glucose alert to user",
				"user_id", user.ID, "alert_type", classification, "error", err)
		}
	}

	contacts, err := n.contacts.ListContacts(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to list family contacts: %w", err)
	}

	for _, contact := range contacts {
		if contact.Email == "" {
			continue
		}
		if err := n.mailer.SendFamilyAlert(contact.Email, contact.Name, user.FullName, value, string(classification)); err != nil {
			logger.Error("Failed to send family alert",
				"user_id", user.ID, "contact_id", contact.ID, "alert_type", classification, "error", err)
		}
	}

	return nil
}
