package migrations

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed data is expressed with raw table access rather than the model structs to
// avoid an import cycle with the database package.
func init() {
	Register("001_seed_admin", seedAdminUp, seedAdminDown)
}

func seedAdminUp(db *gorm.DB) error {
	var count int64
	if err := db.Table("users").Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sum := sha256.Sum256([]byte("ChangeMe123!"))
	return db.Table("users").Create(map[string]interface{}{
		"id":             uuid.NewString(),
		"email":          "admin@geniesugar.com",
		"password":       hex.EncodeToString(sum[:]),
		"full_name":      "System Administrator",
		"role":           "admin",
		"email_verified": true,
		"is_verified":    true,
		"created_at":     time.Now(),
	}).Error
}

func seedAdminDown(db *gorm.DB) error {
	return db.Exec("DELETE FROM users WHERE email = ?", "admin@geniesugar.com").Error
}
