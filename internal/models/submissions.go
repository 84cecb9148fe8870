package models

import "gorm.io/gorm"

// WaitlistSubmission is one waitlist signup, keyed by normalized email.
// Resubmitting with the same email updates the row in place.
type WaitlistSubmission struct {
	gorm.Model
	Email    string `gorm:"not null;unique;index"`
	UserType string `gorm:"not null"`
	Vibe     string
	// SubmittedAt is the client-supplied timestamp, informational only.
	SubmittedAt string
}

// VendorSubmission is one vendor partnership application, keyed by normalized email.
type VendorSubmission struct {
	gorm.Model
	Email       string `gorm:"not null;unique;index"`
	SubmittedAt string
}

// ModelRegistry lists every model handled by --auto-migrate.
var ModelRegistry = []interface{}{
	&WaitlistSubmission{},
	&VendorSubmission{},
}
