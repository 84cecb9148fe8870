package config

import (
	"os"

	"github.com/splita/splita-api/internal/log"
)

// ProviderConfig carries the third-party provider credentials. Every field is
// optional: a missing credential degrades the related feature (sync, email,
// SMS) instead of failing startup.
type ProviderConfig struct {
	ResendAPIKey       string
	WaitlistAudienceID string
	VendorAudienceID   string
	FromEmail          string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
}

const defaultFromEmail = "Splita <hello@splita.co>"

func NewProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		ResendAPIKey:       sanitizeEnv(os.Getenv("RESEND_API_KEY")),
		WaitlistAudienceID: sanitizeEnv(os.Getenv("RESEND_WAITLIST_AUDIENCE_ID")),
		VendorAudienceID:   sanitizeEnv(os.Getenv("RESEND_VENDOR_AUDIENCE_ID")),
		FromEmail:          sanitizeEnv(GetValueFromEnvironmentVariable("SPLITA_EMAIL", defaultFromEmail)),
		TwilioAccountSID:   sanitizeEnv(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:    sanitizeEnv(os.Getenv("TWILIO_AUTH_TOKEN")),
		TwilioPhoneNumber:  sanitizeEnv(os.Getenv("TWILIO_PHONE_NUMBER")),
	}
}

func (pc *ProviderConfig) EmailConfigured() bool {
	return pc.ResendAPIKey != ""
}

func (pc *ProviderConfig) SMSConfigured() bool {
	return pc.TwilioAccountSID != "" && pc.TwilioAuthToken != "" && pc.TwilioPhoneNumber != ""
}

func (pc *ProviderConfig) LogStatus(logger *log.Logger) {
	logger.Info("Provider configuration loaded",
		"resend", pc.EmailConfigured(),
		"waitlist_audience", pc.WaitlistAudienceID != "",
		"vendor_audience", pc.VendorAudienceID != "",
		"sms", pc.SMSConfigured(),
	)

	if !pc.EmailConfigured() {
		logger.Warn("RESEND_API_KEY not set; audience sync and welcome emails disabled")
	}
	if pc.WaitlistAudienceID == "" {
		logger.Warn("RESEND_WAITLIST_AUDIENCE_ID not set; waitlist contacts are not synced to the audience")
	}
	if pc.VendorAudienceID == "" {
		logger.Warn("RESEND_VENDOR_AUDIENCE_ID not set; vendor contacts are not synced to the audience")
	}
	if !pc.SMSConfigured() {
		logger.Info("Twilio credentials not set; SMS notifications disabled")
	}
}
