package notify

import (
	"context"

	"github.com/resend/resend-go/v2"
	"github.com/splita/splita-api/internal/log"
	apperrors "github.com/splita/splita-api/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=notify

// Dispatcher sends welcome notifications. Every method returns the provider's
// message id on success; failures come back as errors for the caller to log.
// Dispatch failures are never escalated to end users.
type Dispatcher interface {
	// SendWelcome renders the welcome email for kind and sends it.
	SendWelcome(ctx context.Context, kind Kind, email string, tc TemplateContext) (string, error)

	// SendSMS normalizes phoneNumber and sends the SMS template for kind.
	// When SMS credentials are not configured it reports a non-success
	// result without reaching the provider.
	SendSMS(ctx context.Context, phoneNumber string, kind Kind, tc TemplateContext) (string, error)
}

// Options carries the provider credentials. Empty fields disable the
// corresponding channel rather than erroring.
type Options struct {
	ResendAPIKey string
	FromEmail    string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
}

type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type smsAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type providerDispatcher struct {
	logger    *log.Logger
	emails    emailAPI
	sms       smsAPI
	fromEmail string
	fromPhone string
}

func NewDispatcher(logger *log.Logger, opts Options) Dispatcher {
	d := &providerDispatcher{
		logger:    logger,
		fromEmail: opts.FromEmail,
		fromPhone: opts.TwilioPhoneNumber,
	}

	if opts.ResendAPIKey != "" {
		d.emails = resend.NewClient(opts.ResendAPIKey).Emails
	}

	if opts.TwilioAccountSID != "" && opts.TwilioAuthToken != "" && opts.TwilioPhoneNumber != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: opts.TwilioAccountSID,
			Password: opts.TwilioAuthToken,
		})
		d.sms = client.Api
	}

	return d
}

func (d *providerDispatcher) SendWelcome(ctx context.Context, kind Kind, email string, tc TemplateContext) (string, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, d.logger)

	if d.emails == nil {
		return "", apperrors.NewProviderError("email service not configured", nil)
	}

	subject, html, err := renderWelcomeEmail(kind, tc)
	if err != nil {
		logger.Error("Failed to render welcome email", "kind", kind, "error", err)
		return "", apperrors.NewProviderError("failed to render welcome email", err)
	}

	sent, err := d.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    d.fromEmail,
		To:      []string{email},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		logger.Error("Failed to send welcome email", "kind", kind, "error", err)
		return "", apperrors.NewProviderError("failed to send welcome email", err)
	}

	logger.Info("Welcome email sent", "kind", kind, "message_id", sent.Id)
	return sent.Id, nil
}

func (d *providerDispatcher) SendSMS(ctx context.Context, phoneNumber string, kind Kind, tc TemplateContext) (string, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, d.logger)

	if d.sms == nil {
		logger.Info("SMS skipped: Twilio not configured")
		return "", apperrors.NewProviderError("SMS service not configured", nil)
	}

	to, err := NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return "", err
	}

	body, err := renderSMS(kind, tc)
	if err != nil {
		return "", apperrors.NewProviderError("failed to render SMS", err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(d.fromPhone)
	params.SetBody(body)

	msg, err := d.sms.CreateMessage(params)
	if err != nil {
		logger.Error("Failed to send SMS", "kind", kind, "error", err)
		return "", apperrors.NewProviderError("failed to send SMS", err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}

	logger.Info("SMS sent", "kind", kind, "message_sid", sid)
	return sid, nil
}
