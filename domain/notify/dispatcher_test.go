package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/splita/splita-api/internal/log"
	apperrors "github.com/splita/splita-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeEmailAPI struct {
	lastRequest *resend.SendEmailRequest
	err         error
}

func (f *fakeEmailAPI) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.lastRequest = params
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "msg-1"}, nil
}

type fakeSMSAPI struct {
	lastParams *twilioApi.CreateMessageParams
	err        error
}

func (f *fakeSMSAPI) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func newTestDispatcher(emails emailAPI, sms smsAPI) *providerDispatcher {
	return &providerDispatcher{
		logger:    log.NewLoggerWithJSONOutput(),
		emails:    emails,
		sms:       sms,
		fromEmail: "Splita <hello@splita.co>",
		fromPhone: "+15550001111",
	}
}

func TestSendWelcome_Waitlist(t *testing.T) {
	emails := &fakeEmailAPI{}
	d := newTestDispatcher(emails, nil)

	id, err := d.SendWelcome(context.Background(), KindWaitlist, "a@test.com", TemplateContext{
		UserType: "Student",
		Vibe:     "Dark mode",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)

	require.NotNil(t, emails.lastRequest)
	assert.Equal(t, []string{"a@test.com"}, emails.lastRequest.To)
	assert.Equal(t, "Splita <hello@splita.co>", emails.lastRequest.From)
	assert.Contains(t, emails.lastRequest.Subject, "Student")
	assert.Contains(t, emails.lastRequest.Html, "<strong>Student</strong>")
	assert.Contains(t, emails.lastRequest.Html, "Dark mode")
}

func TestSendWelcome_WaitlistWithoutVibeOmitsPreference(t *testing.T) {
	emails := &fakeEmailAPI{}
	d := newTestDispatcher(emails, nil)

	_, err := d.SendWelcome(context.Background(), KindWaitlist, "a@test.com", TemplateContext{UserType: "Creator"})
	require.NoError(t, err)
	assert.NotContains(t, emails.lastRequest.Html, "saved your preference")
}

func TestSendWelcome_Vendor(t *testing.T) {
	emails := &fakeEmailAPI{}
	d := newTestDispatcher(emails, nil)

	_, err := d.SendWelcome(context.Background(), KindVendor, "shop@test.com", TemplateContext{})
	require.NoError(t, err)
	assert.Equal(t, "Splita Vendor Partnership - Next Steps", emails.lastRequest.Subject)
	assert.Contains(t, emails.lastRequest.Html, "vendor partner")
}

func TestSendWelcome_NotConfigured(t *testing.T) {
	d := newTestDispatcher(nil, nil)

	_, err := d.SendWelcome(context.Background(), KindWaitlist, "a@test.com", TemplateContext{})
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeProviderError, apperrors.GetErrorType(err))
}

func TestSendWelcome_ProviderFailure(t *testing.T) {
	emails := &fakeEmailAPI{err: errors.New("boom")}
	d := newTestDispatcher(emails, nil)

	_, err := d.SendWelcome(context.Background(), KindWaitlist, "a@test.com", TemplateContext{UserType: "Student"})
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeProviderError, apperrors.GetErrorType(err))
}

func TestSendSMS_NormalizesRecipient(t *testing.T) {
	sms := &fakeSMSAPI{}
	d := newTestDispatcher(nil, sms)

	sid, err := d.SendSMS(context.Background(), "5551234567", KindWaitlist, TemplateContext{UserType: "Student"})
	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)

	require.NotNil(t, sms.lastParams)
	assert.Equal(t, "+15551234567", *sms.lastParams.To)
	assert.Equal(t, "+15550001111", *sms.lastParams.From)
	assert.Contains(t, *sms.lastParams.Body, "Student")
}

func TestSendSMS_NotConfiguredIsNonSuccessNoOp(t *testing.T) {
	d := newTestDispatcher(nil, nil)

	sid, err := d.SendSMS(context.Background(), "5551234567", KindWaitlist, TemplateContext{})
	assert.Error(t, err)
	assert.Empty(t, sid)
	assert.Equal(t, apperrors.ErrorTypeProviderError, apperrors.GetErrorType(err))
}

func TestSendSMS_InvalidNumberRejectedBeforeProvider(t *testing.T) {
	sms := &fakeSMSAPI{}
	d := newTestDispatcher(nil, sms)

	_, err := d.SendSMS(context.Background(), "123", KindWaitlist, TemplateContext{})
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	assert.Nil(t, sms.lastParams)
}

func TestRenderSMS_LaunchGreetsByName(t *testing.T) {
	body, err := renderSMS(KindLaunch, TemplateContext{Name: "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Hi Ada, ")

	body, err = renderSMS(KindLaunch, TemplateContext{})
	require.NoError(t, err)
	assert.NotContains(t, body, "Hi ")
}
