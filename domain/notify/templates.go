package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// Kind selects the welcome template for a submission type.
type Kind string

const (
	KindWaitlist Kind = "waitlist"
	KindVendor   Kind = "vendor"
	KindLaunch   Kind = "launch"
)

// ParseKind validates a client-supplied template kind.
func ParseKind(raw string) (Kind, bool) {
	switch Kind(raw) {
	case KindWaitlist, KindVendor, KindLaunch:
		return Kind(raw), true
	default:
		return "", false
	}
}

// TemplateContext carries the per-submission fields the templates render.
type TemplateContext struct {
	UserType string
	Vibe     string
	Name     string
}

const emailStyle = `
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #02B7A0; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
    .signature { margin-top: 28px; font-size: 15px; color: #111; }
    .signature-name { font-weight: 600; color: #02B7A0; font-size: 16px; }
    .signature-link a { color: #02B7A0; text-decoration: none; }
`

const emailSignature = `
      <div class="signature">
        <p class="signature-name">Arinze Okigbo</p>
        <p>Founder, Splita</p>
        <p class="signature-link"><a href="https://splita.co">splita.co</a></p>
      </div>
`

var waitlistEmailTemplate = template.Must(template.New("waitlist").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Welcome to Splita! &#127881;</h1></div>
    <div class="content">
      <p>Hi there,</p>
      <p>Thanks for joining the Splita waitlist! We're excited to have you as a <strong>{{.UserType}}</strong>.</p>
      {{if .Vibe}}<p>We've saved your preference for <strong>{{.Vibe}}</strong> - we'll make sure Splita looks perfect for you when we launch!</p>{{end}}
      <p>We're building something special to make group payments simple, fast, and reliable. You'll be among the first to know when we launch.</p>
      <p>Feel free to reply to this email if you want to connect or share ideas.</p>` + emailSignature + `
    </div>
  </div>
</body>
</html>`))

var vendorEmailTemplate = template.Must(template.New("vendor").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Thanks for Your Interest! &#128640;</h1></div>
    <div class="content">
      <p>Hi there,</p>
      <p>Thank you for applying to become a Splita vendor partner! We're excited about the possibility of working together.</p>
      <p>Our team will review your application and get back to you within 2-3 business days with next steps.</p>
      <p>In the meantime, if you have any questions, feel free to reply to this email.</p>` + emailSignature + `
    </div>
  </div>
</body>
</html>`))

func renderWelcomeEmail(kind Kind, tc TemplateContext) (subject, html string, err error) {
	var buf bytes.Buffer

	switch kind {
	case KindWaitlist:
		userType := tc.UserType
		if userType == "" {
			userType = "early believer"
		}
		if err := waitlistEmailTemplate.Execute(&buf, TemplateContext{UserType: userType, Vibe: tc.Vibe}); err != nil {
			return "", "", err
		}
		return fmt.Sprintf("Welcome to Splita, %s! \U0001F389", userType), buf.String(), nil

	case KindVendor:
		if err := vendorEmailTemplate.Execute(&buf, tc); err != nil {
			return "", "", err
		}
		return "Splita Vendor Partnership - Next Steps", buf.String(), nil

	default:
		return "", "", fmt.Errorf("no email template for kind %q", kind)
	}
}

func renderSMS(kind Kind, tc TemplateContext) (string, error) {
	switch kind {
	case KindWaitlist:
		return fmt.Sprintf("\U0001F389 Welcome to Splita! Thanks for joining as a %s. We'll notify you when we launch. Reply STOP to opt out.", tc.UserType), nil
	case KindVendor:
		return "\U0001F680 Thanks for your interest in Splita! We'll review your vendor application and get back to you within 2-3 business days. Reply STOP to opt out.", nil
	case KindLaunch:
		greeting := ""
		if tc.Name != "" {
			greeting = fmt.Sprintf("Hi %s, ", tc.Name)
		}
		return fmt.Sprintf("\U0001F38A Splita is now live! %sStart splitting payments with your group today: https://splita.co", greeting), nil
	default:
		return "", fmt.Errorf("no SMS template for kind %q", kind)
	}
}
