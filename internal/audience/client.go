// Package audience talks to the Resend audiences REST API. The official Go
// SDK does not expose cursor pagination on contact listing, so the few calls
// this service needs are made directly.
package audience

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=audience

const (
	DefaultBaseURL = "https://api.resend.com"

	// contactPageSize is the provider's maximum page size for contact listing.
	contactPageSize = 100
)

// Client is the gateway to the remote audience. Both operations are
// best-effort from the caller's perspective: a failure here must never become
// a fatal error for the end user.
type Client interface {
	// CreateContact adds email to the audience. A contact that already exists
	// is treated as success; the returned id is empty in that case.
	CreateContact(ctx context.Context, audienceID, email string, opts ContactOptions) (string, error)

	// CountContacts pages through the audience and returns the total contact
	// count. Any page-fetch error aborts with a zero count.
	CountContacts(ctx context.Context, audienceID string) (int, error)
}

type ContactOptions struct {
	FirstName string
	LastName  string
}

// Contact is a remote audience member, identified by the provider's own id.
type Contact struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
}

// RestrictedKeyError indicates the configured credential can only send emails
// and lacks contact-management scope. It requires operator action: the key
// must be replaced with one that has audience permissions.
type RestrictedKeyError struct {
	Message string
}

func (e *RestrictedKeyError) Error() string {
	if e.Message != "" {
		return "resend API key is restricted: " + e.Message
	}
	return "resend API key is restricted to email sending only"
}

// IsRestrictedKey reports whether err stems from a restricted credential.
func IsRestrictedKey(err error) bool {
	var rke *RestrictedKeyError
	return errors.As(err, &rke)
}

type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type RestClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewRestClient(cfg *Config) *RestClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &RestClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type createContactRequest struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Unsubscribed bool   `json:"unsubscribed"`
}

type createContactResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`

	httpStatus int
}

func (e *apiError) Error() string {
	return fmt.Sprintf("resend API error (%d %s): %s", e.httpStatus, e.Name, e.Message)
}

func (c *RestClient) CreateContact(ctx context.Context, audienceID, email string, opts ContactOptions) (string, error) {
	if audienceID == "" {
		return "", errors.New("no audience ID provided")
	}

	body := createContactRequest{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FirstName: opts.FirstName,
		LastName:  opts.LastName,
	}

	var created createContactResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/audiences/%s/contacts", audienceID), body, &created)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) {
			if isRestrictedKeyError(ae) {
				return "", &RestrictedKeyError{Message: ae.Message}
			}
			// The provider rejects duplicate contacts; from this caller's
			// perspective the contact being present already is success.
			if isAlreadyExistsError(ae) {
				return "", nil
			}
		}
		return "", err
	}

	return created.ID, nil
}

func isRestrictedKeyError(ae *apiError) bool {
	return ae.httpStatus == http.StatusUnauthorized ||
		ae.Name == "restricted_api_key" ||
		strings.Contains(strings.ToLower(ae.Message), "restricted")
}

func isAlreadyExistsError(ae *apiError) bool {
	msg := strings.ToLower(ae.Message)
	return ae.httpStatus == http.StatusConflict ||
		strings.Contains(msg, "already") ||
		strings.Contains(msg, "duplicate")
}

func (c *RestClient) CountContacts(ctx context.Context, audienceID string) (int, error) {
	pager := c.Pages(audienceID)

	total := 0
	for {
		page, more, err := pager.Next(ctx)
		if err != nil {
			// No partial counts: a failed page invalidates the whole sum.
			return 0, err
		}

		total += len(page)
		if !more {
			return total, nil
		}
	}
}

func (c *RestClient) do(ctx context.Context, method, path string, reqBody, out any) error {
	var reader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call resend API: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ae := &apiError{httpStatus: resp.StatusCode}
		if decodeErr := json.Unmarshal(payload, ae); decodeErr != nil || ae.Message == "" {
			ae.Message = strings.TrimSpace(string(payload))
		}
		return ae
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode resend response: %w", err)
		}
	}

	return nil
}
