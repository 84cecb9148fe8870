package signup

import (
	"context"
	"strings"
	"time"

	"github.com/splita/splita-api/domain/notify"
	"github.com/splita/splita-api/internal/audience"
	"github.com/splita/splita-api/internal/log"
	"github.com/splita/splita-api/pkg/constants"
	apperrors "github.com/splita/splita-api/pkg/errors"
)

type SignupService interface {
	// SubmitWaitlist stores the submission and, best-effort, syncs the
	// contact to the remote audience and queues a welcome email. Only a
	// persistence failure is returned as an error.
	SubmitWaitlist(ctx context.Context, req *WaitlistSignupRequest) (*SignupResponse, error)

	// SubmitVendor is the vendor-form counterpart of SubmitWaitlist.
	SubmitVendor(ctx context.Context, req *VendorSignupRequest) (*SignupResponse, error)
}

type signupService struct {
	logger     *log.Logger
	repository SignupRepository
	audience   audience.Client
	dispatcher notify.Dispatcher
	queue      *notify.Queue

	waitlistAudienceID string
	vendorAudienceID   string
}

type ServiceOptions struct {
	// Audience may be nil when no contact-management credential is
	// configured; syncing is then skipped.
	Audience           audience.Client
	Dispatcher         notify.Dispatcher
	Queue              *notify.Queue
	WaitlistAudienceID string
	VendorAudienceID   string
}

func NewSignupService(logger *log.Logger, repository SignupRepository, opts ServiceOptions) SignupService {
	return &signupService{
		logger:             logger,
		repository:         repository,
		audience:           opts.Audience,
		dispatcher:         opts.Dispatcher,
		queue:              opts.Queue,
		waitlistAudienceID: opts.WaitlistAudienceID,
		vendorAudienceID:   opts.VendorAudienceID,
	}
}

// NormalizeEmail canonicalizes an address for deduplication. Addresses are
// matched case-insensitively even though RFC 5321 allows case-sensitive
// local parts; real providers do not distinguish them.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (s *signupService) SubmitWaitlist(ctx context.Context, req *WaitlistSignupRequest) (*SignupResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SubmitWaitlist received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	email := NormalizeEmail(req.Email)
	entryModel := ToWaitlistModel(req, email)
	if entryModel.SubmittedAt == "" {
		entryModel.SubmittedAt = time.Now().UTC().Format(constants.RFC3339DateTimeFormat)
	}

	entry, updated, err := s.repository.UpsertWaitlist(ctx, entryModel)
	if err != nil {
		logger.Error("Failed to persist waitlist submission", "email", email, "error", err)
		return nil, err
	}

	s.syncContact(ctx, s.waitlistAudienceID, email, audience.ContactOptions{FirstName: req.UserType})
	s.queueWelcomeEmail(email, notify.KindWaitlist, notify.TemplateContext{
		UserType: req.UserType,
		Vibe:     req.Vibe,
	})

	logger.Info("Waitlist submission recorded", "email", email, "updated", updated)
	return &SignupResponse{Success: true, Email: entry.Email, Updated: updated}, nil
}

func (s *signupService) SubmitVendor(ctx context.Context, req *VendorSignupRequest) (*SignupResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SubmitVendor received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	email := NormalizeEmail(req.Email)
	entryModel := ToVendorModel(req, email)
	if entryModel.SubmittedAt == "" {
		entryModel.SubmittedAt = time.Now().UTC().Format(constants.RFC3339DateTimeFormat)
	}

	entry, updated, err := s.repository.UpsertVendor(ctx, entryModel)
	if err != nil {
		logger.Error("Failed to persist vendor submission", "email", email, "error", err)
		return nil, err
	}

	s.syncContact(ctx, s.vendorAudienceID, email, audience.ContactOptions{})
	s.queueWelcomeEmail(email, notify.KindVendor, notify.TemplateContext{})

	logger.Info("Vendor submission recorded", "email", email, "updated", updated)
	return &SignupResponse{Success: true, Email: entry.Email, Updated: updated}, nil
}

// syncContact mirrors the submission into the remote audience. Failures are
// logged and swallowed so the user never sees them; a restricted credential
// is called out loudly because it needs an operator to fix.
func (s *signupService) syncContact(ctx context.Context, audienceID, email string, opts audience.ContactOptions) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if s.audience == nil || audienceID == "" {
		logger.Warn("Audience sync skipped: no audience configured", "email", email)
		return
	}

	id, err := s.audience.CreateContact(ctx, audienceID, email, opts)
	if err != nil {
		if audience.IsRestrictedKey(err) {
			logger.Error("Audience sync rejected: API key lacks contact permissions, replace it with a full-access key",
				"audienceId", audienceID, "error", err)
			return
		}
		logger.Error("Audience sync failed", "audienceId", audienceID, "email", email, "error", err)
		return
	}

	logger.Info("Contact synced to audience", "audienceId", audienceID, "contactId", id)
}

func (s *signupService) queueWelcomeEmail(email string, kind notify.Kind, tc notify.TemplateContext) {
	if s.queue == nil || s.dispatcher == nil {
		return
	}

	dispatcher := s.dispatcher
	s.queue.Enqueue(notify.Task{
		Name: "welcome-email",
		Run: func(ctx context.Context) error {
			_, err := dispatcher.SendWelcome(ctx, kind, email, tc)
			return err
		},
	})
}
